package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCollectionsCommand creates the collections command.
func NewCollectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		Long:  "List the content collections available to the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := c.Collections().Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing collections: %w", err)
			}

			rows := make([][]string, 0, len(result.Collections))
			for _, collection := range result.Collections {
				rows = append(rows, []string{
					itoa(collection.ID),
					orNA(collection.Code),
					collection.Name,
					orNA(collection.LicenseModel),
					orNA(strings.Join(collection.ProductTypes, ",")),
				})
			}

			return render(cmd.OutOrStdout(), result, []string{"ID", "Code", "Name", "License", "Products"}, rows)
		},
	}
}

// NewCountriesCommand creates the countries command.
func NewCountriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := c.Countries().Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing countries: %w", err)
			}

			rows := make([][]string, 0, len(result.Countries))
			for _, country := range result.Countries {
				rows = append(rows, []string{country.IsoAlpha2, country.IsoAlpha3, country.Name})
			}

			return render(cmd.OutOrStdout(), result, []string{"Alpha-2", "Alpha-3", "Name"}, rows)
		},
	}
}
