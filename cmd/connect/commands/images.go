package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/connect/pkg/connect"
)

// NewImagesCommand creates the images command.
func NewImagesCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "images ID...",
		Short: "Get image details",
		Long:  "Look up the details of one or more images by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrIDRequired
			}

			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := c.Images().WithIDs(args...).WithResponseField(fields...).Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("getting images: %w", err)
			}

			if err := render(cmd.OutOrStdout(), result, imageHeader, imageRows(result.Images)); err != nil {
				return err
			}

			for _, id := range result.ImagesNotFound {
				fmt.Fprintf(cmd.ErrOrStderr(), "not found: %s\n", id)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "response fields")

	return cmd
}

type downloadOptions struct {
	fileType     string
	height       int
	productID    int
	autoDownload bool
}

// NewDownloadCommand creates the download command.
func NewDownloadCommand() *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:   "download ID",
		Short: "Resolve an image download location",
		Long:  "Request the download location of a licensed image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			req, err := downloadRequest(c.Download().WithID(args[0]), opts)
			if err != nil {
				return err
			}

			result, err := req.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("requesting download: %w", err)
			}

			return render(cmd.OutOrStdout(), result, []string{"ID", "URI"}, [][]string{{args[0], result.URI}})
		},
	}

	cmd.Flags().StringVar(&opts.fileType, "file-type", "", "file type (eps, gif, jpg, png)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "rendition height in pixels")
	cmd.Flags().IntVar(&opts.productID, "product-id", 0, "product id to download against")
	cmd.Flags().BoolVar(&opts.autoDownload, "auto-download", false, "ask the service to redirect to the asset")

	return cmd
}

func downloadRequest(req *connect.Download, opts *downloadOptions) (*connect.Download, error) {
	if opts.fileType != "" {
		fileType, err := connect.FileTypes.Parse(opts.fileType)
		if err != nil {
			return nil, err
		}

		req = req.WithFileType(fileType)
	}

	if opts.height != 0 {
		req = req.WithHeight(opts.height)
	}

	if opts.productID != 0 {
		req = req.WithProductID(opts.productID)
	}

	if opts.autoDownload {
		req = req.WithAutoDownload(true)
	}

	return req, req.Err()
}
