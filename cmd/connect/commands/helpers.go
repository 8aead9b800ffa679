package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

// NotAvailable fills empty table cells.
const NotAvailable = "N/A"

const defaultJSONIndent = 2

// Static errors of the commands package.
var (
	ErrUnexpectedClient = errors.New("unexpected client implementation")
	ErrIDRequired       = errors.New("at least one image id is required")
	ErrUnknownAssetType = errors.New("unknown asset type (use all, editorial or creative)")
)

// render writes v in the configured output format. rows is used for table output.
func render(w io.Writer, v interface{}, header []string, rows [][]string) error {
	output := viper.GetString("output")

	switch output {
	case constants.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(v)
	case constants.OutputYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(v)
	case constants.OutputTable, "":
		return renderTable(w, header, rows)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutput, output)
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// parseAll validates every value against vocab.
func parseAll[K any](vocab *connect.Vocabulary[K], values []string) ([]connect.FilterValue[K], error) {
	out := make([]connect.FilterValue[K], 0, len(values))

	for _, value := range values {
		fv, err := vocab.Parse(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}

		out = append(out, fv)
	}

	return out, nil
}

func imageRows(images []connect.Image) [][]string {
	rows := make([][]string, 0, len(images))
	for _, image := range images {
		rows = append(rows, []string{
			image.ID,
			orNA(image.Title),
			orNA(image.AssetFamily),
			orNA(image.CollectionName),
			orNA(image.LicenseModel),
		})
	}

	return rows
}

var imageHeader = []string{"ID", "Title", "Asset Family", "Collection", "License"}

func itoa(n int) string {
	return strconv.Itoa(n)
}
