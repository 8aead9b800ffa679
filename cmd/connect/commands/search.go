package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

const (
	assetAll       = "all"
	assetEditorial = "editorial"
	assetCreative  = "creative"
)

type searchOptions struct {
	assetType         string
	page              int
	pageSize          int
	sortOrder         string
	fields            []string
	graphicalStyles   []string
	orientations      []string
	numberOfPeople    []string
	agesOfPeople      []string
	compositions      []string
	fileTypes         []string
	keywordIDs        []string
	excludeNudity     bool
	editorialSegments []string
	specificPeople    []string
	eventIDs          []int
	dateFrom          string
	dateTo            string
	licenseModels     []string
}

// imageSearch is the setter surface shared by the three image search requests.
type imageSearch[T any] interface {
	WithPhrase(phrase string) T
	WithPage(page int) T
	WithPageSize(size int) T
	WithSortOrder(order connect.SortOrder) T
	WithResponseField(fields ...string) T
	WithGraphicalStyle(styles ...connect.GraphicalStyle) T
	WithOrientation(orientations ...connect.Orientation) T
	WithNumberOfPeople(counts ...connect.NumberOfPeople) T
	WithAgeOfPeople(ages ...connect.AgeOfPeople) T
	WithComposition(compositions ...connect.Composition) T
	WithFileType(types ...connect.FileType) T
	WithKeywordID(ids ...string) T
	WithExcludeNudity(exclude bool) T
	Execute(ctx context.Context) (*connect.SearchImagesResult, error)
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search PHRASE",
		Short: "Search images",
		Long:  "Search editorial and creative images by phrase and filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := ""
			if len(args) > 0 {
				phrase = args[0]
			}

			c, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var result *connect.SearchImagesResult

			switch opts.assetType {
			case assetAll, "":
				result, err = runSearch(cmd.Context(), c.SearchImages(), phrase, opts)
			case assetEditorial:
				req, buildErr := editorialFilters(c.SearchImagesEditorial(), opts)
				if buildErr != nil {
					return buildErr
				}

				result, err = runSearch(cmd.Context(), req, phrase, opts)
			case assetCreative:
				req, buildErr := creativeFilters(c.SearchImagesCreative(), opts)
				if buildErr != nil {
					return buildErr
				}

				result, err = runSearch(cmd.Context(), req, phrase, opts)
			default:
				return fmt.Errorf("%w: %s", ErrUnknownAssetType, opts.assetType)
			}

			if err != nil {
				return fmt.Errorf("searching images: %w", err)
			}

			if err := render(cmd.OutOrStdout(), result, imageHeader, imageRows(result.Images)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%d results\n", result.ResultCount)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.assetType, "type", assetAll, "asset type (all, editorial, creative)")
	flags.IntVar(&opts.page, "page", 0, "result page, starting at 1")
	flags.IntVar(&opts.pageSize, "page-size", 0, "results per page (1-100)")
	flags.StringVar(&opts.sortOrder, "sort", "", "sort order (best_match, most_popular, newest, oldest, random)")
	flags.StringSliceVar(&opts.fields, "fields", nil, "response fields")
	flags.StringSliceVar(&opts.graphicalStyles, "graphical-style", nil, "graphical styles")
	flags.StringSliceVar(&opts.orientations, "orientation", nil, "orientations")
	flags.StringSliceVar(&opts.numberOfPeople, "number-of-people", nil, "number of people")
	flags.StringSliceVar(&opts.agesOfPeople, "age-of-people", nil, "ages of people")
	flags.StringSliceVar(&opts.compositions, "composition", nil, "compositions")
	flags.StringSliceVar(&opts.fileTypes, "file-type", nil, "file types")
	flags.StringSliceVar(&opts.keywordIDs, "keyword-id", nil, "keyword ids")
	flags.BoolVar(&opts.excludeNudity, "exclude-nudity", false, "exclude nudity")
	flags.StringSliceVar(&opts.editorialSegments, "editorial-segment", nil, "editorial segments (editorial only)")
	flags.StringSliceVar(&opts.specificPeople, "people", nil, "specific people (editorial only)")
	flags.IntSliceVar(&opts.eventIDs, "event-id", nil, "event ids (editorial only)")
	flags.StringVar(&opts.dateFrom, "date-from", "", "earliest creation date, YYYY-MM-DD (editorial only)")
	flags.StringVar(&opts.dateTo, "date-to", "", "latest creation date, YYYY-MM-DD (editorial only)")
	flags.StringSliceVar(&opts.licenseModels, "license-model", nil, "license models (creative only)")

	return cmd
}

func runSearch[T imageSearch[T]](ctx context.Context, req T, phrase string, opts *searchOptions) (*connect.SearchImagesResult, error) {
	req, err := commonFilters(req, phrase, opts)
	if err != nil {
		return nil, err
	}

	return req.Execute(ctx)
}

//nolint:cyclop // one branch per flag
func commonFilters[T imageSearch[T]](req T, phrase string, opts *searchOptions) (T, error) {
	if phrase != "" {
		req = req.WithPhrase(phrase)
	}

	if opts.page != 0 {
		req = req.WithPage(opts.page)
	}

	if opts.pageSize != 0 {
		req = req.WithPageSize(opts.pageSize)
	}

	if opts.sortOrder != "" {
		order, err := connect.SortOrders.Parse(opts.sortOrder)
		if err != nil {
			return req, err
		}

		req = req.WithSortOrder(order)
	}

	styles, err := parseAll(connect.GraphicalStyles, opts.graphicalStyles)
	if err != nil {
		return req, err
	}

	orientations, err := parseAll(connect.Orientations, opts.orientations)
	if err != nil {
		return req, err
	}

	people, err := parseAll(connect.NumberOfPeopleValues, opts.numberOfPeople)
	if err != nil {
		return req, err
	}

	ages, err := parseAll(connect.AgesOfPeople, opts.agesOfPeople)
	if err != nil {
		return req, err
	}

	compositions, err := parseAll(connect.Compositions, opts.compositions)
	if err != nil {
		return req, err
	}

	fileTypes, err := parseAll(connect.FileTypes, opts.fileTypes)
	if err != nil {
		return req, err
	}

	req = req.WithResponseField(opts.fields...).
		WithGraphicalStyle(styles...).
		WithOrientation(orientations...).
		WithNumberOfPeople(people...).
		WithAgeOfPeople(ages...).
		WithComposition(compositions...).
		WithFileType(fileTypes...).
		WithKeywordID(opts.keywordIDs...)

	if opts.excludeNudity {
		req = req.WithExcludeNudity(true)
	}

	return req, nil
}

func editorialFilters(req *connect.SearchImagesEditorial, opts *searchOptions) (*connect.SearchImagesEditorial, error) {
	segments, err := parseAll(connect.EditorialSegments, opts.editorialSegments)
	if err != nil {
		return nil, err
	}

	req = req.WithEditorialSegment(segments...).
		WithSpecificPeople(opts.specificPeople...).
		WithEventID(opts.eventIDs...)

	if opts.dateFrom != "" {
		from, err := parseDate("date_from", opts.dateFrom)
		if err != nil {
			return nil, err
		}

		req = req.WithDateFrom(from)
	}

	if opts.dateTo != "" {
		to, err := parseDate("date_to", opts.dateTo)
		if err != nil {
			return nil, err
		}

		req = req.WithDateTo(to)
	}

	return req, nil
}

func creativeFilters(req *connect.SearchImagesCreative, opts *searchOptions) (*connect.SearchImagesCreative, error) {
	models, err := parseAll(connect.LicenseModels, opts.licenseModels)
	if err != nil {
		return nil, err
	}

	return req.WithLicenseModel(models...), nil
}

func parseDate(name, value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, &connect.ValidationError{
			Category: name,
			Value:    value,
			Reason:   "expected " + constants.DateLayout,
		}
	}

	return parsed, nil
}
