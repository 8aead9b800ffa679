package connect

import (
	"context"
	"strconv"
	"time"
)

const (
	searchRoute                = "search/"
	searchImagesRoute          = "search/images/"
	searchImagesEditorialRoute = "search/images/editorial/"
	searchImagesCreativeRoute  = "search/images/creative/"
)

// Search is the entry point of the search endpoints.
type Search struct {
	fluentRequest
}

// NewSearch creates a search request bound to exec.
func NewSearch(exec Executor) *Search {
	return &Search{fluentRequest: newFluentRequest(exec, searchRoute)}
}

// Images narrows the search to images.
func (r *Search) Images() *SearchImages {
	return &SearchImages{fluentRequest: r.narrow(searchImagesRoute)}
}

// SearchImages searches editorial and creative images together.
type SearchImages struct {
	fluentRequest
}

// NewSearchImages creates a request for the search/images/ route.
func NewSearchImages(exec Executor) *SearchImages {
	return &SearchImages{fluentRequest: newFluentRequest(exec, searchImagesRoute)}
}

// WithPhrase sets the free-text search phrase.
func (r *SearchImages) WithPhrase(phrase string) *SearchImages {
	r.setScalar("phrase", phrase)

	return r
}

// WithPage selects the result page, starting at 1.
func (r *SearchImages) WithPage(page int) *SearchImages {
	r.setPage(page)

	return r
}

// WithPageSize sets how many results a page holds (1 to 100).
func (r *SearchImages) WithPageSize(size int) *SearchImages {
	r.setPageSize(size)

	return r
}

// WithSortOrder sets the result ordering.
func (r *SearchImages) WithSortOrder(order SortOrder) *SearchImages {
	if !order.IsZero() {
		r.setScalar("sort_order", order.Value())
	}

	return r
}

// WithResponseField adds fields to the response field set.
func (r *SearchImages) WithResponseField(fields ...string) *SearchImages {
	r.appendToList("fields", fields...)

	return r
}

func (r *SearchImages) WithGraphicalStyle(styles ...GraphicalStyle) *SearchImages {
	r.appendToList("graphical_styles", filterValues(styles)...)

	return r
}

func (r *SearchImages) WithOrientation(orientations ...Orientation) *SearchImages {
	r.appendToList("orientations", filterValues(orientations)...)

	return r
}

func (r *SearchImages) WithNumberOfPeople(counts ...NumberOfPeople) *SearchImages {
	r.appendToList("number_of_people", filterValues(counts)...)

	return r
}

func (r *SearchImages) WithAgeOfPeople(ages ...AgeOfPeople) *SearchImages {
	r.appendToList("age_of_people", filterValues(ages)...)

	return r
}

func (r *SearchImages) WithComposition(compositions ...Composition) *SearchImages {
	r.appendToList("compositions", filterValues(compositions)...)

	return r
}

func (r *SearchImages) WithFileType(types ...FileType) *SearchImages {
	r.appendToList("file_types", filterValues(types)...)

	return r
}

// WithKeywordID restricts results to assets tagged with the keyword ids.
func (r *SearchImages) WithKeywordID(ids ...string) *SearchImages {
	r.appendToList("keyword_ids", ids...)

	return r
}

func (r *SearchImages) WithExcludeNudity(exclude bool) *SearchImages {
	r.setBool("exclude_nudity", exclude)

	return r
}

// WithEmbedContentOnly limits results to embeddable assets.
func (r *SearchImages) WithEmbedContentOnly(embedOnly bool) *SearchImages {
	r.setBool("embed_content_only", embedOnly)

	return r
}

// Execute runs the search.
func (r *SearchImages) Execute(ctx context.Context) (*SearchImagesResult, error) {
	var result SearchImagesResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Editorial narrows the search to editorial images, keeping the parameters set so far.
func (r *SearchImages) Editorial() *SearchImagesEditorial {
	return &SearchImagesEditorial{fluentRequest: r.narrow(searchImagesEditorialRoute)}
}

// Creative narrows the search to creative images, keeping the parameters set so far.
func (r *SearchImages) Creative() *SearchImagesCreative {
	return &SearchImagesCreative{fluentRequest: r.narrow(searchImagesCreativeRoute)}
}

// SearchImagesEditorial searches editorial images.
type SearchImagesEditorial struct {
	fluentRequest
}

// NewSearchImagesEditorial creates a request for the search/images/editorial/ route.
func NewSearchImagesEditorial(exec Executor) *SearchImagesEditorial {
	return &SearchImagesEditorial{fluentRequest: newFluentRequest(exec, searchImagesEditorialRoute)}
}

// WithPhrase sets the free-text search phrase.
func (r *SearchImagesEditorial) WithPhrase(phrase string) *SearchImagesEditorial {
	r.setScalar("phrase", phrase)

	return r
}

// WithPage selects the result page, starting at 1.
func (r *SearchImagesEditorial) WithPage(page int) *SearchImagesEditorial {
	r.setPage(page)

	return r
}

// WithPageSize sets how many results a page holds (1 to 100).
func (r *SearchImagesEditorial) WithPageSize(size int) *SearchImagesEditorial {
	r.setPageSize(size)

	return r
}

// WithSortOrder sets the result ordering.
func (r *SearchImagesEditorial) WithSortOrder(order SortOrder) *SearchImagesEditorial {
	if !order.IsZero() {
		r.setScalar("sort_order", order.Value())
	}

	return r
}

// WithResponseField adds fields to the response field set.
func (r *SearchImagesEditorial) WithResponseField(fields ...string) *SearchImagesEditorial {
	r.appendToList("fields", fields...)

	return r
}

func (r *SearchImagesEditorial) WithGraphicalStyle(styles ...GraphicalStyle) *SearchImagesEditorial {
	r.appendToList("graphical_styles", filterValues(styles)...)

	return r
}

func (r *SearchImagesEditorial) WithOrientation(orientations ...Orientation) *SearchImagesEditorial {
	r.appendToList("orientations", filterValues(orientations)...)

	return r
}

func (r *SearchImagesEditorial) WithNumberOfPeople(counts ...NumberOfPeople) *SearchImagesEditorial {
	r.appendToList("number_of_people", filterValues(counts)...)

	return r
}

func (r *SearchImagesEditorial) WithAgeOfPeople(ages ...AgeOfPeople) *SearchImagesEditorial {
	r.appendToList("age_of_people", filterValues(ages)...)

	return r
}

func (r *SearchImagesEditorial) WithComposition(compositions ...Composition) *SearchImagesEditorial {
	r.appendToList("compositions", filterValues(compositions)...)

	return r
}

func (r *SearchImagesEditorial) WithFileType(types ...FileType) *SearchImagesEditorial {
	r.appendToList("file_types", filterValues(types)...)

	return r
}

// WithKeywordID restricts results to assets tagged with the keyword ids.
func (r *SearchImagesEditorial) WithKeywordID(ids ...string) *SearchImagesEditorial {
	r.appendToList("keyword_ids", ids...)

	return r
}

func (r *SearchImagesEditorial) WithExcludeNudity(exclude bool) *SearchImagesEditorial {
	r.setBool("exclude_nudity", exclude)

	return r
}

// WithEmbedContentOnly limits results to embeddable assets.
func (r *SearchImagesEditorial) WithEmbedContentOnly(embedOnly bool) *SearchImagesEditorial {
	r.setBool("embed_content_only", embedOnly)

	return r
}

// WithEditorialSegment adds editorial segments to search in.
func (r *SearchImagesEditorial) WithEditorialSegment(segments ...EditorialSegment) *SearchImagesEditorial {
	r.appendToList("editorial_segments", filterValues(segments)...)

	return r
}

func (r *SearchImagesEditorial) WithSpecificPeople(names ...string) *SearchImagesEditorial {
	r.appendToList("specific_people", names...)

	return r
}

func (r *SearchImagesEditorial) WithEventID(ids ...int) *SearchImagesEditorial {
	for _, id := range ids {
		r.appendToList("event_ids", strconv.Itoa(id))
	}

	return r
}

// WithDateFrom limits results to assets created on or after the date.
func (r *SearchImagesEditorial) WithDateFrom(from time.Time) *SearchImagesEditorial {
	r.setDate("date_from", from)

	return r
}

func (r *SearchImagesEditorial) WithDateTo(to time.Time) *SearchImagesEditorial {
	r.setDate("date_to", to)

	return r
}

// Execute runs the search.
func (r *SearchImagesEditorial) Execute(ctx context.Context) (*SearchImagesResult, error) {
	var result SearchImagesResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// SearchImagesCreative searches creative images.
type SearchImagesCreative struct {
	fluentRequest
}

// NewSearchImagesCreative creates a request for the search/images/creative/ route.
func NewSearchImagesCreative(exec Executor) *SearchImagesCreative {
	return &SearchImagesCreative{fluentRequest: newFluentRequest(exec, searchImagesCreativeRoute)}
}

// WithPhrase sets the free-text search phrase.
func (r *SearchImagesCreative) WithPhrase(phrase string) *SearchImagesCreative {
	r.setScalar("phrase", phrase)

	return r
}

// WithPage selects the result page, starting at 1.
func (r *SearchImagesCreative) WithPage(page int) *SearchImagesCreative {
	r.setPage(page)

	return r
}

// WithPageSize sets how many results a page holds (1 to 100).
func (r *SearchImagesCreative) WithPageSize(size int) *SearchImagesCreative {
	r.setPageSize(size)

	return r
}

// WithSortOrder sets the result ordering.
func (r *SearchImagesCreative) WithSortOrder(order SortOrder) *SearchImagesCreative {
	if !order.IsZero() {
		r.setScalar("sort_order", order.Value())
	}

	return r
}

// WithResponseField adds fields to the response field set.
func (r *SearchImagesCreative) WithResponseField(fields ...string) *SearchImagesCreative {
	r.appendToList("fields", fields...)

	return r
}

func (r *SearchImagesCreative) WithGraphicalStyle(styles ...GraphicalStyle) *SearchImagesCreative {
	r.appendToList("graphical_styles", filterValues(styles)...)

	return r
}

func (r *SearchImagesCreative) WithOrientation(orientations ...Orientation) *SearchImagesCreative {
	r.appendToList("orientations", filterValues(orientations)...)

	return r
}

func (r *SearchImagesCreative) WithNumberOfPeople(counts ...NumberOfPeople) *SearchImagesCreative {
	r.appendToList("number_of_people", filterValues(counts)...)

	return r
}

func (r *SearchImagesCreative) WithAgeOfPeople(ages ...AgeOfPeople) *SearchImagesCreative {
	r.appendToList("age_of_people", filterValues(ages)...)

	return r
}

func (r *SearchImagesCreative) WithComposition(compositions ...Composition) *SearchImagesCreative {
	r.appendToList("compositions", filterValues(compositions)...)

	return r
}

func (r *SearchImagesCreative) WithFileType(types ...FileType) *SearchImagesCreative {
	r.appendToList("file_types", filterValues(types)...)

	return r
}

// WithKeywordID restricts results to assets tagged with the keyword ids.
func (r *SearchImagesCreative) WithKeywordID(ids ...string) *SearchImagesCreative {
	r.appendToList("keyword_ids", ids...)

	return r
}

func (r *SearchImagesCreative) WithExcludeNudity(exclude bool) *SearchImagesCreative {
	r.setBool("exclude_nudity", exclude)

	return r
}

// WithEmbedContentOnly limits results to embeddable assets.
func (r *SearchImagesCreative) WithEmbedContentOnly(embedOnly bool) *SearchImagesCreative {
	r.setBool("embed_content_only", embedOnly)

	return r
}

func (r *SearchImagesCreative) WithLicenseModel(models ...LicenseModel) *SearchImagesCreative {
	r.appendToList("license_models", filterValues(models)...)

	return r
}

// Execute runs the search.
func (r *SearchImagesCreative) Execute(ctx context.Context) (*SearchImagesResult, error) {
	var result SearchImagesResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
