package connect

import "context"

const (
	collectionsRoute = "collections/"
	countriesRoute   = "countries/"
)

// Collections lists the content collections available to the caller.
type Collections struct {
	fluentRequest
}

// NewCollections creates a collections request bound to exec.
func NewCollections(exec Executor) *Collections {
	return &Collections{fluentRequest: newFluentRequest(exec, collectionsRoute)}
}

// WithResponseField adds fields to the response field set.
func (r *Collections) WithResponseField(fields ...string) *Collections {
	r.appendToList("fields", fields...)

	return r
}

// Execute runs the request.
func (r *Collections) Execute(ctx context.Context) (*CollectionsResult, error) {
	var result CollectionsResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Countries lists the countries known to the service.
type Countries struct {
	fluentRequest
}

// NewCountries creates a countries request bound to exec.
func NewCountries(exec Executor) *Countries {
	return &Countries{fluentRequest: newFluentRequest(exec, countriesRoute)}
}

func (r *Countries) WithResponseField(fields ...string) *Countries {
	r.appendToList("fields", fields...)

	return r
}

// Execute runs the request.
func (r *Countries) Execute(ctx context.Context) (*CountriesResult, error) {
	var result CountriesResult
	if err := r.execute(ctx, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
