package connect

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/connect/internal/constants"
)

// Executor performs the network side of a request: it acquires a token,
// issues the GET for route with the serialized details and decodes the
// JSON response into out.
type Executor interface {
	BaseURI() string
	Execute(ctx context.Context, route string, details *RequestDetails, out interface{}) error
}

// TargetURL joins base, route and the encoded details into a request URL.
func TargetURL(base, route string, details *RequestDetails) string {
	target := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(route, "/")
	if details == nil || details.Len() == 0 {
		return target
	}

	return target + "?" + details.Encode()
}

// fluentRequest holds the state shared by every endpoint request type.
type fluentRequest struct {
	route   string
	details *RequestDetails
	exec    Executor
	err     error
}

func newFluentRequest(exec Executor, route string) fluentRequest {
	return fluentRequest{
		route:   route,
		details: NewRequestDetails(),
		exec:    exec,
	}
}

// Route returns the fixed relative path of the request type.
func (r *fluentRequest) Route() string {
	return r.route
}

// Details returns a copy of the accumulated parameters.
func (r *fluentRequest) Details() *RequestDetails {
	return r.details.Clone()
}

// Err returns the first error recorded by a setter, if any.
func (r *fluentRequest) Err() error {
	return r.err
}

// URL returns the request target for the current parameters.
func (r *fluentRequest) URL() string {
	base := ""
	if r.exec != nil {
		base = r.exec.BaseURI()
	}

	return TargetURL(base, r.route, r.details)
}

// narrow copies the accumulated state onto a more specific route.
func (r *fluentRequest) narrow(route string) fluentRequest {
	return fluentRequest{
		route:   route,
		details: r.details.Clone(),
		exec:    r.exec,
		err:     r.err,
	}
}

func (r *fluentRequest) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *fluentRequest) setScalar(name, value string) {
	if err := r.details.SetScalar(name, value); err != nil {
		r.fail(err)
	}
}

func (r *fluentRequest) appendToList(name string, values ...string) {
	if len(values) == 0 {
		return
	}

	if err := r.details.AppendToList(name, values...); err != nil {
		r.fail(err)
	}
}

func (r *fluentRequest) setBool(name string, value bool) {
	r.setScalar(name, strconv.FormatBool(value))
}

func (r *fluentRequest) setDate(name string, value time.Time) {
	r.setScalar(name, value.Format(constants.DateLayout))
}

func (r *fluentRequest) setPositive(name string, value int) {
	if value < 1 {
		r.fail(&ValidationError{
			Category: name,
			Value:    strconv.Itoa(value),
			Reason:   "must be at least 1",
		})

		return
	}

	r.setScalar(name, strconv.Itoa(value))
}

func (r *fluentRequest) setPage(page int) {
	if page < constants.MinPage {
		r.fail(&ValidationError{
			Category: "page",
			Value:    strconv.Itoa(page),
			Reason:   "must be at least " + strconv.Itoa(constants.MinPage),
		})

		return
	}

	r.setScalar("page", strconv.Itoa(page))
}

func (r *fluentRequest) setPageSize(size int) {
	if size < 1 || size > constants.MaxPageSize {
		r.fail(&ValidationError{
			Category: "page_size",
			Value:    strconv.Itoa(size),
			Reason:   "must be between 1 and " + strconv.Itoa(constants.MaxPageSize),
		})

		return
	}

	r.setScalar("page_size", strconv.Itoa(size))
}

// filterValues extracts the canonical values, skipping zero values.
func filterValues[K any](values []FilterValue[K]) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !v.IsZero() {
			out = append(out, v.Value())
		}
	}

	return out
}

func (r *fluentRequest) execute(ctx context.Context, out interface{}) error {
	if r.err != nil {
		return r.err
	}

	if r.exec == nil {
		return ErrNilExecutor
	}

	return r.exec.Execute(ctx, r.route, r.details, out)
}
