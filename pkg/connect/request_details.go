package connect

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/fivetwenty-io/connect/internal/constants"
)

// RequestDetails accumulates the query parameters of one request.
// A key holds either a single value or an ordered list of values for its whole lifetime.
type RequestDetails struct {
	scalars map[string]string
	lists   map[string][]string
}

// NewRequestDetails creates empty request details.
func NewRequestDetails() *RequestDetails {
	return &RequestDetails{
		scalars: make(map[string]string),
		lists:   make(map[string][]string),
	}
}

// SetScalar overwrites the value stored under name. Last write wins.
func (d *RequestDetails) SetScalar(name, value string) error {
	if _, isList := d.lists[name]; isList {
		return fmt.Errorf("%w: %s is a list parameter", ErrMixedParameterKind, name)
	}

	d.scalars[name] = value

	return nil
}

// AppendToList appends value to the list stored under name, creating it if absent.
// Duplicates are kept in the order supplied.
func (d *RequestDetails) AppendToList(name string, values ...string) error {
	if _, isScalar := d.scalars[name]; isScalar {
		return fmt.Errorf("%w: %s is a scalar parameter", ErrMixedParameterKind, name)
	}

	d.lists[name] = append(d.lists[name], values...)

	return nil
}

// Scalar returns the scalar value stored under name.
func (d *RequestDetails) Scalar(name string) (string, bool) {
	v, ok := d.scalars[name]

	return v, ok
}

// List returns a copy of the list stored under name.
func (d *RequestDetails) List(name string) ([]string, bool) {
	v, ok := d.lists[name]

	return slices.Clone(v), ok
}

// Len returns the number of distinct parameter names.
func (d *RequestDetails) Len() int {
	return len(d.scalars) + len(d.lists)
}

// Keys returns the parameter names in sorted order.
func (d *RequestDetails) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.scalars {
		keys = append(keys, k)
	}

	for k := range d.lists {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns a deep copy.
func (d *RequestDetails) Clone() *RequestDetails {
	clone := NewRequestDetails()
	for k, v := range d.scalars {
		clone.scalars[k] = v
	}

	for k, v := range d.lists {
		clone.lists[k] = slices.Clone(v)
	}

	return clone
}

// Encode serializes the details into a query string without the leading "?".
// Keys are sorted. Each key and value is escaped individually and list
// values are joined with a literal comma.
func (d *RequestDetails) Encode() string {
	var sb strings.Builder

	for i, key := range d.Keys() {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(key))
		sb.WriteByte('=')

		if v, ok := d.scalars[key]; ok {
			sb.WriteString(url.QueryEscape(v))

			continue
		}

		for j, v := range d.lists[key] {
			if j > 0 {
				sb.WriteString(constants.ListDelimiter)
			}

			sb.WriteString(url.QueryEscape(v))
		}
	}

	return sb.String()
}
