package constants

import "time"

// Service endpoints.
const (
	// DefaultConnectBaseURI is the resource API root including the version segment.
	DefaultConnectBaseURI = "https://connect.gettyimages.com/v3"

	// DefaultAuthBaseURI is the host serving the OAuth2 token endpoint.
	DefaultAuthBaseURI = "https://connect.gettyimages.com"

	// TokenPath is appended to the auth base URI.
	TokenPath = "/oauth2/token"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// Token lifecycle.
const (
	// DefaultExpiryMargin is how long before expiry a cached token stops being handed out.
	DefaultExpiryMargin = 30 * time.Second

	// DefaultTokenLifetime is assumed when the token endpoint omits expires_in.
	DefaultTokenLifetime = 30 * time.Minute
)

// Query limits.
const (
	// MinPage is the first page number accepted by the search endpoints.
	MinPage = 1

	// MaxPageSize is the largest page_size accepted by the search endpoints.
	MaxPageSize = 100

	// ListDelimiter joins list-valued query parameters.
	ListDelimiter = ","

	// DateLayout formats date filters.
	DateLayout = "2006-01-02"
)

// Cache defaults.
const (
	// DefaultCacheSize is the default max entries of the memory cache.
	DefaultCacheSize = 256

	// DefaultCacheTTL is how long a cached response body stays fresh.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultNATSBucket is the KV bucket used by the NATS response cache.
	DefaultNATSBucket = "connect-responses"
)

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "connect-go-sdk"
