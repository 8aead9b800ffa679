package connect

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Client gives access to the request builders of one SDK instance.
// All builders share the instance's credentials and token cache.
type Client interface {
	// AccessToken returns a currently valid bearer token, acquiring one if needed.
	AccessToken(ctx context.Context) (string, error)

	Search() *Search
	SearchImages() *SearchImages
	SearchImagesEditorial() *SearchImagesEditorial
	SearchImagesCreative() *SearchImagesCreative
	Images() *Images
	Download() *Download
	Collections() *Collections
	Countries() *Countries
}

// Config represents client configuration for building a connect.Client.
//
// # Grant precedence
//
// The token manager picks the grant from the populated credentials:
//  1. RefreshToken: refresh_token grant. A rotated refresh token returned by
//     the service replaces the stored one.
//  2. Username/Password: password grant.
//  3. ClientSecret: client_credentials grant.
//
// ClientKey is always required. With none of the above the first token
// request fails with a *ConfigurationError before any network call.
type Config struct {
	// ClientKey identifies the application; sent as client_key and Api-Key.
	ClientKey string
	// ClientSecret: secret paired with ClientKey.
	ClientSecret string
	// Username and Password: account credentials for the password grant.
	Username string
	Password string
	// RefreshToken: previously issued refresh token.
	RefreshToken string

	// ConnectBaseURI: resource API root including the version segment.
	// Defaults to https://connect.gettyimages.com/v3.
	ConnectBaseURI string
	// AuthBaseURI: host of the token endpoint (<AuthBaseURI>/oauth2/token).
	// Defaults to https://connect.gettyimages.com.
	AuthBaseURI string

	// HTTPTimeout bounds each HTTP call. Defaults to 30s.
	HTTPTimeout time.Duration
	// ExpiryMargin: a cached token is reused only while it stays valid for
	// at least this long. Defaults to 30s.
	ExpiryMargin time.Duration

	// Debug enables HTTP request/response logging at debug level.
	Debug bool
	// Logger receives structured log entries. Defaults to NopLogger.
	Logger Logger
	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Cache, when set, stores successful response bodies for CacheTTL. Entries
	// are keyed per caller identity; download responses are never stored.
	Cache Cache
	// CacheTTL defaults to 5m.
	CacheTTL time.Duration

	// MetricsRegisterer, when set, receives the request and token collectors.
	MetricsRegisterer prometheus.Registerer

	// Now overrides the clock used for token expiry.
	Now func() time.Time
}
