package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/connect/internal/auth"
	"github.com/fivetwenty-io/connect/internal/constants"
	connecthttp "github.com/fivetwenty-io/connect/internal/http"
	"github.com/fivetwenty-io/connect/internal/metrics"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

// Client implements connect.Client and connect.Executor.
type Client struct {
	httpClient   *connecthttp.Client
	tokenManager *auth.OAuth2TokenManager
	baseURL      string
	clientKey    string
	cacheScope   string
	logger       connect.Logger
	cache        connect.Cache
	cacheTTL     time.Duration
	metrics      *metrics.Collectors
	now          func() time.Time
}

// New creates a Connect API client. ConnectBaseURI and AuthBaseURI must be set;
// pkg/connectsdk fills in the defaults.
func New(ctx context.Context, config *connect.Config) (*Client, error) {
	if config == nil {
		return nil, &connect.ConfigurationError{Reason: "missing config", Err: constants.ErrConfigRequired}
	}

	if config.ClientKey == "" {
		return nil, &connect.ConfigurationError{Reason: "missing client key", Err: constants.ErrClientKeyRequired}
	}

	if config.ConnectBaseURI == "" {
		return nil, &connect.ConfigurationError{Reason: "missing connect base URI", Err: constants.ErrBaseURIRequired}
	}

	if config.AuthBaseURI == "" {
		return nil, &connect.ConfigurationError{Reason: "missing auth base URI", Err: constants.ErrAuthURIRequired}
	}

	logger := config.Logger
	if logger == nil {
		logger = connect.NopLogger{}
	}

	now := config.Now
	if now == nil {
		now = time.Now
	}

	var collectors *metrics.Collectors
	if config.MetricsRegisterer != nil {
		collectors = metrics.New(config.MetricsRegisterer)
	}

	httpOpts := createHTTPClientOptions(config, logger)

	authBase := strings.TrimSuffix(config.AuthBaseURI, "/")
	tokenManager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		Credentials: auth.Credentials{
			ClientKey:    config.ClientKey,
			ClientSecret: config.ClientSecret,
			Username:     config.Username,
			Password:     config.Password,
			RefreshToken: config.RefreshToken,
		},
		TokenURL:     authBase + constants.TokenPath,
		ExpiryMargin: config.ExpiryMargin,
		HTTPClient:   connecthttp.NewClient(authBase, nil, httpOpts...),
		Logger:       logger,
		Recorder:     collectors,
		Now:          now,
	})

	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = constants.DefaultCacheTTL
	}

	baseURL := strings.TrimSuffix(config.ConnectBaseURI, "/")

	client := &Client{
		httpClient:   connecthttp.NewClient(baseURL, tokenManager, httpOpts...),
		tokenManager: tokenManager,
		baseURL:      baseURL,
		clientKey:    config.ClientKey,
		cacheScope:   cacheScope(config),
		logger:       logger,
		cache:        config.Cache,
		cacheTTL:     cacheTTL,
		metrics:      collectors,
		now:          now,
	}

	logger.Debug("connect client created", map[string]interface{}{
		"base_uri": client.baseURL,
		"grant":    tokenManager.GrantType(),
		"cache":    config.Cache != nil,
	})

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *connect.Config, logger connect.Logger) []connecthttp.Option {
	httpOpts := []connecthttp.Option{
		connecthttp.WithLogger(logger),
		connecthttp.WithTimeout(constants.DefaultHTTPTimeout),
	}

	if config.Debug {
		httpOpts = append(httpOpts, connecthttp.WithDebug(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, connecthttp.WithTimeout(config.HTTPTimeout))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, connecthttp.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// cacheScope identifies the caller whose responses share cache entries.
func cacheScope(config *connect.Config) string {
	return strings.Join([]string{config.ClientKey, config.Username, config.RefreshToken}, "\x00")
}

// TokenManager returns the token manager for this client.
func (c *Client) TokenManager() *auth.OAuth2TokenManager {
	return c.tokenManager
}

// BaseURI implements connect.Executor.
func (c *Client) BaseURI() string {
	return c.baseURL
}

// Execute implements connect.Executor.
func (c *Client) Execute(ctx context.Context, route string, details *connect.RequestDetails, out interface{}) error {
	// Cached responses are only served to callers holding a valid token.
	if _, err := c.tokenManager.GetToken(ctx); err != nil {
		return err
	}

	target := connect.TargetURL(c.baseURL, route, details)
	key := connect.CacheKey(c.cacheScope, target)
	cacheable := connect.Cacheable(route)

	if cacheable {
		if data, ok := c.cached(ctx, key); ok {
			return decode(http.StatusOK, data, out)
		}
	}

	query := ""
	if details != nil {
		query = details.Encode()
	}

	start := time.Now()

	resp, err := c.httpClient.Do(ctx, &connecthttp.Request{
		Method:   http.MethodGet,
		Path:     "/" + strings.TrimPrefix(route, "/"),
		RawQuery: query,
		Headers:  map[string]string{"Api-Key": c.clientKey},
	})

	switch {
	case resp != nil:
		c.metrics.ObserveRequest(route, resp.StatusCode, start)
	case connect.IsTransportError(err):
		c.metrics.ObserveRequest(route, 0, start)
	}

	if err != nil {
		return err
	}

	if err := decode(resp.StatusCode, resp.Body, out); err != nil {
		c.logger.Warn("undecodable response", map[string]interface{}{"route": route, "status": resp.StatusCode})

		return err
	}

	if cacheable {
		c.store(ctx, key, resp.Body)
	}

	return nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	entry, err := c.cache.Get(ctx, key)
	c.metrics.CacheAccess(err == nil)

	if err != nil {
		return nil, false
	}

	return entry.Data, true
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}

	err := c.cache.Set(ctx, key, &connect.CacheEntry{
		Data:      body,
		ExpiresAt: c.now().Add(c.cacheTTL),
	})
	if err != nil {
		c.logger.Warn("cache store failed", map[string]interface{}{"error": err.Error()})
	}
}

func decode(status int, body []byte, out interface{}) error {
	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &connect.RequestError{
			StatusCode: status,
			Body:       string(body),
			Reason:     connect.ReasonParseFailure,
			Err:        err,
		}
	}

	return nil
}

// AccessToken implements connect.Client.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	return c.tokenManager.GetToken(ctx)
}

// Search implements connect.Client.
func (c *Client) Search() *connect.Search {
	return connect.NewSearch(c)
}

// SearchImages implements connect.Client.
func (c *Client) SearchImages() *connect.SearchImages {
	return connect.NewSearchImages(c)
}

// SearchImagesEditorial implements connect.Client.
func (c *Client) SearchImagesEditorial() *connect.SearchImagesEditorial {
	return connect.NewSearchImagesEditorial(c)
}

// SearchImagesCreative implements connect.Client.
func (c *Client) SearchImagesCreative() *connect.SearchImagesCreative {
	return connect.NewSearchImagesCreative(c)
}

// Images implements connect.Client.
func (c *Client) Images() *connect.Images {
	return connect.NewImages(c)
}

// Download implements connect.Client.
func (c *Client) Download() *connect.Download {
	return connect.NewDownload(c)
}

// Collections implements connect.Client.
func (c *Client) Collections() *connect.Collections {
	return connect.NewCollections(c)
}

// Countries implements connect.Client.
func (c *Client) Countries() *connect.Countries {
	return connect.NewCountries(c)
}
