package connectsdk

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/connect/internal/client"
	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

// New creates a Connect API client. The config is copied; unset base URIs take
// the public service defaults.
func New(ctx context.Context, config *connect.Config) (connect.Client, error) {
	if config == nil {
		return nil, &connect.ConfigurationError{Reason: "missing config", Err: constants.ErrConfigRequired}
	}

	if config.ClientKey == "" {
		return nil, &connect.ConfigurationError{Reason: "missing client key", Err: constants.ErrClientKeyRequired}
	}

	resolved := *config
	resolved.ConnectBaseURI = normalizeURI(config.ConnectBaseURI, constants.DefaultConnectBaseURI)
	resolved.AuthBaseURI = normalizeURI(config.AuthBaseURI, constants.DefaultAuthBaseURI)

	c, err := client.New(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeURI trims the trailing slash and defaults the scheme to https.
func normalizeURI(uri, fallback string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return fallback
	}

	uri = strings.TrimSuffix(uri, "/")
	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		uri = "https://" + uri
	}

	return uri
}

// NewWithClientCredentials creates a client using the client_credentials grant.
func NewWithClientCredentials(ctx context.Context, clientKey, clientSecret string) (connect.Client, error) {
	return New(ctx, &connect.Config{
		ClientKey:    clientKey,
		ClientSecret: clientSecret,
	})
}

// NewWithPassword creates a client using the password grant.
func NewWithPassword(ctx context.Context, clientKey, clientSecret, username, password string) (connect.Client, error) {
	return New(ctx, &connect.Config{
		ClientKey:    clientKey,
		ClientSecret: clientSecret,
		Username:     username,
		Password:     password,
	})
}

// NewWithRefreshToken creates a client using the refresh_token grant.
func NewWithRefreshToken(ctx context.Context, clientKey, clientSecret, refreshToken string) (connect.Client, error) {
	return New(ctx, &connect.Config{
		ClientKey:    clientKey,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	})
}
