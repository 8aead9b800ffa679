package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fivetwenty-io/connect/internal/constants"
	connecthttp "github.com/fivetwenty-io/connect/internal/http"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

// Grant types.
const (
	GrantRefreshToken      = "refresh_token"
	GrantPassword          = "password"
	GrantClientCredentials = "client_credentials"
)

// flightKey is shared by GetToken and RefreshToken so that at most one token
// request per manager is in flight.
const flightKey = "token"

// Credentials identify the application and, optionally, the user.
type Credentials struct {
	ClientKey    string
	ClientSecret string
	Username     string
	Password     string
	RefreshToken string
}

// Recorder observes token requests.
type Recorder interface {
	TokenRequest(grant string, err error)
}

// OAuth2Config configures the token manager.
type OAuth2Config struct {
	Credentials

	// TokenURL is the full token endpoint, <auth base>/oauth2/token.
	TokenURL string

	// ExpiryMargin defaults to 30s.
	ExpiryMargin time.Duration

	// HTTPClient issues the token request. Defaults to an unauthenticated client.
	HTTPClient *connecthttp.Client

	Logger   connect.Logger
	Recorder Recorder
	Now      func() time.Time
}

// OAuth2TokenManager hands out bearer tokens, acquiring a new one only when the
// cached token is absent or about to expire. Concurrent callers share a single
// in-flight token request.
type OAuth2TokenManager struct {
	config *OAuth2Config
	store  *TokenStore
	client *connecthttp.Client
	group  singleflight.Group
	logger connect.Logger
	margin time.Duration
	now    func() time.Time
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	manager := &OAuth2TokenManager{
		config: config,
		store:  NewTokenStore(),
		client: config.HTTPClient,
		logger: config.Logger,
		margin: config.ExpiryMargin,
		now:    config.Now,
	}

	if manager.client == nil {
		manager.client = connecthttp.NewClient("", nil, connecthttp.WithTimeout(constants.DefaultHTTPTimeout))
	}

	if manager.logger == nil {
		manager.logger = connect.NopLogger{}
	}

	if manager.margin <= 0 {
		manager.margin = constants.DefaultExpiryMargin
	}

	if manager.now == nil {
		manager.now = time.Now
	}

	return manager
}

// GetToken returns a valid access token, acquiring one if necessary.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	if token := m.store.Get(); token.ValidAt(m.now(), m.margin) {
		return token.AccessToken, nil
	}

	token, _, err := m.acquire(ctx, false)

	return token, err
}

// RefreshToken acquires a new token even if the cached one is still valid.
// A GetToken already waiting on the token endpoint is joined rather than
// duplicated.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	var previous string
	if token := m.store.Get(); token != nil {
		previous = token.AccessToken
	}

	token, shared, err := m.acquire(ctx, true)
	if err != nil || !shared || previous == "" || token != previous {
		return err
	}

	// The joined GetToken flight settled on the cached token.
	_, _, err = m.acquire(ctx, true)

	return err
}

// SetToken manually sets the access token.
func (m *OAuth2TokenManager) SetToken(token string, expiresAt time.Time) {
	current := m.store.Get()

	next := &Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}
	if current != nil {
		next.RefreshToken = current.RefreshToken
	}

	m.store.Set(next)
}

// Token returns a snapshot of the cached token, or nil.
func (m *OAuth2TokenManager) Token() *Token {
	return m.store.Get()
}

// GrantType reports the grant the next token request would use, or "" when
// the credentials allow none.
func (m *OAuth2TokenManager) GrantType() string {
	grant, _, err := m.selectGrant()
	if err != nil {
		return ""
	}

	return grant
}

func (m *OAuth2TokenManager) acquire(ctx context.Context, force bool) (string, bool, error) {
	// The flight ignores caller cancellation; each caller stops waiting when
	// its own ctx is done.
	flightCtx := context.WithoutCancel(ctx)

	ch := m.group.DoChan(flightKey, func() (interface{}, error) {
		if !force {
			if token := m.store.Get(); token.ValidAt(m.now(), m.margin) {
				return token.AccessToken, nil
			}
		}

		token, err := m.requestToken(flightCtx)
		if err != nil {
			return "", err
		}

		return token.AccessToken, nil
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Shared, res.Err
		}

		token, _ := res.Val.(string)

		return token, res.Shared, nil
	}
}

func (m *OAuth2TokenManager) selectGrant() (string, url.Values, error) {
	creds := m.config.Credentials
	if creds.ClientKey == "" {
		return "", nil, &connect.ConfigurationError{Reason: "missing client key", Err: constants.ErrClientKeyRequired}
	}

	form := url.Values{}
	form.Set("client_key", creds.ClientKey)

	if creds.ClientSecret != "" {
		form.Set("client_secret", creds.ClientSecret)
	}

	refreshToken := creds.RefreshToken
	if token := m.store.Get(); token != nil && token.RefreshToken != "" {
		refreshToken = token.RefreshToken
	}

	switch {
	case refreshToken != "":
		form.Set("grant_type", GrantRefreshToken)
		form.Set("refresh_token", refreshToken)

		return GrantRefreshToken, form, nil

	case creds.Username != "" && creds.Password != "":
		form.Set("grant_type", GrantPassword)
		form.Set("username", creds.Username)
		form.Set("password", creds.Password)

		return GrantPassword, form, nil

	case creds.ClientSecret != "":
		form.Set("grant_type", GrantClientCredentials)

		return GrantClientCredentials, form, nil

	default:
		return "", nil, &connect.ConfigurationError{Reason: "no grant strategy", Err: constants.ErrNoGrantAvailable}
	}
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context) (*Token, error) {
	grant, form, err := m.selectGrant()
	if err != nil {
		return nil, err
	}

	m.logger.Debug("requesting token", map[string]interface{}{"grant": grant})

	token, err := m.exchange(ctx, grant, form)
	if m.config.Recorder != nil {
		m.config.Recorder.TokenRequest(grant, err)
	}

	if err != nil {
		m.logger.Warn("token request failed", map[string]interface{}{"grant": grant, "error": err.Error()})

		return nil, err
	}

	m.store.Set(token)
	m.logger.Info("token acquired", map[string]interface{}{
		"grant":      grant,
		"expires_at": token.ExpiresAt.Format(time.RFC3339),
	})

	return token, nil
}

// tokenResponse is the JSON body of both success and error responses.
type tokenResponse struct {
	AccessToken      string  `json:"access_token"`
	RefreshToken     string  `json:"refresh_token"`
	ExpiresIn        seconds `json:"expires_in"`
	TokenType        string  `json:"token_type"`
	Error            string  `json:"error"`
	ErrorDescription string  `json:"error_description"`
}

func (m *OAuth2TokenManager) exchange(ctx context.Context, grant string, form url.Values) (*Token, error) {
	resp, err := m.client.PostForm(ctx, m.config.TokenURL, form)
	if err != nil {
		reqErr := &connect.RequestError{}
		if errors.As(err, &reqErr) {
			return nil, authErrorFromBody(grant, reqErr.StatusCode, []byte(reqErr.Body))
		}

		return nil, err
	}

	var body tokenResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, &connect.AuthenticationError{
			Kind:        connect.AuthRejected,
			GrantType:   grant,
			StatusCode:  resp.StatusCode,
			Description: fmt.Sprintf("malformed token response: %v", err),
		}
	}

	if body.Error != "" || body.AccessToken == "" {
		return nil, classify(grant, resp.StatusCode, body.Error, body.ErrorDescription)
	}

	lifetime := time.Duration(body.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = constants.DefaultTokenLifetime
	}

	token := &Token{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresIn:    int(lifetime / time.Second),
		TokenType:    body.TokenType,
		ExpiresAt:    m.now().Add(lifetime),
	}

	// Keep the previous refresh token unless the provider rotated it.
	if token.RefreshToken == "" {
		if previous := m.store.Get(); previous != nil && previous.RefreshToken != "" {
			token.RefreshToken = previous.RefreshToken
		} else {
			token.RefreshToken = form.Get("refresh_token")
		}
	}

	return token, nil
}

func authErrorFromBody(grant string, status int, raw []byte) *connect.AuthenticationError {
	var body tokenResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return classify(grant, status, "", strings.TrimSpace(string(raw)))
	}

	return classify(grant, status, body.Error, body.ErrorDescription)
}

func classify(grant string, status int, code, description string) *connect.AuthenticationError {
	kind := connect.AuthRejected

	switch code {
	case "invalid_client", "unauthorized_client":
		kind = connect.AuthInvalidCredentials
	case "invalid_grant":
		kind = connect.AuthInvalidGrant
	case "":
		if status == http.StatusUnauthorized {
			kind = connect.AuthInvalidCredentials
		}
	}

	return &connect.AuthenticationError{
		Kind:        kind,
		GrantType:   grant,
		StatusCode:  status,
		Code:        code,
		Description: description,
	}
}

// seconds decodes expires_in sent either as a JSON number or a numeric string.
type seconds int64

func (s *seconds) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*s = 0

		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expires_in %s: %w", data, err)
	}

	*s = seconds(v)

	return nil
}
