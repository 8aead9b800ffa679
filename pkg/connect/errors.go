package connect

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError reports credentials or settings that cannot produce a working client.
// It is never retried.
type ConfigurationError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}

	return "configuration error: " + e.Reason
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError reports a filter value that was rejected before it reached a request.
type ValidationError struct {
	Category string
	Value    string
	Accepted []string
	Reason   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Accepted) > 0 {
		return fmt.Sprintf("invalid %s value %q: accepted values are %s",
			e.Category, e.Value, strings.Join(e.Accepted, ", "))
	}

	return fmt.Sprintf("invalid %s value %q: %s", e.Category, e.Value, e.Reason)
}

// AuthErrorKind classifies a rejected authentication attempt.
type AuthErrorKind int

const (
	// AuthRejected is any rejection not covered by a more specific kind.
	AuthRejected AuthErrorKind = iota
	// AuthInvalidCredentials means the client key, secret or client itself was refused.
	AuthInvalidCredentials
	// AuthInvalidGrant means the grant (refresh token, user password) is expired or revoked.
	AuthInvalidGrant
)

// String returns a readable name of the kind.
func (k AuthErrorKind) String() string {
	switch k {
	case AuthInvalidCredentials:
		return "invalid_credentials"
	case AuthInvalidGrant:
		return "invalid_grant"
	default:
		return "rejected"
	}
}

// AuthenticationError reports that the token endpoint refused the credentials or grant.
type AuthenticationError struct {
	Kind        AuthErrorKind
	GrantType   string
	StatusCode  int
	Code        string
	Description string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	msg := fmt.Sprintf("authentication failed (%s grant, HTTP %d)", e.GrantType, e.StatusCode)
	if e.Code != "" {
		msg += ": " + e.Code
	}

	if e.Description != "" {
		msg += ": " + e.Description
	}

	return msg
}

// RequiresReauthentication reports whether the caller must supply fresh user input
// (new credentials or a new refresh token) before trying again.
func (e *AuthenticationError) RequiresReauthentication() bool {
	return e.Kind == AuthInvalidGrant
}

// TransportError reports a network or timeout failure on either the auth or resource call.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a timeout.
func (e *TransportError) Timeout() bool {
	var timeout interface{ Timeout() bool }
	if errors.As(e.Err, &timeout) {
		return timeout.Timeout()
	}

	return false
}

// ReasonParseFailure marks a RequestError raised for an undecodable success body.
const ReasonParseFailure = "parse failure"

// RequestError reports a non-2xx resource response or an unparseable response body.
type RequestError struct {
	StatusCode int
	Body       string
	Reason     string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Reason != "" {
		if e.Err != nil {
			return fmt.Sprintf("request failed with status %d: %s: %v", e.StatusCode, e.Reason, e.Err)
		}

		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Reason)
	}

	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the decode error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Static errors.
var (
	ErrMixedParameterKind = errors.New("parameter already holds a value of the other kind")
	ErrNilExecutor        = errors.New("request has no executor")
)

// IsAuthenticationError checks if the error is an authentication rejection.
func IsAuthenticationError(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// RequiresReauthentication checks if the error asks for new user credentials.
func RequiresReauthentication(err error) bool {
	authErr := &AuthenticationError{}
	if errors.As(err, &authErr) {
		return authErr.RequiresReauthentication()
	}

	return false
}

// IsValidationError checks if the error is a filter validation failure.
func IsValidationError(err error) bool {
	valErr := &ValidationError{}

	return errors.As(err, &valErr)
}

// IsConfigurationError checks if the error is a configuration failure.
func IsConfigurationError(err error) bool {
	cfgErr := &ConfigurationError{}

	return errors.As(err, &cfgErr)
}

// IsTransportError checks if the error is a network failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsUnauthorized checks if a resource call was rejected with 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsNotFound checks if a resource call was rejected with 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
