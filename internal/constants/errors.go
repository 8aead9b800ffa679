package constants

import "errors"

// Configuration errors.
var (
	ErrClientKeyRequired  = errors.New("client key is required")
	ErrNoGrantAvailable   = errors.New("no grant strategy available: provide a refresh token, username and password, or a client secret")
	ErrBaseURIRequired    = errors.New("connect base URI is required")
	ErrAuthURIRequired    = errors.New("auth base URI is required")
	ErrConfigRequired     = errors.New("config is required")
	ErrUnsupportedOutput  = errors.New("unsupported output format")
	ErrNoPasswordTerminal = errors.New("password required but stdin is not a terminal")
)

// Cache errors.
var (
	ErrKeyNotFound           = errors.New("key not found")
	ErrEntryExpired          = errors.New("entry expired")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
)
