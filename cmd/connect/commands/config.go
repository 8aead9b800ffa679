package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/connect/internal/client"
	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
	"github.com/fivetwenty-io/connect/pkg/connectsdk"
)

// Settings is the resolved CLI configuration from flags, CONNECT_* env,
// .env and the config file.
type Settings struct {
	ClientKey    string        `json:"client_key"    yaml:"client_key"`
	ClientSecret string        `json:"client_secret" yaml:"client_secret"`
	Username     string        `json:"username"      yaml:"username"`
	Password     string        `json:"-"             yaml:"-"`
	RefreshToken string        `json:"-"             yaml:"-"`
	ConnectURI   string        `json:"connect_uri"   yaml:"connect_uri"`
	AuthURI      string        `json:"auth_uri"      yaml:"auth_uri"`
	Output       string        `json:"output"        yaml:"output"`
	Verbose      bool          `json:"verbose"       yaml:"verbose"`
	Timeout      time.Duration `json:"timeout"       yaml:"timeout"`
	Cache        string        `json:"cache"         yaml:"cache"`
	NATSURL      string        `json:"nats_url"      yaml:"nats_url"`
	CacheTTL     time.Duration `json:"cache_ttl"     yaml:"cache_ttl"`
}

// passwordReader reads a password without echo. Replaced in tests.
var passwordReader = readPasswordFromTerminal

func loadSettings() *Settings {
	return &Settings{
		ClientKey:    viper.GetString("client-key"),
		ClientSecret: viper.GetString("client-secret"),
		Username:     viper.GetString("username"),
		Password:     viper.GetString("password"),
		RefreshToken: viper.GetString("refresh-token"),
		ConnectURI:   viper.GetString("connect-uri"),
		AuthURI:      viper.GetString("auth-uri"),
		Output:       viper.GetString("output"),
		Verbose:      viper.GetBool("verbose"),
		Timeout:      viper.GetDuration("timeout"),
		Cache:        viper.GetString("cache"),
		NATSURL:      viper.GetString("nats-url"),
		CacheTTL:     viper.GetDuration("cache-ttl"),
	}
}

func readPasswordFromTerminal() (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin descriptor fits in int

	if !term.IsTerminal(fd) {
		return "", constants.ErrNoPasswordTerminal
	}

	fmt.Fprint(os.Stderr, "Password: ")

	password, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}

	return string(password), nil
}

// buildConfig turns settings into a library config. The returned close function
// releases the cache backend.
func buildConfig(settings *Settings) (*connect.Config, func(), error) {
	password := settings.Password
	if settings.Username != "" && password == "" && settings.RefreshToken == "" {
		var err error

		password, err = passwordReader()
		if err != nil {
			return nil, nil, err
		}
	}

	logger, err := newLogger(settings.Verbose)
	if err != nil {
		return nil, nil, err
	}

	cache, closeCache, err := newCache(settings)
	if err != nil {
		return nil, nil, err
	}

	config := &connect.Config{
		ClientKey:      settings.ClientKey,
		ClientSecret:   settings.ClientSecret,
		Username:       settings.Username,
		Password:       password,
		RefreshToken:   settings.RefreshToken,
		ConnectBaseURI: settings.ConnectURI,
		AuthBaseURI:    settings.AuthURI,
		HTTPTimeout:    settings.Timeout,
		Debug:          settings.Verbose,
		Logger:         logger,
		UserAgent:      "connect-cli",
		Cache:          cache,
		CacheTTL:       settings.CacheTTL,
	}

	cleanup := func() {
		closeCache()
		_ = logger.Sync()
	}

	return config, cleanup, nil
}

func newLogger(verbose bool) (*connect.ZapLogger, error) {
	if verbose {
		return connect.NewDevelopmentLogger("debug")
	}

	return connect.NewProductionLogger("warn")
}

func newCache(settings *Settings) (connect.Cache, func(), error) {
	noop := func() {}

	cacheType := connect.CacheType(strings.ToLower(settings.Cache))
	if cacheType == "" || cacheType == connect.CacheTypeNone {
		return nil, noop, nil
	}

	cache, err := connect.NewCacheFromConfig(&connect.CacheConfig{
		Type:    cacheType,
		MaxSize: constants.DefaultCacheSize,
		NATS: &connect.NATSKVConfig{
			URL:    settings.NATSURL,
			Bucket: constants.DefaultNATSBucket,
			TTL:    settings.CacheTTL,
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s cache: %w", cacheType, err)
	}

	if closer, ok := cache.(interface{ Close() }); ok {
		return cache, closer.Close, nil
	}

	return cache, noop, nil
}

// newClient builds an SDK client from the current settings.
func newClient(ctx context.Context) (*client.Client, func(), error) {
	config, cleanup, err := buildConfig(loadSettings())
	if err != nil {
		return nil, nil, err
	}

	sdk, err := connectsdk.New(ctx, config)
	if err != nil {
		cleanup()

		return nil, nil, err
	}

	c, ok := sdk.(*client.Client)
	if !ok {
		cleanup()

		return nil, nil, fmt.Errorf("%w: %T", ErrUnexpectedClient, sdk)
	}

	return c, cleanup, nil
}
