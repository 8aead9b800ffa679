package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/connect/internal/auth"
	"github.com/fivetwenty-io/connect/internal/constants"
	"github.com/fivetwenty-io/connect/pkg/connect"
)

// The tests in this file share the global viper instance and are not parallel.

func newConnectServer(t *testing.T, check func(r *http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case constants.TokenPath:
			_, _ = w.Write([]byte(`{"access_token":"cli-token","token_type":"Bearer","expires_in":1800}`))
		case "/v3/countries/":
			_, _ = w.Write([]byte(`{"countries":[{"iso_alpha_2":"NO","iso_alpha_3":"NOR","name":"Norway"}]}`))
		case "/v3/search/images/editorial/":
			check(r)
			_, _ = w.Write([]byte(`{"result_count":1,"images":[{"id":"42","title":"Regatta"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"unknown route"}`))
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func configureViper(t *testing.T, server *httptest.Server, output string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("client-key", "key")
	viper.Set("client-secret", "secret")
	viper.Set("connect-uri", server.URL+"/v3")
	viper.Set("auth-uri", server.URL)
	viper.Set("output", output)
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCountriesCommand_JSON(t *testing.T) {
	server := newConnectServer(t, nil)
	configureViper(t, server, constants.OutputJSON)

	out, err := runCommand(t, NewCountriesCommand())
	require.NoError(t, err)

	var result connect.CountriesResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Countries, 1)
	assert.Equal(t, "Norway", result.Countries[0].Name)
}

func TestCountriesCommand_Table(t *testing.T) {
	server := newConnectServer(t, nil)
	configureViper(t, server, constants.OutputTable)

	out, err := runCommand(t, NewCountriesCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "NOR")
	assert.Contains(t, out, "Norway")
}

func TestSearchCommand_Editorial(t *testing.T) {
	var query atomic.Value

	server := newConnectServer(t, func(r *http.Request) { query.Store(r.URL.RawQuery) })
	configureViper(t, server, constants.OutputYAML)

	out, err := runCommand(t, NewSearchCommand(),
		"harbour", "--type", "editorial", "--editorial-segment", "news,sport", "--page-size", "5")
	require.NoError(t, err)

	assert.Equal(t, "editorial_segments=news,sport&page_size=5&phrase=harbour", query.Load())
	assert.Contains(t, out, "Regatta")
}

func TestSearchCommand_InvalidFilter(t *testing.T) {
	server := newConnectServer(t, func(*http.Request) { t.Error("unexpected search request") })
	configureViper(t, server, constants.OutputJSON)

	_, err := runCommand(t, NewSearchCommand(), "harbour", "--type", "editorial", "--editorial-segment", "gossip")
	require.Error(t, err)
	assert.True(t, connect.IsValidationError(err))
}

func TestSearchCommand_UnknownType(t *testing.T) {
	server := newConnectServer(t, nil)
	configureViper(t, server, constants.OutputJSON)

	_, err := runCommand(t, NewSearchCommand(), "harbour", "--type", "video")
	require.ErrorIs(t, err, ErrUnknownAssetType)
}

func TestImagesCommand_RequiresID(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := runCommand(t, NewImagesCommand())
	require.ErrorIs(t, err, ErrIDRequired)
}

func TestRequestError_Surfaced(t *testing.T) {
	server := newConnectServer(t, nil)
	configureViper(t, server, constants.OutputJSON)

	_, err := runCommand(t, NewCollectionsCommand())
	require.Error(t, err)
	assert.True(t, connect.IsNotFound(err))
}

func TestVersionCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("output", constants.OutputJSON)

	out, err := runCommand(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc","built":"today"}`, out)
}

func TestRender_UnsupportedOutput(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("output", "xml")

	err := render(&bytes.Buffer{}, struct{}{}, nil, nil)
	require.ErrorIs(t, err, constants.ErrUnsupportedOutput)
}

func TestBuildConfig_PromptsForPassword(t *testing.T) {
	original := passwordReader
	t.Cleanup(func() { passwordReader = original })

	prompted := 0
	passwordReader = func() (string, error) {
		prompted++

		return "typed", nil
	}

	config, cleanup, err := buildConfig(&Settings{ClientKey: "key", Username: "user"})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	assert.Equal(t, 1, prompted)
	assert.Equal(t, "typed", config.Password)
	assert.Nil(t, config.Cache)

	_, cleanup, err = buildConfig(&Settings{ClientKey: "key", Username: "user", Password: "given"})
	require.NoError(t, err)
	t.Cleanup(cleanup)
	assert.Equal(t, 1, prompted)
}

func TestBuildConfig_NoTerminal(t *testing.T) {
	original := passwordReader
	t.Cleanup(func() { passwordReader = original })

	passwordReader = func() (string, error) { return "", constants.ErrNoPasswordTerminal }

	_, _, err := buildConfig(&Settings{ClientKey: "key", Username: "user"})
	require.ErrorIs(t, err, constants.ErrNoPasswordTerminal)
}

func TestNewCache(t *testing.T) {
	cache, closeCache, err := newCache(&Settings{Cache: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &connect.MemoryCache{}, cache)
	closeCache()

	cache, _, err = newCache(&Settings{Cache: "none"})
	require.NoError(t, err)
	assert.Nil(t, cache)

	_, _, err = newCache(&Settings{Cache: "redis"})
	require.ErrorIs(t, err, constants.ErrUnsupportedCacheType)
}

func TestTokenInfo(t *testing.T) {
	expires := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token := &auth.Token{AccessToken: "secret-token", TokenType: "Bearer", RefreshToken: "r", ExpiresAt: expires}

	masked := tokenInfo(auth.GrantRefreshToken, token, false)
	assert.Equal(t, maskedToken, masked.AccessToken)
	assert.True(t, masked.HasRefreshToken)
	require.NotNil(t, masked.ExpiresAt)
	assert.Equal(t, expires, *masked.ExpiresAt)

	shown := tokenInfo(auth.GrantRefreshToken, token, true)
	assert.Equal(t, "secret-token", shown.AccessToken)

	empty := tokenInfo(auth.GrantPassword, nil, false)
	assert.Empty(t, empty.AccessToken)
	assert.Nil(t, empty.ExpiresAt)
}

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("date_from", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())

	_, err = parseDate("date_from", "01/03/2024")
	require.Error(t, err)
	assert.True(t, connect.IsValidationError(err))
	assert.True(t, strings.Contains(err.Error(), "date_from"))
}

func TestDownloadRequest_Validation(t *testing.T) {
	req, err := downloadRequest(connect.NewDownload(nil).WithID("1"), &downloadOptions{fileType: "jpg", height: 200})
	require.NoError(t, err)
	assert.Equal(t, "/downloads/?file_type=jpg&height=200&id=1", req.URL())

	_, err = downloadRequest(connect.NewDownload(nil), &downloadOptions{fileType: "bmp"})
	assert.True(t, connect.IsValidationError(err))

	_, err = downloadRequest(connect.NewDownload(nil), &downloadOptions{productID: -3})
	assert.True(t, connect.IsValidationError(err))
}
