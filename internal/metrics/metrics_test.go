package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/connect/internal/metrics"
)

func TestCollectors_ObserveRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)

	start := time.Now()
	collectors.ObserveRequest("search/images/", 200, start)
	collectors.ObserveRequest("search/images/", 200, start)
	collectors.ObserveRequest("images/", 404, start)
	collectors.ObserveRequest("images/", 0, start)

	assert.InDelta(t, 2, testutil.ToFloat64(collectors.RequestsTotal.WithLabelValues("search/images/", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(collectors.RequestsTotal.WithLabelValues("images/", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		collectors.RequestsTotal.WithLabelValues("images/", metrics.StatusTransportError)), 0)

	count, err := testutil.GatherAndCount(reg, "connect_api_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCollectors_TokenRequest(t *testing.T) {
	t.Parallel()

	collectors := metrics.New(prometheus.NewRegistry())

	collectors.TokenRequest("client_credentials", nil)
	collectors.TokenRequest("refresh_token", errors.New("invalid_grant"))

	assert.InDelta(t, 1, testutil.ToFloat64(
		collectors.TokenRequestsTotal.WithLabelValues("client_credentials", metrics.OutcomeOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		collectors.TokenRequestsTotal.WithLabelValues("refresh_token", metrics.OutcomeError)), 0)
}

func TestCollectors_CacheAccess(t *testing.T) {
	t.Parallel()

	collectors := metrics.New(nil)

	collectors.CacheAccess(true)
	collectors.CacheAccess(false)
	collectors.CacheAccess(false)

	assert.InDelta(t, 1, testutil.ToFloat64(collectors.CacheAccessTotal.WithLabelValues(metrics.CacheHit)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(collectors.CacheAccessTotal.WithLabelValues(metrics.CacheMiss)), 0)
}

func TestCollectors_NilIsNoop(t *testing.T) {
	t.Parallel()

	var collectors *metrics.Collectors

	assert.NotPanics(t, func() {
		collectors.ObserveRequest("countries/", 200, time.Now())
		collectors.TokenRequest("password", nil)
		collectors.CacheAccess(true)
	})
}

func TestNew_RegistersWithRegisterer(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collectors := metrics.New(reg)
	collectors.TokenRequest("password", nil)

	count, err := testutil.GatherAndCount(reg, "connect_token_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Panics(t, func() { metrics.New(reg) })
}
