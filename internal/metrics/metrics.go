package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	CacheHit     = "hit"
	CacheMiss    = "miss"
)

// StatusTransportError labels resource calls that never got a response.
const StatusTransportError = "transport_error"

// Collectors holds the SDK's Prometheus collectors. A nil *Collectors is valid
// and records nothing.
type Collectors struct {
	// Tracks resource calls by route and HTTP status.
	RequestsTotal *prometheus.CounterVec

	// Measures duration of resource calls.
	RequestDuration *prometheus.HistogramVec

	// Tracks token endpoint calls by grant and result.
	TokenRequestsTotal *prometheus.CounterVec

	// Tracks response cache hits and misses.
	CacheAccessTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "connect_api_requests_total",
				Help: "Total number of Connect API resource requests (by route and status).",
			},
			[]string{"route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "connect_api_request_duration_seconds",
				Help:    "Duration of Connect API resource requests in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
			},
			[]string{"route"},
		),
		TokenRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "connect_token_requests_total",
				Help: "Total number of OAuth2 token requests (by grant and result).",
			},
			[]string{"grant", "outcome"},
		),
		CacheAccessTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "connect_cache_access_total",
				Help: "Number of response cache hits/misses.",
			},
			[]string{"result"}, // hit | miss
		),
	}
}

// ObserveRequest records one resource call. status 0 means no response was received.
func (c *Collectors) ObserveRequest(route string, status int, start time.Time) {
	if c == nil {
		return
	}

	label := StatusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}

	c.RequestsTotal.WithLabelValues(route, label).Inc()
	c.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// TokenRequest records one token endpoint call.
func (c *Collectors) TokenRequest(grant string, err error) {
	if c == nil {
		return
	}

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}

	c.TokenRequestsTotal.WithLabelValues(grant, outcome).Inc()
}

// CacheAccess records a cache lookup.
func (c *Collectors) CacheAccess(hit bool) {
	if c == nil {
		return
	}

	result := CacheMiss
	if hit {
		result = CacheHit
	}

	c.CacheAccessTotal.WithLabelValues(result).Inc()
}
