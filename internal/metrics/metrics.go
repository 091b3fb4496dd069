// Package metrics holds the Prometheus instruments for the browse server and
// the recommendation gateway client.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ziyou_gateway_request_duration_seconds",
			Help:    "Duration of recommendation service calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"outcome"}, // "ok", "http_error", "transport_error", "decode_error", "breaker_open"
	)

	GatewayGamesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ziyou_gateway_games_returned",
			Help:    "Number of games returned per successful recommendation",
			Buckets: []float64{0, 1, 2, 4, 6, 8, 10, 15, 20},
		},
	)

	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ziyou_http_request_duration_seconds",
			Help:    "Duration of browse API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Engine
	WishlistMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ziyou_wishlist_mutations_total",
			Help: "Wishlist mutations by operation",
		},
		[]string{"op"}, // "add", "remove", "toggle"
	)

	Reshuffles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ziyou_reshuffles_total",
			Help: "Explicit reshuffle commands served",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ziyou_active_sessions",
			Help: "Browser sessions currently held in memory",
		},
	)
)

// ObserveGateway records one gateway call.
func ObserveGateway(outcome string, started time.Time) {
	GatewayRequestDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveHTTP records one API request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
