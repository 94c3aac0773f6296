// Package metrics holds the Prometheus collectors for the service.
// Collectors are created with promauto, which registers them with the
// default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks the duration of HTTP requests per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestsTotal counts HTTP requests per route.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// URLsShortenedTotal counts successfully created mappings.
	URLsShortenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_shortened_total",
			Help: "Total number of short URLs created",
		},
	)

	// RedirectsTotal counts successfully resolved short codes.
	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful redirects",
		},
	)

	// ClicksRecordedTotal counts click increments applied to mappings.
	ClicksRecordedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_recorded_total",
			Help: "Total number of click events recorded",
		},
	)

	// ActiveURLs tracks the number of mappings held in the store.
	ActiveURLs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_urls",
			Help: "Number of mappings currently stored",
		},
	)
)

// RecordURLShortened increments the creation counter and the active gauge.
func RecordURLShortened() {
	URLsShortenedTotal.Inc()
	ActiveURLs.Inc()
}

// RecordRedirect increments the redirect counter.
func RecordRedirect() {
	RedirectsTotal.Inc()
}

// RecordClick increments the click counter.
func RecordClick() {
	ClicksRecordedTotal.Inc()
}
