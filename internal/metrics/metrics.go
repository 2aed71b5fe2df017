package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Geolocation lookup outcomes.
const (
	GeoSkipped  = "skipped"
	GeoResolved = "resolved"
	GeoFailed   = "failed"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "krs",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "krs",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "krs",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "krs",
			Name:      "orders_created_total",
			Help:      "Total number of stored orders.",
		},
	)

	selfiesStored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "krs",
			Name:      "selfies_stored_total",
			Help:      "Total number of uploaded selfie files written to disk.",
		},
	)

	geoLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "krs",
			Name:      "geo_lookups_total",
			Help:      "Geolocation lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		ordersCreated,
		selfiesStored,
		geoLookups,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the function that records its completion.
func RequestStarted() func(method, route string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(method, route string, status int) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		method = strings.ToUpper(method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// OrderCreated counts a persisted order.
func OrderCreated() { ordersCreated.Inc() }

// SelfieStored counts an uploaded file written to disk.
func SelfieStored() { selfiesStored.Inc() }

// GeoLookup records the outcome of a geolocation lookup.
func GeoLookup(outcome string) {
	geoLookups.WithLabelValues(outcome).Inc()
}
