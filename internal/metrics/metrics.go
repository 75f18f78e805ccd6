// Package metrics holds the Prometheus collectors of the catalog service.
//
//	r.Use(metrics.Middleware)
//	r.Get("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of catalog store operations in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1, 3},
		},
		[]string{"operation"},
	)

	// Outcomes counts catalog operations by result kind
	// (ok, not_found, no_match, bad_request, conflict, unexpected).
	Outcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_outcomes_total",
			Help:      "Catalog operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	Registry.MustRegister(RequestDuration, RequestTotal, RequestInFlight, StoreDuration, Outcomes)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count per chi route pattern, so that
// /api/products/1 and /api/products/2 share one series.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		RequestInFlight.Inc()
		defer RequestInFlight.Dec()

		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rr, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := strconv.Itoa(rr.status)

		RequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		RequestTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

func Handler() http.HandlerFunc {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{EnableOpenMetrics: true}).ServeHTTP
}

// ObserveStore records a store call duration:
//
//	defer metrics.ObserveStore("find", time.Now())
func ObserveStore(operation string, start time.Time) {
	StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func RecordOutcome(operation, outcome string) {
	Outcomes.WithLabelValues(operation, outcome).Inc()
}
