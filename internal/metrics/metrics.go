package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is safe to use through a nil pointer; every method then does nothing.
type Metrics struct {
	HoldsCreated          *prometheus.CounterVec
	HoldsSettled          *prometheus.CounterVec
	AllocationFailures    *prometheus.CounterVec
	AllocationDuration    prometheus.Histogram
	TicketTransitions     *prometheus.CounterVec
	FeesCollected         *prometheus.CounterVec
	FeeCollectionFailures prometheus.Counter
	ConsistencyViolations prometheus.Counter
	PriceLookups          *prometheus.CounterVec
	HTTPRequests          *prometheus.CounterVec
	HTTPDuration          *prometheus.HistogramVec
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HoldsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_holds_created_total",
				Help: "Holds created, by currency.",
			},
			[]string{"currency"},
		),
		HoldsSettled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_holds_settled_total",
				Help: "Holds moved to a terminal status.",
			},
			[]string{"status"},
		),
		AllocationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_allocation_failures_total",
				Help: "Failed multi-currency allocations.",
			},
			[]string{"reason"},
		),
		AllocationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holdengine_allocation_duration_seconds",
				Help:    "Duration of multi-currency allocations.",
				Buckets: prometheus.DefBuckets,
			},
		),
		TicketTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_ticket_transitions_total",
				Help: "Ticket status transitions, by target status.",
			},
			[]string{"status"},
		),
		FeesCollected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_fees_collected_total",
				Help: "Server fees realized into platform revenue.",
			},
			[]string{"currency"},
		),
		FeeCollectionFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "holdengine_fee_collection_failures_total",
				Help: "Server fee collections left pending after a failure.",
			},
		),
		ConsistencyViolations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "holdengine_consistency_violations_total",
				Help: "Ledger invariant violations detected.",
			},
		),
		PriceLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_price_lookups_total",
				Help: "Price oracle lookups by result.",
			},
			[]string{"result"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "holdengine_http_requests_total",
				Help: "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "holdengine_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
	}
	registry.MustRegister(
		m.HoldsCreated,
		m.HoldsSettled,
		m.AllocationFailures,
		m.AllocationDuration,
		m.TicketTransitions,
		m.FeesCollected,
		m.FeeCollectionFailures,
		m.ConsistencyViolations,
		m.PriceLookups,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncHoldCreated(currency string) {
	if m == nil {
		return
	}
	m.HoldsCreated.WithLabelValues(currency).Inc()
}

func (m *Metrics) IncHoldSettled(status string) {
	if m == nil {
		return
	}
	m.HoldsSettled.WithLabelValues(status).Inc()
}

func (m *Metrics) IncAllocationFailure(reason string) {
	if m == nil {
		return
	}
	m.AllocationFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveAllocation(d time.Duration) {
	if m == nil {
		return
	}
	m.AllocationDuration.Observe(d.Seconds())
}

func (m *Metrics) IncTicketTransition(status string) {
	if m == nil {
		return
	}
	m.TicketTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncFeeCollected(currency string) {
	if m == nil {
		return
	}
	m.FeesCollected.WithLabelValues(currency).Inc()
}

func (m *Metrics) IncFeeCollectionFailure() {
	if m == nil {
		return
	}
	m.FeeCollectionFailures.Inc()
}

func (m *Metrics) IncConsistencyViolation() {
	if m == nil {
		return
	}
	m.ConsistencyViolations.Inc()
}

func (m *Metrics) IncPriceLookup(result string) {
	if m == nil {
		return
	}
	m.PriceLookups.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency labelled by the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
