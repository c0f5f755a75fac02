package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all advisor service metrics
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business metrics
	RecommendationsTotal   *prometheus.CounterVec
	ShippingHealthScore    prometheus.Histogram
	ProjectedSavings       prometheus.Histogram
	RecommendationDuration prometheus.Histogram

	// CRM sync metrics
	CRMSyncTotal    *prometheus.CounterVec
	CRMSyncDuration prometheus.Histogram

	// Circuit breaker metrics
	CircuitBreakerState *prometheus.GaugeVec
	CircuitBreakerTrips *prometheus.CounterVec
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "advisor",
	}
}

// New creates a new Metrics instance
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"service", "method", "path"},
	)

	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being processed",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "recommendations_total",
			Help:      "Total number of fulfillment recommendations computed",
		},
		[]string{"service", "strategy", "confidence"},
	)

	m.ShippingHealthScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "shipping_health_score",
			Help:        "Distribution of shipping health scores",
			Buckets:     []float64{35, 45, 55, 65, 75, 85, 95},
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.ProjectedSavings = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "projected_monthly_savings_dollars",
			Help:        "Distribution of projected total monthly savings",
			Buckets:     []float64{100, 500, 1000, 2500, 5000, 10000, 25000},
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.RecommendationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "recommendation_duration_seconds",
			Help:        "Time spent computing a recommendation",
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05},
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.CRMSyncTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "crm_sync_total",
			Help:      "Total number of CRM contact sync attempts",
		},
		[]string{"service", "action", "status"},
	)

	m.CRMSyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "crm_sync_duration_seconds",
			Help:        "CRM sync call duration in seconds",
			Buckets:     []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"service", "breaker"},
	)

	m.CircuitBreakerTrips = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "circuit_breaker_trips_total",
			Help:      "Total number of circuit breaker trips",
		},
		[]string{"service", "breaker"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.RecommendationsTotal,
		m.ShippingHealthScore,
		m.ProjectedSavings,
		m.RecommendationDuration,
		m.CRMSyncTotal,
		m.CRMSyncDuration,
		m.CircuitBreakerState,
		m.CircuitBreakerTrips,
	)

	return m
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordRecommendation records a computed recommendation
func (m *Metrics) RecordRecommendation(strategy, confidence string, healthScore int, totalSavings float64, duration time.Duration) {
	m.RecommendationsTotal.WithLabelValues(m.serviceName, strategy, confidence).Inc()
	m.ShippingHealthScore.Observe(float64(healthScore))
	m.ProjectedSavings.Observe(totalSavings)
	m.RecommendationDuration.Observe(duration.Seconds())
}

// RecordCRMSync records a CRM sync attempt
func (m *Metrics) RecordCRMSync(action string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.CRMSyncTotal.WithLabelValues(m.serviceName, action, status).Inc()
	m.CRMSyncDuration.Observe(duration.Seconds())
}

// SetCircuitBreakerState sets the state gauge for a breaker
func (m *Metrics) SetCircuitBreakerState(breaker string, state int) {
	m.CircuitBreakerState.WithLabelValues(m.serviceName, breaker).Set(float64(state))
}

// RecordCircuitBreakerTrip increments the trip counter for a breaker
func (m *Metrics) RecordCircuitBreakerTrip(breaker string) {
	m.CircuitBreakerTrips.WithLabelValues(m.serviceName, breaker).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
