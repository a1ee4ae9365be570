package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics prometheus-метрики сервиса: входящие HTTP запросы и
// исходящие вызовы workflow-endpoints
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	workflowCallsTotal   *prometheus.CounterVec
	workflowCallDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		workflowCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "workflow_calls_total",
			Help: "Total number of outbound workflow endpoint calls",
		}, []string{"service", "operation", "result"}),

		workflowCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workflow_call_duration_seconds",
			Help:    "Outbound workflow endpoint call duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
	}
}

// ObserveHTTPRequest учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveWorkflowCall учитывает исходящий вызов workflow endpoint.
// result: "ok" при 2xx, "rejected" при non-2xx, "transport_error" при сетевой ошибке.
func (m *Metrics) ObserveWorkflowCall(operation, result string, duration time.Duration) {
	m.workflowCallsTotal.WithLabelValues(m.serviceName, operation, result).Inc()
	m.workflowCallDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}
