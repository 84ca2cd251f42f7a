package webcontainer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors of one container.
type metrics struct {
	servicesRegistered prometheus.Gauge
	serviceRequests    *prometheus.CounterVec
	serviceDuration    prometheus.Histogram
	syncPasses         *prometheus.CounterVec
	syncDuration       prometheus.Histogram
	wsErrors           *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		servicesRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "services_registered",
			Help:      "Number of client script services in the registry",
		}),

		serviceRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_requests_total",
			Help:      "Total service requests by service id and status",
		}, []string{"service", "status"}),

		serviceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "service_request_duration_seconds",
			Help:      "Service request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		syncPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_passes_total",
			Help:      "Total synchronization passes by result",
		}, []string{"result"}),

		syncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Synchronization pass duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_errors_total",
			Help:      "Total WebSocket errors by type",
		}, []string{"type"}),
	}
}

// observeService records one service request. The registry only holds
// registered ids, so unknown ids are folded into one label value.
func (m *metrics) observeService(known func(string) bool) func(string, int, time.Duration) {
	return func(id string, status int, elapsed time.Duration) {
		if !known(id) {
			id = "unknown"
		}
		m.serviceRequests.WithLabelValues(id, strconv.Itoa(status)).Inc()
		m.serviceDuration.Observe(elapsed.Seconds())
	}
}

func (m *metrics) observeSync(err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.syncPasses.WithLabelValues(result).Inc()
	m.syncDuration.Observe(elapsed.Seconds())
}
