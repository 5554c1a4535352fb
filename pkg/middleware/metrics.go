package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics this package exports.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "widgetd").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event-dispatch duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	Registry prometheus.Registerer
}

// MetricsOption configures MetricsConfig.
type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "widgetd",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds every counter/gauge/histogram this package exports: a
// widget session in place of a page session, dispatched operations in
// place of framework events, and a task-queue depth gauge with no direct
// upstream equivalent since the source has no worker pool of its own.
type metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	eventErrors    *prometheus.CounterVec
	activeSessions prometheus.Gauge
	sessionErrors  prometheus.Counter
	mountErrors    prometheus.Counter
	taskQueueDepth prometheus.Gauge
}

var (
	global   *metrics
	globalMu sync.Mutex
)

func initMetrics(cfg MetricsConfig) *metrics {
	factory := promauto.With(cfg.Registry)
	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "events_total",
			Help:        "Total number of client operations dispatched to a widget session",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Name:        "event_duration_seconds",
			Help:        "Client operation dispatch duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"op"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "event_errors_total",
			Help:        "Total number of client operations that returned an error",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "active_sessions",
			Help:        "Number of currently connected widget sessions",
			ConstLabels: cfg.ConstLabels,
		}),

		sessionErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "session_errors_total",
			Help:        "Total number of error frames sent to a client",
			ConstLabels: cfg.ConstLabels,
		}),

		mountErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "mount_errors_total",
			Help:        "Total number of failed widget mount attempts",
			ConstLabels: cfg.ConstLabels,
		}),

		taskQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "task_queue_in_flight",
			Help:        "Number of with-task hook tasks currently running",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Init installs the process-wide metrics registration. Safe to call more
// than once; only the first call's configuration takes effect. Call this
// once at startup before serving traffic; unlike a router-middleware
// constructor, Init has no chain to hang metrics off of, since this
// reconciler's dispatch path is a direct function call per client
// message rather than a middleware chain.
func Init(opts ...MetricsOption) {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = initMetrics(cfg)
	}
}

func ensure() *metrics {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = initMetrics(defaultMetricsConfig())
	}
	return global
}

// RecordEvent records one dispatched client operation's outcome and
// duration.
func RecordEvent(op string, d time.Duration, err error) {
	m := ensure()
	status := "ok"
	if err != nil {
		status = "error"
		m.eventErrors.WithLabelValues(op).Inc()
	}
	m.eventsTotal.WithLabelValues(op, status).Inc()
	m.eventDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordSessionOpen increments the active-session gauge.
func RecordSessionOpen() { ensure().activeSessions.Inc() }

// RecordSessionClose decrements the active-session gauge.
func RecordSessionClose() { ensure().activeSessions.Dec() }

// RecordSessionError counts an error frame sent to a client.
func RecordSessionError() { ensure().sessionErrors.Inc() }

// RecordMountError counts a failed widget mount attempt.
func RecordMountError() { ensure().mountErrors.Inc() }

// RecordTaskStart increments the in-flight task-queue gauge.
func RecordTaskStart() { ensure().taskQueueDepth.Inc() }

// RecordTaskDone decrements the in-flight task-queue gauge.
func RecordTaskDone() { ensure().taskQueueDepth.Dec() }
