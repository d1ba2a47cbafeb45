package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках можно передавать nil.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge

	bookingsCreated   prometheus.Counter
	slotConflicts     prometheus.Counter
	statusChanges     *prometheus.CounterVec
	bookingsDeleted   prometheus.Counter
	availabilityFails prometheus.Counter
}

// New регистрирует метрики в глобальном prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном registry (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		dbQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}),
		dbInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		dbIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		bookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created booking requests",
			ConstLabels: constLabels,
		}),
		slotConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Total number of booking attempts rejected because the slot was taken",
			ConstLabels: constLabels,
		}),
		statusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_changes_total",
			Help:        "Total number of booking status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		bookingsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_deleted_total",
			Help:        "Total number of deleted bookings",
			ConstLabels: constLabels,
		}),
		availabilityFails: factory.NewCounter(prometheus.CounterOpts{
			Name:        "availability_check_failures_total",
			Help:        "Total number of availability checks that could not read the booking store",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUse.Set(float64(inUse))
	m.dbIdle.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) SlotConflict() {
	if m == nil {
		return
	}
	m.slotConflicts.Inc()
}

func (m *Metrics) StatusChanged(from, to string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(from, to).Inc()
}

func (m *Metrics) BookingDeleted() {
	if m == nil {
		return
	}
	m.bookingsDeleted.Inc()
}

func (m *Metrics) AvailabilityCheckFailed() {
	if m == nil {
		return
	}
	m.availabilityFails.Inc()
}
