// Package metrics содержит prometheus коллекторы сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCountTotal    *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Планирование уборок
	SchedulingPassDuration       *prometheus.HistogramVec
	SchedulingPassesTotal        *prometheus.CounterVec
	SchedulingWindowsTotal       *prometheus.CounterVec
	SchedulingOverlapGroupsTotal *prometheus.CounterVec
	SchedulingChangedTotal       *prometheus.CounterVec

	serviceName string
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCountTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count_total",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		DBWaitDurationTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds_total",
			Help: "Total time blocked waiting for a new connection",
		}, []string{"service"}),

		SchedulingPassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cleaning_scheduling_pass_duration_seconds",
			Help:    "Duration of a cleaning scheduling pass including persistence",
			Buckets: prometheus.DefBuckets,
		}, []string{"service"}),

		SchedulingPassesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleaning_scheduling_passes_total",
			Help: "Total number of cleaning scheduling passes",
		}, []string{"service", "status"}),

		SchedulingWindowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleaning_windows_computed_total",
			Help: "Total number of cleaning windows computed",
		}, []string{"service"}),

		SchedulingOverlapGroupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleaning_overlap_groups_total",
			Help: "Total number of overlap groups detected",
		}, []string{"service"}),

		SchedulingChangedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cleaning_assignments_changed_total",
			Help: "Total number of cleaning dates written back",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCountTotal,
		m.DBWaitDurationTotal,
		m.SchedulingPassDuration,
		m.SchedulingPassesTotal,
		m.SchedulingWindowsTotal,
		m.SchedulingOverlapGroupsTotal,
		m.SchedulingChangedTotal,
	)

	return m
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность SQL запроса
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation, status).Observe(duration.Seconds())
}

// ObserveSchedulingPass записывает результат прохода планировщика уборок
// Безопасно вызывать на nil (метрики выключены)
func (m *Metrics) ObserveSchedulingPass(duration time.Duration, windows, overlapGroups, changed int, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.SchedulingPassesTotal.WithLabelValues(m.serviceName, status).Inc()
	m.SchedulingPassDuration.WithLabelValues(m.serviceName).Observe(duration.Seconds())
	if err != nil {
		return
	}
	m.SchedulingWindowsTotal.WithLabelValues(m.serviceName).Add(float64(windows))
	m.SchedulingOverlapGroupsTotal.WithLabelValues(m.serviceName).Add(float64(overlapGroups))
	m.SchedulingChangedTotal.WithLabelValues(m.serviceName).Add(float64(changed))
}
