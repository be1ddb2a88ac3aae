// Package metrics собирает prometheus-метрики сервиса:
// HTTP запросы, запросы к БД и состояние connection pool.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpen   *prometheus.GaugeVec
	dbPoolInUse  *prometheus.GaugeVec
	dbPoolIdle   *prometheus.GaugeVec
	dbPoolWaited *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),
		dbPoolOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Open connections in the pool",
		}, []string{"service"}),
		dbPoolInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Connections currently in use",
		}, []string{"service"}),
		dbPoolIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Idle connections in the pool",
		}, []string{"service"}),
		dbPoolWaited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_pool_wait_count_total",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbPoolOpen,
		m.dbPoolInUse,
		m.dbPoolIdle,
		m.dbPoolWaited,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// SetPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetPoolStats(service string, stats sql.DBStats) {
	m.dbPoolOpen.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.dbPoolInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.dbPoolIdle.WithLabelValues(service).Set(float64(stats.Idle))
	m.dbPoolWaited.WithLabelValues(service).Add(0) // гарантируем наличие серии
}
