package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics holds all Prometheus metrics of the vault service
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	Deposits            *prometheus.CounterVec
	Withdrawals         *prometheus.CounterVec
	RepeatChanges       *prometheus.CounterVec
	LedgerCalls         *prometheus.CounterVec
	LedgerDuration      *prometheus.HistogramVec
	WithdrawableRecords prometheus.Gauge
	ExpiredLeases       prometheus.Counter
	DBConnections       *prometheus.GaugeVec
	DBWaitCount         prometheus.Gauge
}

// New creates all metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safekeep_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safekeep_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: latencyBuckets,
		}, []string{"method", "route"}),
		Deposits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safekeep_deposits_total",
			Help: "Inbound transfer notifications by outcome",
		}, []string{"result"}),
		Withdrawals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safekeep_withdrawals_total",
			Help: "Withdraw attempts by outcome",
		}, []string{"result"}),
		RepeatChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safekeep_repeat_changes_total",
			Help: "Repeat toggles by requested mode and outcome",
		}, []string{"repeat", "result"}),
		LedgerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safekeep_ledger_calls_total",
			Help: "Calls to the external ledger by operation and outcome",
		}, []string{"operation", "result"}),
		LedgerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safekeep_ledger_call_duration_seconds",
			Help:    "Latency of calls to the external ledger",
			Buckets: latencyBuckets,
		}, []string{"operation"}),
		WithdrawableRecords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "safekeep_withdrawable_records",
			Help: "One-shot records past their end time, as of the last maturity sweep",
		}),
		ExpiredLeases: factory.NewCounter(prometheus.CounterOpts{
			Name: "safekeep_expired_owner_leases_removed_total",
			Help: "Owner leases removed after their holder failed to release them",
		}),
		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "safekeep_db_connections",
			Help: "Database pool connections by state",
		}, []string{"state"}),
		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "safekeep_db_wait_count",
			Help: "Total number of connections waited for",
		}),
	}
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncDeposit records a deposit outcome: recorded, replayed, ignored or rejected
func (m *Metrics) IncDeposit(result string) {
	m.Deposits.WithLabelValues(result).Inc()
}

// IncWithdrawal records a withdraw outcome
func (m *Metrics) IncWithdrawal(result string) {
	m.Withdrawals.WithLabelValues(result).Inc()
}

// IncRepeatChange records a repeat toggle outcome
func (m *Metrics) IncRepeatChange(repeat bool, result string) {
	mode := "off"
	if repeat {
		mode = "on"
	}
	m.RepeatChanges.WithLabelValues(mode, result).Inc()
}

// ObserveLedgerCall records one ledger round trip
func (m *Metrics) ObserveLedgerCall(operation string, err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.LedgerCalls.WithLabelValues(operation, result).Inc()
	m.LedgerDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetWithdrawable publishes the result of a maturity sweep
func (m *Metrics) SetWithdrawable(count int64) {
	m.WithdrawableRecords.Set(float64(count))
}

// AddExpiredLeases counts leases removed by the cleanup job
func (m *Metrics) AddExpiredLeases(count int64) {
	m.ExpiredLeases.Add(float64(count))
}

// SetDBPool publishes database pool statistics
func (m *Metrics) SetDBPool(open, inUse, idle int, waitCount int64) {
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
	m.DBWaitCount.Set(float64(waitCount))
}
