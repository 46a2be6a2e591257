package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	GatewayCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openpay",
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "OpenPay API call latency in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"operation", "status_code"},
	)

	GatewayCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openpay",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Total number of OpenPay API calls",
		},
		[]string{"operation", "status_code"},
	)

	TaskRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openpay",
			Subsystem: "tasks",
			Name:      "runs_total",
			Help:      "Total number of scheduled task runs",
		},
		[]string{"task", "status"},
	)

	TaskRunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openpay",
			Subsystem: "tasks",
			Name:      "run_duration_seconds",
			Help:      "Scheduled task run duration in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"task"},
	)
)

func init() {
	Registry.MustRegister(GatewayCallDuration, GatewayCallsTotal, TaskRunsTotal, TaskRunDuration)
}

// ObserveGatewayCall records one OpenPay API call.
func ObserveGatewayCall(operation string, statusCode int, elapsed time.Duration) {
	code := strconv.Itoa(statusCode)
	GatewayCallDuration.WithLabelValues(operation, code).Observe(elapsed.Seconds())
	GatewayCallsTotal.WithLabelValues(operation, code).Inc()
}

// ObserveTaskRun records one scheduled task run.
func ObserveTaskRun(task string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	TaskRunsTotal.WithLabelValues(task, status).Inc()
	TaskRunDuration.WithLabelValues(task).Observe(elapsed.Seconds())
}
