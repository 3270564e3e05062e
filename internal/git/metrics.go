package git

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

//nolint:gochecknoglobals //prometheus collectors
var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "desktopdev",
		Subsystem: "git",
		Name:      "operations_total",
		Help:      "Number of git operations by operation and result.",
	}, []string{"operation", "result"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "desktopdev",
		Subsystem: "git",
		Name:      "operation_duration_seconds",
		Help:      "Duration of git operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func track(op Operation, started time.Time, err *error) {
	result := resultSuccess
	if err != nil && *err != nil {
		result = resultError
	}

	operationsTotal.WithLabelValues(string(op), result).Inc()
	operationDuration.WithLabelValues(string(op)).Observe(time.Since(started).Seconds())
}
