package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ozontech/truthtab/buildinfo"
)

var (
	Version = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truthtab",
		Name:      "version",
		Help:      "",
	},
		[]string{"version"})

	TablesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truthtab",
		Subsystem: "table",
		Name:      "built_total",
		Help:      "Truth tables built by kind (truth, chained)",
	}, []string{"kind"})

	RowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "truthtab",
		Subsystem: "table",
		Name:      "rows_total",
		Help:      "Assignments evaluated",
	})

	BuildDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "truthtab",
		Subsystem: "table",
		Name:      "build_duration_seconds",
		Buckets:   SecondsBuckets,
	}, []string{"kind"})

	EvalErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truthtab",
		Subsystem: "eval",
		Name:      "errors_total",
		Help:      "Failed evaluations by error kind",
	}, []string{"kind"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truthtab",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "",
	}, []string{"handler", "code"})

	HTTPDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "truthtab",
		Subsystem: "http",
		Name:      "duration_seconds",
		Buckets:   SecondsBuckets,
	}, []string{"handler"})

	PanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "truthtab",
		Subsystem: "common",
		Name:      "panics_total",
		Help:      "",
	})

	// SecondsBuckets covers range from 0.1ms to 53s.
	SecondsBuckets = prometheus.ExponentialBuckets(0.0001, 3, 13)
)

func init() {
	Version.WithLabelValues(buildinfo.Version).Inc()
}
