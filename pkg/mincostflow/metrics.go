package mincostflow

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// stats accumulates per-solve counters, surfaced both via Collectors() (for
// a caller's own prometheus.Registry) and in the structured log line
// emitted at the end of optimize().
type stats struct {
	relabels     int64
	refines      int64
	pushes       int64
	priceUpdates int64
}

var (
	relabelsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mincostflow",
		Name:      "relabels_total",
		Help:      "Total number of node relabel operations across all solves.",
	})
	refinesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mincostflow",
		Name:      "refines_total",
		Help:      "Total number of Refine() epsilon-scaling iterations.",
	})
	pushesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mincostflow",
		Name:      "pushes_total",
		Help:      "Total number of flow-push operations across all solves.",
	})
	optimizeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mincostflow",
		Name:      "optimize_duration_seconds",
		Help:      "Wall-clock duration of Optimize() calls.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Collectors returns every metric this package registers, for a caller to
// pass to prometheus.MustRegister.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{relabelsTotal, refinesTotal, pushesTotal, optimizeDuration}
}

func observeOptimizeDuration(d time.Duration) {
	optimizeDuration.Observe(d.Seconds())
}
