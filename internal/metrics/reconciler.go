package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerMergeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "merge_duration_seconds",
		Help:      "Duration of merging both chains of an account.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	reconcilerMergeSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "merge_transactions",
		Help:      "Number of transactions in a merged account history.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	reconcilerRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "refresh_total",
		Help:      "Count of history refreshes triggered by push updates.",
	}, []string{"network", "chain", "status"})

	reconcilerRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of history refreshes triggered by push updates.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "chain", "status"})
)

// Reconciler tracks account reconciliation metrics.
type Reconciler struct {
	network string
}

// NewReconciler constructs a Reconciler collector.
func NewReconciler(network string) *Reconciler {
	return &Reconciler{network: orUnknown(network)}
}

// ObserveMerge records a completed two-chain merge.
func (m Reconciler) ObserveMerge(transactions int, started time.Time) {
	reconcilerMergeDuration.WithLabelValues(m.network).Observe(time.Since(started).Seconds())
	reconcilerMergeSize.WithLabelValues(m.network).Observe(float64(transactions))
}

// ObserveRefresh records a background history refresh of one chain.
func (m Reconciler) ObserveRefresh(chain string, err error, started time.Time) {
	status := statusOf(err)
	reconcilerRefreshTotal.WithLabelValues(m.network, chain, status).Inc()
	reconcilerRefreshDuration.WithLabelValues(m.network, chain, status).
		Observe(time.Since(started).Seconds())
}
