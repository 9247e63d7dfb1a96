package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	builderBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tx_builder",
		Name:      "build_total",
		Help:      "Count of transaction builds.",
	}, []string{"network", "status"})

	builderBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tx_builder",
		Name:      "build_duration_seconds",
		Help:      "Duration of transaction builds including device round-trips.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	builderFeeAttempts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tx_builder",
		Name:      "fee_attempts",
		Help:      "Number of measure round-trips needed to settle the fee.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"network"})

	builderSendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tx_builder",
		Name:      "send_total",
		Help:      "Count of signed transaction submissions.",
	}, []string{"network", "status"})
)

// Builder tracks transaction building metrics.
type Builder struct {
	network string
}

// NewBuilder constructs a Builder collector.
func NewBuilder(network string) *Builder {
	return &Builder{network: orUnknown(network)}
}

// ObserveBuild records a build outcome and the number of fee attempts it took.
func (m Builder) ObserveBuild(err error, attempts int, started time.Time) {
	status := statusOf(err)
	builderBuildTotal.WithLabelValues(m.network, status).Inc()
	builderBuildDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if attempts > 0 {
		builderFeeAttempts.WithLabelValues(m.network).Observe(float64(attempts))
	}
}

// ObserveSend records a send outcome.
func (m Builder) ObserveSend(err error) {
	builderSendTotal.WithLabelValues(m.network, statusOf(err)).Inc()
}

// Wallet bundles the collectors an account needs.
type Wallet struct {
	*Reconciler
	*Builder
}

// NewWallet constructs the account collectors for network.
func NewWallet(network string) *Wallet {
	return &Wallet{
		Reconciler: NewReconciler(network),
		Builder:    NewBuilder(network),
	}
}
