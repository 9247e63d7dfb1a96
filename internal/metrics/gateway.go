// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blockinsight7000_wallet"

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_gateway",
		Name:      "operations_total",
		Help:      "Count of ledger gateway operations.",
	}, []string{"operation", "network", "status"})
	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_gateway",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger gateway operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// Gateway tracks metrics for calls to the ledger service.
type Gateway struct {
	network string
}

// NewGateway constructs a metrics collector for ledger calls.
func NewGateway(network string) *Gateway {
	return &Gateway{network: orUnknown(network)}
}

// Observe records a single ledger call outcome and duration.
func (m Gateway) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	gatewayRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	gatewayRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
