package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deviceInitializeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "initialize_total",
		Help:      "Count of device initialization runs.",
	}, []string{"status"})

	deviceInitializeAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "initialize_attempts",
		Help:      "Number of attempts an initialization run needed.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 7), // 1..64
	})

	deviceOperationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "operations_total",
		Help:      "Count of device operations.",
	}, []string{"operation", "status"})

	deviceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "operation_duration_seconds",
		Help:      "Duration of device operations including human interaction.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"operation", "status"})

	devicesConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "device",
		Name:      "connected",
		Help:      "Number of currently connected devices.",
	})
)

// Device tracks signing device metrics.
type Device struct{}

// NewDevice constructs a Device collector.
func NewDevice() *Device {
	return &Device{}
}

// ObserveInitialize records an initialization run.
func (Device) ObserveInitialize(err error, attempts int) {
	deviceInitializeTotal.WithLabelValues(statusOf(err)).Inc()
	deviceInitializeAttempts.Observe(float64(attempts))
}

// ObserveOperation records a device operation outcome and duration.
func (Device) ObserveOperation(operation string, err error, started time.Time) {
	status := statusOf(err)
	deviceOperationTotal.WithLabelValues(operation, status).Inc()
	deviceOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// SetConnected reports the number of connected devices.
func (Device) SetConnected(n int) {
	devicesConnected.Set(float64(n))
}
