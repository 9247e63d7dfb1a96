// Package transport exposes the daemon over gRPC and HTTP.
package transport

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name of the device registry.
const ServiceName = "blockinsight7000.wallet.v1.Devices"

const defaultHealthInterval = time.Second

// Reporter tells whether the wallet can serve.
type Reporter interface {
	Ready() bool
}

// Health mirrors the readiness of a Reporter into a gRPC health server.
type Health struct {
	server   *health.Server
	reporter Reporter
	logger   *zap.Logger
	interval time.Duration
	last     healthpb.HealthCheckResponse_ServingStatus
}

func NewHealth(reporter Reporter, logger *zap.Logger) *Health {
	h := &Health{
		server:   health.NewServer(),
		reporter: reporter,
		logger:   logger.Named("health"),
		interval: defaultHealthInterval,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}
	h.update(context.Background())
	return h
}

// Register adds the health service to s.
func (h *Health) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Run refreshes the serving status until ctx is done, then reports NOT_SERVING for good.
func (h *Health) Run(ctx context.Context) error {
	h.update(ctx)
	err := clock.Tick(ctx, h.interval, h.update)
	h.server.Shutdown()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (h *Health) update(context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.reporter.Ready() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	if status == h.last {
		return
	}
	h.last = status
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
	h.logger.Info("serving status changed", zap.Stringer("status", status))
}
