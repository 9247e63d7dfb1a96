package registry

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Enumerator lists the devices currently attached.
	Enumerator interface {
		Enumerate(ctx context.Context) ([]device.Descriptor, error)
	}
	// Store persists the device list.
	Store interface {
		Load(ctx context.Context) ([]device.Record, error)
		Save(ctx context.Context, records []device.Record) error
	}
	Metrics interface {
		SetConnected(n int)
	}
	Gateway interface {
		device.Gateway
	}
	AccountMetrics interface {
		device.AccountMetrics
	}
	DeviceMetrics interface {
		ObserveInitialize(err error, attempts int)
		ObserveOperation(operation string, err error, started time.Time)
	}
)
