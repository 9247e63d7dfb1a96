// Package storage persists the device list.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
	"go.uber.org/zap"
)

var devicesKey = []byte("devices/v1")

// Badger stores the serialized device list under one key.
type Badger struct {
	db     *badger.DB
	logger *zap.Logger
}

// OpenBadger opens the database at path. An empty path keeps the data in memory.
func OpenBadger(path string, logger *zap.Logger) (*Badger, error) {
	logger = logger.Named("storage")
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{logger.Sugar()})
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("database at %s is locked by another process: %w", path, err)
		}
		return nil, fmt.Errorf("open database at %s: %w", path, err)
	}
	return &Badger{db: db, logger: logger}, nil
}

// Load returns the stored devices, or none when nothing was saved yet.
func (b *Badger) Load(_ context.Context) ([]device.Record, error) {
	var records []device.Record
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(devicesKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &records)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load devices: %w", err)
	}
	return records, nil
}

// Save replaces the stored device list.
func (b *Badger) Save(_ context.Context, records []device.Record) error {
	if records == nil {
		records = []device.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode devices: %w", err)
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(devicesKey, data)
	})
	if err != nil {
		return fmt.Errorf("save devices: %w", err)
	}
	b.logger.Debug("devices saved", zap.Int("count", len(records)))
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}

type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}
