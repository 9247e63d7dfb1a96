// Package registry keeps the list of known devices in sync with the attached hardware.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/batcher"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = time.Second
	DefaultSaveInterval = 500 * time.Millisecond
	savesPerSecond      = 2
)

var ErrUnknownDevice = errors.New("unknown device")

// Config wires a Registry. Device carries the settings shared by every controller;
// its Gateway, AccountMetrics and Metrics are filled from the fields below.
type Config struct {
	Enumerator     Enumerator
	Store          Store
	Metrics        Metrics
	Gateway        Gateway
	AccountMetrics AccountMetrics
	DeviceMetrics  DeviceMetrics
	Logger         *zap.Logger
	Device         device.Config

	PollInterval time.Duration
	SaveInterval time.Duration
}

type entry struct {
	ctrl   *device.Controller
	cancel context.CancelFunc
}

// Registry owns the device controllers, connects attached devices and persists the list.
type Registry struct {
	enumerator   Enumerator
	store        Store
	metrics      Metrics
	logger       *zap.Logger
	deviceConfig device.Config
	pollInterval time.Duration
	saveInterval time.Duration

	requests chan device.Request

	mu       sync.RWMutex
	devices  []entry
	attached map[string]device.Descriptor
	saves    *batcher.Batcher[[]device.Record]
	restored bool
	running  sync.WaitGroup
}

// New validates cfg and builds an idle registry.
func New(cfg Config) (*Registry, error) {
	if cfg.Enumerator == nil || cfg.Store == nil || cfg.Metrics == nil {
		return nil, errors.New("enumerator, store and metrics are required")
	}
	if cfg.Gateway == nil || cfg.AccountMetrics == nil || cfg.DeviceMetrics == nil {
		return nil, errors.New("gateway and device metrics are required")
	}
	if cfg.Device.Opener == nil {
		return nil, errors.New("device opener is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.SaveInterval <= 0 {
		cfg.SaveInterval = DefaultSaveInterval
	}

	deviceConfig := cfg.Device
	deviceConfig.Gateway = cfg.Gateway
	deviceConfig.AccountMetrics = cfg.AccountMetrics
	deviceConfig.Metrics = cfg.DeviceMetrics
	deviceConfig.Logger = cfg.Logger

	return &Registry{
		enumerator:   cfg.Enumerator,
		store:        cfg.Store,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger.Named("registry"),
		deviceConfig: deviceConfig,
		pollInterval: cfg.PollInterval,
		saveInterval: cfg.SaveInterval,
		requests:     make(chan device.Request),
		attached:     make(map[string]device.Descriptor),
	}, nil
}

// Run restores the stored devices and polls for attached devices until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	// saving outlives ctx so the final snapshot is written
	saves := batcher.New(r.logger, batcher.Config[[]device.Record]{
		Flush:     r.flushSaves,
		Interval:  r.saveInterval,
		PerSecond: savesPerSecond,
		Coalesce:  true,
	})
	saves.Start(context.WithoutCancel(ctx))

	r.mu.Lock()
	r.saves = saves
	r.mu.Unlock()

	defer func() {
		r.running.Wait()
		r.shutdown()
		r.persist(context.WithoutCancel(ctx))
		saves.Stop()
	}()

	if err := r.restore(ctx); err != nil {
		return err
	}

	r.poll(ctx)
	err := clock.Tick(ctx, r.pollInterval, r.poll)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Ready reports whether the stored devices were restored.
func (r *Registry) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.restored
}

// Requests delivers the interaction requests of every device.
func (r *Registry) Requests() <-chan device.Request {
	return r.requests
}

// Devices returns the known controllers in the order they became known.
func (r *Registry) Devices() []*device.Controller {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*device.Controller, 0, len(r.devices))
	for _, e := range r.devices {
		out = append(out, e.ctrl)
	}
	return out
}

// Get finds a controller by device id.
func (r *Registry) Get(id string) (*device.Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.devices {
		if e.ctrl.ID() == id {
			return e.ctrl, true
		}
	}
	return nil, false
}

// Forget disconnects the device, deregisters its accounts and removes it from the list.
func (r *Registry) Forget(ctx context.Context, id string) error {
	r.mu.Lock()
	idx := -1
	for i, e := range r.devices {
		if e.ctrl.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownDevice, id)
	}
	e := r.devices[idx]
	r.devices = append(r.devices[:idx:idx], r.devices[idx+1:]...)
	delete(r.attached, id)
	connected := len(r.attached)
	r.mu.Unlock()

	e.ctrl.Disconnect()
	e.ctrl.Unsubscribe(ctx, true)
	e.ctrl.Close()
	e.cancel()
	r.metrics.SetConnected(connected)
	r.logger.Info("device forgotten", zap.String("device", id))
	r.persist(ctx)
	return nil
}

func (r *Registry) restore(ctx context.Context) error {
	records, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore devices: %w", err)
	}
	for _, rec := range records {
		ctrl, err := device.FromRecord(rec, r.deviceConfig)
		if err != nil {
			r.logger.Error("skipping stored device", zap.String("device", rec.ID), zap.Error(err))
			continue
		}
		r.add(ctx, ctrl)
		if err := ctrl.Subscribe(ctx); err != nil {
			r.logger.Warn("stored device accounts not subscribed", zap.String("device", rec.ID), zap.Error(err))
		}
	}

	r.mu.Lock()
	r.restored = true
	r.mu.Unlock()
	r.logger.Info("devices restored", zap.Int("count", len(records)))
	return nil
}

// poll connects newly attached devices and disconnects removed ones.
func (r *Registry) poll(ctx context.Context) {
	descs, err := r.enumerator.Enumerate(ctx)
	if err != nil {
		r.logger.Warn("device enumeration failed", zap.Error(err))
		return
	}
	added, removed := r.delta(descs)

	for _, desc := range removed {
		if ctrl, ok := r.Get(desc.ID); ok {
			ctrl.Disconnect()
		}
		r.mu.Lock()
		delete(r.attached, desc.ID)
		r.mu.Unlock()
		r.logger.Info("device detached", zap.String("device", desc.ID))
	}
	for _, desc := range added {
		r.attach(ctx, desc)
	}

	if len(added) > 0 || len(removed) > 0 {
		r.mu.RLock()
		connected := len(r.attached)
		r.mu.RUnlock()
		r.metrics.SetConnected(connected)
		r.persist(ctx)
	}
}

func (r *Registry) delta(descs []device.Descriptor) (added, removed []device.Descriptor) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current := make(map[string]struct{}, len(descs))
	for _, desc := range descs {
		current[desc.ID] = struct{}{}
		if _, ok := r.attached[desc.ID]; !ok {
			added = append(added, desc)
		}
	}
	for id, desc := range r.attached {
		if _, ok := current[id]; !ok {
			removed = append(removed, desc)
		}
	}
	return added, removed
}

func (r *Registry) attach(ctx context.Context, desc device.Descriptor) {
	ctrl, ok := r.Get(desc.ID)
	if !ok {
		var err error
		ctrl, err = device.New(desc.ID, r.deviceConfig)
		if err != nil {
			r.logger.Error("device controller not created", zap.String("device", desc.ID), zap.Error(err))
			return
		}
		r.add(ctx, ctrl)
	}
	if err := ctrl.Connect(ctx, desc); err != nil {
		r.logger.Warn("device not connected", zap.String("device", desc.ID), zap.Error(err))
		return
	}

	r.mu.Lock()
	r.attached[desc.ID] = desc
	r.mu.Unlock()
	r.logger.Info("device attached", zap.String("device", desc.ID), zap.String("path", desc.Path))

	r.running.Add(1)
	go func() {
		defer r.running.Done()
		if err := ctrl.InitializeAndLoadAccounts(ctx); err != nil {
			r.logger.Warn("device accounts not loaded", zap.String("device", desc.ID), zap.Error(err))
		}
		r.persist(ctx)
	}()
}

// add registers ctrl and forwards its interaction requests.
func (r *Registry) add(ctx context.Context, ctrl *device.Controller) {
	fctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.devices = append(r.devices, entry{ctrl: ctrl, cancel: cancel})
	r.mu.Unlock()

	r.running.Add(1)
	go func() {
		defer r.running.Done()
		for {
			select {
			case <-fctx.Done():
				return
			case req := <-ctrl.Requests():
				select {
				case r.requests <- req:
				case <-fctx.Done():
					_ = req.Continuation.Abandon()
					return
				}
			}
		}
	}()
}

func (r *Registry) persist(ctx context.Context) {
	r.mu.RLock()
	saves := r.saves
	records := make([]device.Record, 0, len(r.devices))
	for _, e := range r.devices {
		records = append(records, e.ctrl.Record())
	}
	r.mu.RUnlock()

	if saves == nil {
		return
	}
	if err := saves.Add(ctx, records); err != nil {
		r.logger.Warn("device list not queued for saving", zap.Error(err))
	}
}

// flushSaves writes the latest snapshot of a batch.
func (r *Registry) flushSaves(ctx context.Context, snapshots [][]device.Record) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.store.Save(ctx, snapshots[len(snapshots)-1])
}

func (r *Registry) shutdown() {
	r.mu.Lock()
	entries := r.devices
	r.attached = make(map[string]device.Descriptor)
	r.mu.Unlock()

	for _, e := range entries {
		e.cancel()
		e.ctrl.Close()
	}
	r.metrics.SetConnected(0)
}
