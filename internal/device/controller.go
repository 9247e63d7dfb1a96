package device

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultRetryDelay  = 3 * time.Second
	DefaultMaxAttempts = 60
	defaultLabel       = "My TREZOR"
)

// State of the device connection.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Config wires a Controller.
type Config struct {
	Opener         Opener
	Gateway        Gateway
	AccountMetrics AccountMetrics
	Metrics        Metrics
	Firmware       FirmwareSource
	Logger         *zap.Logger

	RetryDelay     time.Duration
	MaxAttempts    int
	AccountOptions []wallet.Option
	Coin           wallet.Coin
	// OnOutdatedFirmware is called after initialization when a newer firmware is published.
	OnOutdatedFirmware func(Firmware)
}

type session struct {
	desc   Descriptor
	handle Session
	ctx    context.Context
	cancel context.CancelFunc
}

// Controller owns the session with one device, its master node and its accounts.
type Controller struct {
	id       string
	opener   Opener
	gateway  Gateway
	accMet   AccountMetrics
	metrics  Metrics
	firmware FirmwareSource
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error

	retryDelay  time.Duration
	maxAttempts int
	accountOpts []wallet.Option
	coin        wallet.Coin
	onOutdated  func(Firmware)

	requests chan Request
	ops      *semaphore.Weighted

	// lifetime bounds account subscriptions
	lifetime context.Context
	stop     context.CancelFunc

	mu       sync.RWMutex
	session  *session
	state    State
	loading  bool
	features *Features
	node     *hdnode.Node
	accounts []*wallet.Account
}

// New constructs a disconnected controller for device id.
func New(id string, cfg Config) (*Controller, error) {
	if cfg.Opener == nil {
		return nil, errors.New("device opener is required")
	}
	if cfg.Gateway == nil || cfg.AccountMetrics == nil || cfg.Metrics == nil {
		return nil, errors.New("device gateway and metrics are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Coin == (wallet.Coin{}) {
		cfg.Coin = wallet.Bitcoin
	}

	lifetime, stop := context.WithCancel(context.Background())
	return &Controller{
		id:          id,
		opener:      cfg.Opener,
		gateway:     cfg.Gateway,
		accMet:      cfg.AccountMetrics,
		metrics:     cfg.Metrics,
		firmware:    cfg.Firmware,
		logger:      cfg.Logger.Named("device").With(zap.String("device", id)),
		sleep:       clock.SleepWithContext,
		retryDelay:  cfg.RetryDelay,
		maxAttempts: cfg.MaxAttempts,
		accountOpts: cfg.AccountOptions,
		coin:        cfg.Coin,
		onOutdated:  cfg.OnOutdatedFirmware,
		requests:    make(chan Request),
		ops:         semaphore.NewWeighted(1),
		lifetime:    lifetime,
		stop:        stop,
	}, nil
}

// ID is the device serial.
func (c *Controller) ID() string {
	return c.id
}

// Status reports the connection state and whether an initialization is running.
func (c *Controller) Status() (state State, loading bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.loading
}

// Connected reports whether a session is open.
func (c *Controller) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session != nil
}

// Features returns the last reported device metadata.
func (c *Controller) Features() (Features, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.features == nil {
		return Features{}, false
	}
	return *c.features, true
}

// Node returns the master public node.
func (c *Controller) Node() *hdnode.Node {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.node
}

// HasKey reports whether the device delivered features and a master node.
func (c *Controller) HasKey() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.features != nil && c.node != nil
}

// Accounts returns the accounts of the device in id order.
func (c *Controller) Accounts() []*wallet.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*wallet.Account(nil), c.accounts...)
}

// Account finds an account by id.
func (c *Controller) Account(id uint32) (*wallet.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, acc := range c.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return nil, false
}

// Label is the hex decoded device label, or the default label.
func (c *Controller) Label() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.features == nil || c.features.Label == "" {
		return defaultLabel
	}
	label, err := hex.DecodeString(c.features.Label)
	if err != nil {
		return c.features.Label
	}
	return string(label)
}

// Connect opens a session for desc. It does not talk to the ledger.
func (c *Controller) Connect(ctx context.Context, desc Descriptor) error {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return nil
	}
	c.state = StateConnecting
	c.mu.Unlock()

	handle, err := c.opener.Open(ctx, desc, c)
	if err != nil {
		c.setState(StateDisconnected)
		return fmt.Errorf("open session %s: %w: %w", desc.Path, ErrDeviceCommunication, err)
	}

	sctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.session = &session{desc: desc, handle: handle, ctx: sctx, cancel: cancel}
	c.mu.Unlock()
	c.logger.Info("device connected", zap.String("path", desc.Path))
	return nil
}

// Disconnect closes the session. A running initialization stops at its next liveness check.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	sess := c.session
	c.session = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if sess == nil {
		return
	}
	sess.cancel()
	if err := sess.handle.Close(); err != nil {
		c.logger.Warn("error closing session", zap.Error(err))
	}
	c.logger.Info("device disconnected")
}

// Close disconnects and stops all account subscriptions.
func (c *Controller) Close() {
	c.Disconnect()
	c.stop()
}

func (c *Controller) currentSession() *session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Controller) alive(sess *session) bool {
	return c.currentSession() == sess
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *Controller) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// Initialize polls the device until it answers, then loads features and the master node.
// It returns nil without effect when the session is torn down while retrying.
func (c *Controller) Initialize(ctx context.Context) error {
	sess := c.currentSession()
	if sess == nil {
		return nil
	}

	c.setLoading(true)
	defer c.setLoading(false)
	c.setState(StateInitializing)

	// a disconnect interrupts the delay between attempts
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sess.ctx, cancel)
	defer stop()

	var features Features
	attempts, err := c.endure(ctx, sess, func(ctx context.Context) error {
		var err error
		features, err = c.initializeOnce(ctx, sess)
		return err
	})
	if errors.Is(err, errTornDown) {
		c.metrics.ObserveInitialize(nil, attempts)
		c.logger.Debug("initialization cancelled by disconnect", zap.Int("attempts", attempts))
		return nil
	}
	c.metrics.ObserveInitialize(err, attempts)
	if errors.Is(err, ErrDeviceUnreachable) {
		c.Disconnect()
		return err
	}
	if err != nil {
		// the caller gave up; the session stays open for the next initialization
		c.settle(sess, func() { c.state = StateConnecting })
		return err
	}

	c.mu.Lock()
	c.features = &features
	c.mu.Unlock()
	c.logger.Info("device initialized", zap.Int("attempts", attempts), zap.String("label", c.Label()))

	c.checkFirmware(ctx, features)

	if !features.Initialized {
		if !c.settle(sess, c.readyWithoutKey) {
			return nil
		}
		return ErrNotInitialized
	}

	var node *hdnode.Node
	err = c.withSession(ctx, "get_public_key", func(ctx context.Context, s Session) error {
		var err error
		node, err = s.GetPublicKey(ctx)
		return err
	})
	if err != nil {
		if !c.settle(sess, c.readyWithoutKey) {
			c.logger.Debug("initialization cancelled by disconnect", zap.Error(err))
			return nil
		}
		return err
	}
	node = node.WithPath([]uint32{})

	c.settle(sess, func() {
		c.node = node
		c.state = StateReady
	})
	return nil
}

// settle applies fn under the lock unless sess was torn down meanwhile.
func (c *Controller) settle(sess *session, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != sess {
		return false
	}
	fn()
	return true
}

// readyWithoutKey must be called with mu held.
func (c *Controller) readyWithoutKey() {
	c.node = nil
	c.accounts = nil
	c.state = StateReady
}

func (c *Controller) initializeOnce(ctx context.Context, sess *session) (Features, error) {
	if err := c.ops.Acquire(ctx, 1); err != nil {
		return Features{}, err
	}
	defer c.ops.Release(1)
	return sess.handle.Initialize(ctx)
}

func (c *Controller) forgetKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.node = nil
	c.accounts = nil
}

func (c *Controller) checkFirmware(ctx context.Context, features Features) {
	if c.firmware == nil {
		return
	}
	firmware, err := CheckFirmware(ctx, c.firmware, features)
	if err != nil {
		c.logger.Warn("firmware check failed", zap.Error(err))
		return
	}
	if firmware == nil {
		return
	}
	c.logger.Warn("device firmware outdated",
		zap.String("available", firmware.Version()), zap.Bool("required", firmware.Required))
	if c.onOutdated != nil {
		c.onOutdated(*firmware)
	}
}

// withSession runs fn with exclusive use of the device. Concurrent callers queue.
func (c *Controller) withSession(ctx context.Context, operation string, fn func(context.Context, Session) error) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveOperation(operation, err, started)
	}()

	if err := c.ops.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer c.ops.Release(1)

	sess := c.currentSession()
	if sess == nil {
		return fmt.Errorf("%s: %w", operation, ErrNotConnected)
	}
	if err := fn(ctx, sess.handle); err != nil {
		return fmt.Errorf("%s: %w: %w", operation, ErrDeviceCommunication, err)
	}
	return nil
}
