// Package emulator implements a software signing device: seed handling, PIN and passphrase
// protection and P2PKH signing behind the device session contract.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/google/uuid"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
)

const (
	vendor          = "bitcointrezor.com"
	defaultStrength = 128
)

var (
	ErrUnknownDevice = errors.New("unknown device")
	ErrSessionClosed = errors.New("session closed")
	ErrNoSeed        = errors.New("device holds no seed")
	ErrInvalidPin    = errors.New("invalid pin")
	ErrPinMismatch   = errors.New("pin mismatch")
	ErrInvalidSeed   = errors.New("invalid seed")
	ErrNotOwnedInput = errors.New("input does not spend an owned output")
	ErrUnplugged     = errors.New("device unplugged")
)

// Version is the emulated firmware version.
type Version struct {
	Major, Minor, Bugfix uint32
}

// Emulator is one software device. It implements device.Opener for its own descriptor.
type Emulator struct {
	serial string
	params *chaincfg.Params
	logger *zap.Logger

	mu                   sync.Mutex
	plugged              bool
	version              Version
	mnemonic             string
	node                 *hdnode.Node
	pin                  string
	passphraseProtection bool
	label                string
	firmware             []byte
	erased               bool
}

// Option configures an Emulator.
type Option func(*Emulator)

// WithSerial overrides the generated serial number.
func WithSerial(serial string) Option {
	return func(e *Emulator) { e.serial = serial }
}

// WithMnemonic preloads a BIP39 seed.
func WithMnemonic(mnemonic string) Option {
	return func(e *Emulator) { e.mnemonic = strings.TrimSpace(mnemonic) }
}

// WithPin protects the seed with pin.
func WithPin(pin string) Option {
	return func(e *Emulator) { e.pin = pin }
}

// WithPassphraseProtection makes the seed depend on a passphrase asked at unlock.
func WithPassphraseProtection() Option {
	return func(e *Emulator) { e.passphraseProtection = true }
}

// WithLabel sets the hex encoded device label.
func WithLabel(label string) Option {
	return func(e *Emulator) { e.label = label }
}

// WithVersion sets the reported firmware version.
func WithVersion(v Version) Option {
	return func(e *Emulator) { e.version = v }
}

// New creates a plugged emulator for the network params.
func New(params *chaincfg.Params, logger *zap.Logger, opts ...Option) (*Emulator, error) {
	if params == nil {
		return nil, errors.New("network params are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Emulator{
		params:  params,
		plugged: true,
		version: Version{Major: 1, Minor: 3, Bugfix: 0},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.serial == "" {
		e.serial = strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:24]
	}
	if e.mnemonic != "" && !bip39.IsMnemonicValid(e.mnemonic) {
		return nil, fmt.Errorf("%w: mnemonic", ErrInvalidSeed)
	}
	e.logger = logger.Named("emulator").With(zap.String("serial", e.serial))
	return e, nil
}

// Descriptor identifies the emulator to the device layer.
func (e *Emulator) Descriptor() device.Descriptor {
	return device.Descriptor{ID: e.serial, Path: "emulator:" + e.serial}
}

// Plug and Unplug toggle whether Enumerate reports the emulator.
func (e *Emulator) Plug() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.plugged = true
}

func (e *Emulator) Unplug() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.plugged = false
}

// Enumerate lists the emulator when plugged.
func (e *Emulator) Enumerate(context.Context) ([]device.Descriptor, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.plugged {
		return nil, nil
	}
	return []device.Descriptor{e.Descriptor()}, nil
}

// Open starts a session. Prompts for PIN, passphrase and confirmations go through prompter.
func (e *Emulator) Open(_ context.Context, desc device.Descriptor, prompter device.Prompter) (device.Session, error) {
	if desc.ID != e.serial {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, desc.ID)
	}
	e.mu.Lock()
	plugged := e.plugged
	e.mu.Unlock()
	if !plugged {
		return nil, ErrUnplugged
	}
	e.logger.Debug("session opened")
	return &session{emu: e, prompter: prompter}, nil
}

func (e *Emulator) features() device.Features {
	e.mu.Lock()
	defer e.mu.Unlock()
	return device.Features{
		Vendor:               vendor,
		MajorVersion:         e.version.Major,
		MinorVersion:         e.version.Minor,
		BugfixVersion:        e.version.Bugfix,
		DeviceID:             e.serial,
		PinProtection:        e.pin != "",
		PassphraseProtection: e.passphraseProtection,
		Language:             "english",
		Label:                e.label,
		Initialized:          e.mnemonic != "" || e.node != nil,
		BootloaderMode:       e.erased,
	}
}

func (e *Emulator) wipe() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mnemonic = ""
	e.node = nil
	e.pin = ""
	e.passphraseProtection = false
	e.label = ""
}
