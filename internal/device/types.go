package device

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Opener opens a session with the device behind a descriptor.
	Opener interface {
		Open(ctx context.Context, desc Descriptor, prompter Prompter) (Session, error)
	}
	// Prompter is handed to sessions so they can ask for human input mid-operation.
	Prompter interface {
		Prompt(ctx context.Context, kind Kind, message string) (string, error)
	}
	// Session is the device call contract.
	Session interface {
		Initialize(ctx context.Context) (Features, error)
		GetPublicKey(ctx context.Context) (*hdnode.Node, error)
		MeasureTx(ctx context.Context, tx *wallet.Tx) (int, error)
		SignTx(ctx context.Context, tx *wallet.Tx, refs []wallet.RefTx) ([]byte, error)
		ResetDevice(ctx context.Context, settings ResetSettings) error
		LoadDevice(ctx context.Context, req LoadRequest) error
		RecoverDevice(ctx context.Context, settings RecoverSettings) error
		WipeDevice(ctx context.Context) error
		EraseFirmware(ctx context.Context) error
		UploadFirmware(ctx context.Context, payload []byte) error
		Close() error
	}
	Gateway interface {
		wallet.Gateway
	}
	AccountMetrics interface {
		wallet.Metrics
	}
	Metrics interface {
		ObserveInitialize(err error, attempts int)
		ObserveOperation(operation string, err error, started time.Time)
	}
	// FirmwareSource lists published firmware, newest first, and fetches their payloads.
	FirmwareSource interface {
		Firmwares(ctx context.Context) ([]Firmware, error)
		Download(ctx context.Context, fw Firmware) ([]byte, error)
	}
)

// Descriptor identifies a connected device.
type Descriptor struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Features is the metadata a device reports on initialization. Label is hex encoded.
type Features struct {
	Vendor               string `json:"vendor"`
	MajorVersion         uint32 `json:"major_version"`
	MinorVersion         uint32 `json:"minor_version"`
	BugfixVersion        uint32 `json:"bugfix_version"`
	DeviceID             string `json:"device_id"`
	PinProtection        bool   `json:"pin_protection"`
	PassphraseProtection bool   `json:"passphrase_protection"`
	Language             string `json:"language,omitempty"`
	Label                string `json:"label,omitempty"`
	Initialized          bool   `json:"initialized"`
	BootloaderMode       bool   `json:"bootloader_mode,omitempty"`
}

// ResetSettings configure generating a new seed on the device.
type ResetSettings struct {
	Label                string
	Strength             int
	PinProtection        bool
	PassphraseProtection bool
	DisplayRandom        bool
}

// LoadSettings carry a seed to load. Payload is an xprv or a mnemonic.
type LoadSettings struct {
	Payload              string
	Label                string
	Pin                  string
	PassphraseProtection bool
}

// LoadRequest is LoadSettings with the payload decoded. Exactly one of Node and Mnemonic is set.
type LoadRequest struct {
	Node                 *hdnode.Node
	Mnemonic             string
	Label                string
	Pin                  string
	PassphraseProtection bool
}

// RecoverSettings configure restoring a seed word by word.
type RecoverSettings struct {
	WordCount            int
	Label                string
	PinProtection        bool
	PassphraseProtection bool
}
