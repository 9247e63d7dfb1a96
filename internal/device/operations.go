package device

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

const subscribeWorkers = 4

// MeasureTx asks the device for the serialized size of tx.
func (c *Controller) MeasureTx(ctx context.Context, tx *wallet.Tx) (int, error) {
	var size int
	err := c.withSession(ctx, "measure_tx", func(ctx context.Context, s Session) error {
		var err error
		size, err = s.MeasureTx(ctx, tx)
		return err
	})
	return size, err
}

// SignTx asks the device to sign tx and returns the serialized transaction.
func (c *Controller) SignTx(ctx context.Context, tx *wallet.Tx, refs []wallet.RefTx) ([]byte, error) {
	var raw []byte
	err := c.withSession(ctx, "sign_tx", func(ctx context.Context, s Session) error {
		var err error
		raw, err = s.SignTx(ctx, tx, refs)
		return err
	})
	return raw, err
}

// Reset generates a new seed on the device and reloads its accounts.
func (c *Controller) Reset(ctx context.Context, settings ResetSettings) error {
	settings.Label = encodeLabel(strings.TrimSpace(settings.Label))
	err := c.withSession(ctx, "reset_device", func(ctx context.Context, s Session) error {
		return s.ResetDevice(ctx, settings)
	})
	if err != nil {
		return err
	}
	return c.reload(ctx)
}

// Load imports a seed given as xprv or mnemonic and reloads the accounts.
func (c *Controller) Load(ctx context.Context, settings LoadSettings) error {
	req := LoadRequest{
		Label:                encodeLabel(settings.Label),
		Pin:                  settings.Pin,
		PassphraseProtection: settings.PassphraseProtection,
	}
	if node, err := hdnode.ParseXPrv(strings.TrimSpace(settings.Payload)); err == nil {
		req.Node = node
	} else {
		req.Mnemonic = strings.TrimSpace(settings.Payload)
	}

	err := c.withSession(ctx, "load_device", func(ctx context.Context, s Session) error {
		return s.LoadDevice(ctx, req)
	})
	if err != nil {
		return err
	}
	return c.reload(ctx)
}

// Recover restores a seed through word requests and reloads the accounts.
func (c *Controller) Recover(ctx context.Context, settings RecoverSettings) error {
	settings.Label = encodeLabel(settings.Label)
	err := c.withSession(ctx, "recover_device", func(ctx context.Context, s Session) error {
		return s.RecoverDevice(ctx, settings)
	})
	if err != nil {
		return err
	}
	return c.reload(ctx)
}

// Wipe erases the seed and reloads, leaving the device without accounts.
func (c *Controller) Wipe(ctx context.Context) error {
	err := c.withSession(ctx, "wipe_device", func(ctx context.Context, s Session) error {
		return s.WipeDevice(ctx)
	})
	if err != nil {
		return err
	}
	return c.reload(ctx)
}

// Flash erases the firmware and uploads payload.
func (c *Controller) Flash(ctx context.Context, payload []byte) error {
	return c.withSession(ctx, "flash_firmware", func(ctx context.Context, s Session) error {
		if err := s.EraseFirmware(ctx); err != nil {
			return fmt.Errorf("erase: %w", err)
		}
		return s.UploadFirmware(ctx, payload)
	})
}

// UpdateFirmware downloads fw from the firmware source and flashes it.
func (c *Controller) UpdateFirmware(ctx context.Context, fw Firmware) error {
	if c.firmware == nil {
		return errNoFirmwareSource
	}
	payload, err := c.firmware.Download(ctx, fw)
	if err != nil {
		return fmt.Errorf("download firmware %s: %w", fw.Version(), err)
	}
	return c.Flash(ctx, payload)
}

// reload runs after operations that invalidate the known keys.
func (c *Controller) reload(ctx context.Context) error {
	c.Unsubscribe(ctx, false)
	c.forgetKey()
	return c.InitializeAndLoadAccounts(ctx)
}

// InitializeAndLoadAccounts initializes the device and, when it holds a key, subscribes the known
// accounts or creates account 0 and discovers the following ones.
func (c *Controller) InitializeAndLoadAccounts(ctx context.Context) error {
	if err := c.Initialize(ctx); err != nil {
		if errors.Is(err, ErrNotInitialized) {
			c.logger.Info("device holds no seed, skipping accounts")
			return nil
		}
		return err
	}
	if !c.HasKey() {
		return nil
	}

	if len(c.Accounts()) > 0 {
		return c.Subscribe(ctx)
	}
	if _, err := c.AddAccount(ctx); err != nil {
		return err
	}
	_, err := c.DiscoverAccounts(ctx, uint32(len(c.Accounts())))
	return err
}

// Subscribe registers every account and listens for its updates.
func (c *Controller) Subscribe(ctx context.Context) error {
	return workerpool.ForEach(ctx, subscribeWorkers, c.Accounts(), func(ctx context.Context, acc *wallet.Account) error {
		if err := acc.Register(ctx); err != nil {
			return fmt.Errorf("account %d: %w", acc.ID, err)
		}
		if err := acc.Subscribe(c.lifetime); err != nil {
			return fmt.Errorf("account %d: %w", acc.ID, err)
		}
		return nil
	})
}

// Unsubscribe stops the updates of every account and optionally deregisters them.
func (c *Controller) Unsubscribe(ctx context.Context, deregister bool) {
	for _, acc := range c.Accounts() {
		acc.Unsubscribe()
		if !deregister {
			continue
		}
		if err := acc.Deregister(ctx); err != nil {
			c.logger.Warn("account deregistration failed", zap.Uint32("account", acc.ID), zap.Error(err))
		}
	}
}

func encodeLabel(label string) string {
	if label == "" {
		return ""
	}
	return hex.EncodeToString([]byte(label))
}
