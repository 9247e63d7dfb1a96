package emulator

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/device"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/tyler-smith/go-bip39"
	"go.uber.org/zap"
)

var validWordCounts = map[int]bool{12: true, 18: true, 24: true}

type session struct {
	emu      *Emulator
	prompter device.Prompter

	mu     sync.Mutex
	closed bool
	// master is the unlocked private root, kept until the seed changes
	master *hdnode.Node
}

func (s *session) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

func (s *session) forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.master = nil
}

func (s *session) Initialize(context.Context) (device.Features, error) {
	if err := s.open(); err != nil {
		return device.Features{}, err
	}
	return s.emu.features(), nil
}

func (s *session) GetPublicKey(ctx context.Context) (*hdnode.Node, error) {
	master, err := s.unlock(ctx)
	if err != nil {
		return nil, err
	}
	return master.Neuter(), nil
}

// unlock asks for the PIN and passphrase once per session and returns the private root.
func (s *session) unlock(ctx context.Context) (*hdnode.Node, error) {
	if err := s.open(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	master := s.master
	s.mu.Unlock()
	if master != nil {
		return master, nil
	}

	s.emu.mu.Lock()
	mnemonic, node, pin, withPassphrase := s.emu.mnemonic, s.emu.node, s.emu.pin, s.emu.passphraseProtection
	s.emu.mu.Unlock()

	if mnemonic == "" && node == nil {
		return nil, ErrNoSeed
	}
	if pin != "" {
		entered, err := s.prompter.Prompt(ctx, device.KindPin, "Enter PIN")
		if err != nil {
			return nil, err
		}
		if entered != pin {
			return nil, ErrInvalidPin
		}
	}

	if node != nil {
		master = node
	} else {
		var passphrase string
		if withPassphrase {
			var err error
			passphrase, err = s.prompter.Prompt(ctx, device.KindPassphrase, "Enter passphrase")
			if err != nil {
				return nil, err
			}
		}
		var err error
		master, err = hdnode.NewMaster(bip39.NewSeed(mnemonic, passphrase), s.emu.params)
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.master = master
	s.mu.Unlock()
	return master, nil
}

func (s *session) confirm(ctx context.Context, message string) error {
	_, err := s.prompter.Prompt(ctx, device.KindButton, message)
	return err
}

func (s *session) newPin(ctx context.Context) (string, error) {
	first, err := s.prompter.Prompt(ctx, device.KindPin, "Enter new PIN")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", ErrInvalidPin
	}
	second, err := s.prompter.Prompt(ctx, device.KindPin, "Re-enter new PIN")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPinMismatch
	}
	return first, nil
}

func (s *session) ResetDevice(ctx context.Context, settings device.ResetSettings) error {
	if err := s.open(); err != nil {
		return err
	}
	strength := settings.Strength
	if strength == 0 {
		strength = defaultStrength
	}
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return fmt.Errorf("entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return fmt.Errorf("mnemonic: %w", err)
	}

	var pin string
	if settings.PinProtection {
		if pin, err = s.newPin(ctx); err != nil {
			return err
		}
	}
	if settings.DisplayRandom {
		if err := s.confirm(ctx, fmt.Sprintf("Internal entropy: %x", entropy)); err != nil {
			return err
		}
	}
	if err := s.confirm(ctx, "Write down the recovery seed"); err != nil {
		return err
	}

	s.emu.mu.Lock()
	s.emu.mnemonic = mnemonic
	s.emu.node = nil
	s.emu.pin = pin
	s.emu.passphraseProtection = settings.PassphraseProtection
	s.emu.label = settings.Label
	s.emu.mu.Unlock()
	s.forget()
	s.emu.logger.Info("device reset", zap.Int("strength", strength))
	return nil
}

func (s *session) LoadDevice(ctx context.Context, req device.LoadRequest) error {
	if err := s.open(); err != nil {
		return err
	}
	switch {
	case req.Node != nil:
		if !req.Node.IsPrivate() {
			return fmt.Errorf("%w: node has no private key", ErrInvalidSeed)
		}
	case !bip39.IsMnemonicValid(req.Mnemonic):
		return fmt.Errorf("%w: mnemonic", ErrInvalidSeed)
	}
	if err := s.confirm(ctx, "Load seed into the device?"); err != nil {
		return err
	}

	s.emu.mu.Lock()
	s.emu.mnemonic = ""
	s.emu.node = nil
	if req.Node != nil {
		s.emu.node = req.Node.WithPath([]uint32{})
	} else {
		s.emu.mnemonic = req.Mnemonic
	}
	s.emu.pin = req.Pin
	s.emu.passphraseProtection = req.PassphraseProtection
	s.emu.label = req.Label
	s.emu.mu.Unlock()
	s.forget()
	s.emu.logger.Info("seed loaded")
	return nil
}

func (s *session) RecoverDevice(ctx context.Context, settings device.RecoverSettings) error {
	if err := s.open(); err != nil {
		return err
	}
	if !validWordCounts[settings.WordCount] {
		return fmt.Errorf("%w: %d words", ErrInvalidSeed, settings.WordCount)
	}

	var pin string
	if settings.PinProtection {
		var err error
		if pin, err = s.newPin(ctx); err != nil {
			return err
		}
	}
	words := make([]string, 0, settings.WordCount)
	for i := 1; i <= settings.WordCount; i++ {
		word, err := s.prompter.Prompt(ctx, device.KindWord, fmt.Sprintf("Enter word #%d", i))
		if err != nil {
			return err
		}
		words = append(words, strings.ToLower(strings.TrimSpace(word)))
	}
	mnemonic := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return fmt.Errorf("%w: checksum", ErrInvalidSeed)
	}

	s.emu.mu.Lock()
	s.emu.mnemonic = mnemonic
	s.emu.node = nil
	s.emu.pin = pin
	s.emu.passphraseProtection = settings.PassphraseProtection
	s.emu.label = settings.Label
	s.emu.mu.Unlock()
	s.forget()
	s.emu.logger.Info("seed recovered", zap.Int("words", settings.WordCount))
	return nil
}

func (s *session) WipeDevice(ctx context.Context) error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.confirm(ctx, "Do you really want to wipe the device?"); err != nil {
		return err
	}
	s.emu.wipe()
	s.forget()
	s.emu.logger.Info("device wiped")
	return nil
}

func (s *session) EraseFirmware(ctx context.Context) error {
	if err := s.open(); err != nil {
		return err
	}
	if err := s.confirm(ctx, "Erase firmware?"); err != nil {
		return err
	}
	s.emu.mu.Lock()
	defer s.emu.mu.Unlock()
	s.emu.firmware = nil
	s.emu.erased = true
	return nil
}

func (s *session) UploadFirmware(_ context.Context, payload []byte) error {
	if err := s.open(); err != nil {
		return err
	}
	if len(payload) == 0 {
		return errors.New("empty firmware")
	}
	s.emu.mu.Lock()
	defer s.emu.mu.Unlock()
	if !s.emu.erased {
		return errors.New("firmware must be erased before upload")
	}
	s.emu.firmware = append([]byte(nil), payload...)
	s.emu.erased = false
	s.emu.logger.Info("firmware uploaded", zap.String("fingerprint", hex.EncodeToString(chainhash.HashB(payload))))
	return nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.master = nil
	return nil
}
