package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
	"go.uber.org/zap"
)

// maxDiscoveredAccounts stops discovery against a ledger that reports history for every account.
const maxDiscoveredAccounts = 1 << 10

var errNoKey = errors.New("device holds no master key")

// AddAccount derives the next account, registers it and subscribes to its updates.
func (c *Controller) AddAccount(ctx context.Context) (*wallet.Account, error) {
	acc, err := c.createAccount(uint32(len(c.Accounts())))
	if err != nil {
		return nil, err
	}
	if err := acc.Register(ctx); err != nil {
		c.dropAccount(ctx, acc)
		return nil, fmt.Errorf("add account %d: %w", acc.ID, err)
	}
	if err := acc.Subscribe(c.lifetime); err != nil {
		c.dropAccount(ctx, acc)
		return nil, fmt.Errorf("add account %d: %w", acc.ID, err)
	}
	c.appendAccount(acc)
	return acc, nil
}

// DiscoverAccounts walks accounts from start until one without primary chain history is found.
// The empty account is deregistered and not kept. It returns the accounts added.
func (c *Controller) DiscoverAccounts(ctx context.Context, start uint32) ([]*wallet.Account, error) {
	var found []*wallet.Account
	for id := start; id < start+maxDiscoveredAccounts; id++ {
		acc, err := c.createAccount(id)
		if err != nil {
			return found, err
		}
		if err := acc.Register(ctx); err != nil {
			c.dropAccount(ctx, acc)
			return found, fmt.Errorf("discover account %d: %w", id, err)
		}
		txs, err := acc.LoadPrimaryTransactions(ctx)
		if err != nil {
			c.dropAccount(ctx, acc)
			return found, fmt.Errorf("discover account %d: %w", id, err)
		}
		if len(txs) == 0 {
			c.dropAccount(ctx, acc)
			c.logger.Info("account discovery finished", zap.Int("found", len(found)))
			return found, nil
		}
		if err := acc.Subscribe(c.lifetime); err != nil {
			c.dropAccount(ctx, acc)
			return found, fmt.Errorf("discover account %d: %w", id, err)
		}
		c.appendAccount(acc)
		found = append(found, acc)
	}
	return found, nil
}

func (c *Controller) createAccount(id uint32) (*wallet.Account, error) {
	node := c.Node()
	if node == nil {
		return nil, errNoKey
	}
	return wallet.DeriveAccount(id, c.coin, node, c.gateway, c.accMet, c.logger, c.accountOpts...)
}

// dropAccount deregisters an account that is not kept. Failures are only logged.
func (c *Controller) dropAccount(ctx context.Context, acc *wallet.Account) {
	if err := acc.Deregister(context.WithoutCancel(ctx)); err != nil {
		c.logger.Warn("account deregistration failed", zap.Uint32("account", acc.ID), zap.Error(err))
	}
}

func (c *Controller) appendAccount(acc *wallet.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, acc)
}
