package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/ledger"
	"go.uber.org/zap"
)

// Register starts tracking both chains at the ledger.
func (a *Account) Register(ctx context.Context) error {
	for _, chain := range []Chain{Primary, Change} {
		if err := a.gateway.Register(ctx, a.chainNode(chain)); err != nil {
			return fmt.Errorf("register %s chain: %w", chain, err)
		}
	}
	return nil
}

// Deregister stops tracking both chains. Both are attempted even if one fails.
func (a *Account) Deregister(ctx context.Context) error {
	var errs []error
	for _, chain := range []Chain{Primary, Change} {
		if err := a.gateway.Deregister(ctx, a.chainNode(chain)); err != nil {
			errs = append(errs, fmt.Errorf("deregister %s chain: %w", chain, err))
		}
	}
	return errors.Join(errs...)
}

// LoadPrimaryTransactions fetches the primary chain history without applying it.
func (a *Account) LoadPrimaryTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	txs, err := a.gateway.Transactions(ctx, a.Node)
	if err != nil {
		return nil, fmt.Errorf("load primary transactions: %w", err)
	}
	return txs, nil
}

// Subscribe listens for push updates of both chains until ctx is done or Unsubscribe is called.
// A previous subscription is replaced.
func (a *Account) Subscribe(ctx context.Context) error {
	a.Unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	for _, chain := range []Chain{Primary, Change} {
		node := a.chainNode(chain)
		if err := a.gateway.Subscribe(ctx, node, a.pushHandler(ctx, chain, node)); err != nil {
			cancel()
			return fmt.Errorf("subscribe %s chain: %w", chain, err)
		}
	}

	a.mu.Lock()
	a.unsubscribe = cancel
	a.mu.Unlock()
	return nil
}

// Unsubscribe closes the push channels and drops the UTXO view.
func (a *Account) Unsubscribe() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.unsubscribe == nil {
		return
	}
	a.unsubscribe()
	a.unsubscribe = nil
	for i := range a.chains {
		a.chains[i].utxos = nil
		a.chains[i].utxosSynced = false
	}
	a.utxos = nil
	a.balance = nil
}

// Subscribed reports whether push updates are being consumed.
func (a *Account) Subscribed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.unsubscribe != nil
}

func (a *Account) pushHandler(ctx context.Context, chain Chain, node *hdnode.Node) func(ledger.Update) {
	return func(update ledger.Update) {
		if update.Pending() {
			return
		}
		if err := a.ApplyUTXOSnapshot(chain, update.BalanceDetails); err != nil {
			a.logger.Warn("balance update rejected", zap.Stringer("chain", chain), zap.Error(err))
		}
		if !a.beginLoading(chain) {
			return
		}
		go func() {
			defer a.endLoading(chain)
			a.refreshTransactions(ctx, chain, node)
		}()
	}
}

// beginLoading claims the history fetch slot of chain. Pushes arriving meanwhile are coalesced.
func (a *Account) beginLoading(chain Chain) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.chains[chain].loading {
		return false
	}
	a.chains[chain].loading = true
	return true
}

func (a *Account) endLoading(chain Chain) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chains[chain].loading = false
}

func (a *Account) refreshTransactions(ctx context.Context, chain Chain, node *hdnode.Node) {
	started := time.Now()
	txs, err := a.gateway.Transactions(ctx, node)
	if err == nil {
		err = a.ApplyTxSnapshot(chain, txs)
	}
	a.metrics.ObserveRefresh(chain.String(), err, started)
	if err != nil {
		a.logger.Warn("history refresh failed, waiting for next update", zap.Stringer("chain", chain), zap.Error(err))
	}
}

// Sync pulls balance and history of both chains once.
func (a *Account) Sync(ctx context.Context) error {
	for _, chain := range []Chain{Primary, Change} {
		node := a.chainNode(chain)
		details, err := a.gateway.Balance(ctx, node)
		if err != nil {
			return fmt.Errorf("sync %s balance: %w", chain, err)
		}
		if err := a.ApplyUTXOSnapshot(chain, details); err != nil {
			return fmt.Errorf("sync %s balance: %w", chain, err)
		}
		txs, err := a.gateway.Transactions(ctx, node)
		if err != nil {
			return fmt.Errorf("sync %s transactions: %w", chain, err)
		}
		if err := a.ApplyTxSnapshot(chain, txs); err != nil {
			return fmt.Errorf("sync %s transactions: %w", chain, err)
		}
	}
	return nil
}
