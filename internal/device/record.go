package device

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
)

// Record is the persisted shape of a device.
type Record struct {
	ID       string          `json:"id"`
	Node     *hdnode.Node    `json:"node"`
	Features *Features       `json:"features"`
	Accounts []wallet.Record `json:"accounts"`
}

// Record serializes the device identity and its accounts.
func (c *Controller) Record() Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec := Record{ID: c.id, Node: c.node, Accounts: make([]wallet.Record, 0, len(c.accounts))}
	if c.features != nil {
		features := *c.features
		rec.Features = &features
	}
	for _, acc := range c.accounts {
		rec.Accounts = append(rec.Accounts, acc.Record())
	}
	return rec
}

// FromRecord rebuilds a disconnected controller from its persisted shape.
func FromRecord(rec Record, cfg Config) (*Controller, error) {
	c, err := New(rec.ID, cfg)
	if err != nil {
		return nil, err
	}
	accounts := make([]*wallet.Account, 0, len(rec.Accounts))
	for _, ar := range rec.Accounts {
		acc, err := wallet.FromRecord(ar, c.gateway, c.accMet, c.logger, c.accountOpts...)
		if err != nil {
			return nil, fmt.Errorf("device %s: %w", rec.ID, err)
		}
		accounts = append(accounts, acc)
	}
	if rec.Features != nil {
		features := *rec.Features
		c.features = &features
	}
	c.node = rec.Node
	c.accounts = accounts
	return c, nil
}
