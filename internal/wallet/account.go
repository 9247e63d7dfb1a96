package wallet

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
	"go.uber.org/zap"
)

const (
	DefaultFeePerKb       btcutil.Amount = 10000
	DefaultDustThreshold  btcutil.Amount = 5430
	DefaultMaxFeeAttempts                = 10
)

type chainState struct {
	utxos       []UTXO
	utxosSynced bool
	txs         []*Transaction
	txsSynced   bool
	loading     bool
}

// Account owns the primary and change chains of one HD account and their reconciled view.
type Account struct {
	ID         uint32
	Coin       Coin
	Node       *hdnode.Node
	ChangeNode *hdnode.Node

	params         *chaincfg.Params
	gateway        Gateway
	metrics        Metrics
	logger         *zap.Logger
	feePerKb       btcutil.Amount
	dustThreshold  btcutil.Amount
	maxFeeAttempts int

	mu           sync.RWMutex
	chains       [2]chainState
	utxos        []UTXO
	balance      *big.Int
	transactions []*Transaction
	offsets      Offsets
	index        *walletIndex
	unsubscribe  context.CancelFunc
}

// Option tunes an Account.
type Option func(*Account)

// WithFeePerKb overrides the fee rate used by BuildTx.
func WithFeePerKb(fee btcutil.Amount) Option {
	return func(a *Account) { a.feePerKb = fee }
}

// WithDustThreshold overrides the minimum change output value.
func WithDustThreshold(dust btcutil.Amount) Option {
	return func(a *Account) { a.dustThreshold = dust }
}

// WithMaxFeeAttempts bounds the number of measure round-trips of BuildTx.
func WithMaxFeeAttempts(n int) Option {
	return func(a *Account) { a.maxFeeAttempts = n }
}

// NewAccount builds an account over already derived chain nodes.
func NewAccount(
	id uint32,
	coin Coin,
	node, changeNode *hdnode.Node,
	gateway Gateway,
	metrics Metrics,
	logger *zap.Logger,
	opts ...Option,
) (*Account, error) {
	params, err := hdnode.ParamsForAddressType(coin.AddressType)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", id, err)
	}
	if node == nil || changeNode == nil {
		return nil, fmt.Errorf("account %d: chain nodes are required", id)
	}
	if gateway == nil || metrics == nil {
		return nil, fmt.Errorf("account %d: gateway and metrics are required", id)
	}

	a := &Account{
		ID:             id,
		Coin:           coin,
		Node:           node,
		ChangeNode:     changeNode,
		params:         params,
		gateway:        gateway,
		metrics:        metrics,
		logger:         logger.Named("account").With(zap.Uint32("account", id)),
		feePerKb:       DefaultFeePerKb,
		dustThreshold:  DefaultDustThreshold,
		maxFeeAttempts: DefaultMaxFeeAttempts,
		index:          newWalletIndex(params),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// DeriveAccount creates account id below master: m/id/0 is the coin node, its children 0 and 1 the chains.
func DeriveAccount(
	id uint32,
	coin Coin,
	master *hdnode.Node,
	gateway Gateway,
	metrics Metrics,
	logger *zap.Logger,
	opts ...Option,
) (*Account, error) {
	coinNode, err := hdnode.DerivePath(master, id, 0)
	if err != nil {
		return nil, fmt.Errorf("derive account %d: %w", id, err)
	}
	node, err := hdnode.Derive(coinNode, uint32(Primary))
	if err != nil {
		return nil, fmt.Errorf("derive account %d primary chain: %w", id, err)
	}
	changeNode, err := hdnode.Derive(coinNode, uint32(Change))
	if err != nil {
		return nil, fmt.Errorf("derive account %d change chain: %w", id, err)
	}
	return NewAccount(id, coin, node.Neuter(), changeNode.Neuter(), gateway, metrics, logger, opts...)
}

// Label is the display name of the account.
func (a *Account) Label() string {
	return fmt.Sprintf("Account #%d", a.ID+1)
}

func (a *Account) chainNode(chain Chain) *hdnode.Node {
	if chain == Change {
		return a.ChangeNode
	}
	return a.Node
}

// Ready reports whether both chains delivered a balance snapshot.
func (a *Account) Ready() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.chains[Primary].utxosSynced && a.chains[Change].utxosSynced
}

// Balance returns the sum of all UTXO values; ok is false until both chains are synced.
func (a *Account) Balance() (balance *big.Int, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.balance == nil {
		return nil, false
	}
	return new(big.Int).Set(a.balance), true
}

// UTXOs returns the merged spendable outputs of both chains.
func (a *Account) UTXOs() []UTXO {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]UTXO(nil), a.utxos...)
}

// Transactions returns the merged history, newest first.
func (a *Account) Transactions() []Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Transaction, 0, len(a.transactions))
	for _, tx := range a.transactions {
		out = append(out, *tx.clone())
	}
	return out
}

// Offsets returns the next unused child index of each chain.
func (a *Account) Offsets() Offsets {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.offsets
}

// Address derives the receiving address n positions past the primary offset.
func (a *Account) Address(n uint32) (AddressInfo, error) {
	index, err := safe.Uint32(uint64(a.Offsets().Primary) + uint64(n))
	if err != nil {
		return AddressInfo{}, fmt.Errorf("address index: %w", err)
	}
	child, err := hdnode.Derive(a.Node, index)
	if err != nil {
		return AddressInfo{}, fmt.Errorf("derive address %d: %w", index, err)
	}
	address, err := hdnode.AddressOf(child, a.Coin.AddressType)
	if err != nil {
		return AddressInfo{}, err
	}
	return AddressInfo{Address: address, Path: child.Path, Index: index}, nil
}

// Record is the persisted shape of an account.
type Record struct {
	ID         uint32       `json:"id,string"`
	Coin       Coin         `json:"coin"`
	Node       *hdnode.Node `json:"node"`
	ChangeNode *hdnode.Node `json:"changeNode"`
}

// Record serializes the account identity.
func (a *Account) Record() Record {
	return Record{
		ID:         a.ID,
		Coin:       a.Coin,
		Node:       a.Node,
		ChangeNode: a.ChangeNode,
	}
}

// FromRecord rebuilds an account from its persisted shape.
func FromRecord(rec Record, gateway Gateway, metrics Metrics, logger *zap.Logger, opts ...Option) (*Account, error) {
	return NewAccount(rec.ID, rec.Coin, rec.Node, rec.ChangeNode, gateway, metrics, logger, opts...)
}
