// Package wallet reconciles HD accounts against the ledger service and builds spend transactions.
package wallet

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcutil"
)

var (
	// ErrInsufficientFunds is returned when the spendable outputs cannot cover the target.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrFeeNegotiation is returned when the fee does not settle within the attempt bound.
	ErrFeeNegotiation = errors.New("fee negotiation did not settle")
	// ErrUnknownChain is returned for derivation paths outside the primary and change chains.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrInvalidAmount is returned for non-positive spend amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidAddress is returned for destinations that do not decode on the account network.
	ErrInvalidAddress = errors.New("invalid address")
)

// Chain selects one of the two derivation subtrees of an account.
type Chain int

const (
	Primary Chain = iota
	Change
)

func (c Chain) String() string {
	switch c {
	case Primary:
		return "primary"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// Coin describes the network an account lives on.
type Coin struct {
	Name        string `json:"coin_name"`
	Shortcut    string `json:"coin_shortcut"`
	AddressType byte   `json:"address_type"`
}

// Bitcoin is the coin new accounts are created with.
var Bitcoin = Coin{Name: "Bitcoin", Shortcut: "BTC", AddressType: 0}

// UTXO is a spendable output owned by the account.
type UTXO struct {
	TxHash    string
	Index     uint32
	Value     btcutil.Amount
	Path      []uint32
	Confirmed bool
}

// Input of a history transaction.
type Input struct {
	SourceHash string
	Index      uint32
	Script     []byte
	Sequence   uint32
}

// Output of a history transaction. Path is set when the output pays the account.
type Output struct {
	Script []byte
	Value  btcutil.Amount
	Index  uint32
	Path   []uint32
}

type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

// Analysis classifies a transaction relative to the account.
type Analysis struct {
	Direction Direction
	Address   string
	Value     btcutil.Amount
}

// Impact is the signed balance change of the transaction.
func (a Analysis) Impact() *big.Int {
	v := big.NewInt(int64(a.Value))
	if a.Direction == Debit {
		v.Neg(v)
	}
	return v
}

// Transaction is a merged history record. Height 0 means unconfirmed.
type Transaction struct {
	Hash      string
	Version   uint32
	LockTime  uint32
	Height    uint64
	BlockHash string
	Inputs    []Input
	Outputs   []Output
	Analysis  *Analysis
	Balance   *big.Int
}

func (t *Transaction) clone() *Transaction {
	c := *t
	c.Inputs = append([]Input(nil), t.Inputs...)
	c.Outputs = append([]Output(nil), t.Outputs...)
	if t.Balance != nil {
		c.Balance = new(big.Int).Set(t.Balance)
	}
	return &c
}

// Offsets are the next unused child indices of both chains.
type Offsets struct {
	Primary uint32 `json:"primary"`
	Change  uint32 `json:"change"`
}

func (o Offsets) of(chain Chain) uint32 {
	if chain == Change {
		return o.Change
	}
	return o.Primary
}

// UsedAddress is a receiving address with credit history.
type UsedAddress struct {
	Address string
	Path    []uint32
	Balance btcutil.Amount
}

// AddressInfo is a derived receiving address.
type AddressInfo struct {
	Address string
	Path    []uint32
	Index   uint32
}

// Tx is a candidate spend transaction.
type Tx struct {
	Inputs  []TxInput
	Outputs []TxOutput
	Fee     btcutil.Amount
	Total   btcutil.Amount
}

// TxInput spends a UTXO owned by the account.
type TxInput struct {
	PrevHash  string
	PrevIndex uint32
	Path      []uint32
}

// TxOutput pays either Address or the account-owned Path.
type TxOutput struct {
	Address string
	Path    []uint32
	Amount  btcutil.Amount
}

// RefTx is a previous transaction referenced by the inputs of a Tx.
type RefTx struct {
	Hash     string
	Version  uint32
	LockTime uint32
	Inputs   []RefInput
	Outputs  []RefOutput
}

type RefInput struct {
	PrevHash  string
	PrevIndex uint32
	ScriptSig []byte
	Sequence  uint32
}

type RefOutput struct {
	Amount       btcutil.Amount
	ScriptPubKey []byte
}
