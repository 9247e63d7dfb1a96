// Package ledger talks to the remote ledger-query service that tracks HD nodes by their xpub.
package ledger

import (
	"errors"
	"time"
)

// ErrGateway marks network and backend failures of the ledger service.
var ErrGateway = errors.New("ledger gateway failure")

// StatusPending tags push updates that consumers must ignore.
const StatusPending = "PENDING"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records ledger call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Output is an unspent output reported in a balance snapshot.
type Output struct {
	TransactionHash string `json:"transactionHash"`
	Index           uint32 `json:"ix"`
	Value           int64  `json:"value"`
	AddressID       uint32 `json:"addressId"`
}

// BalanceDetails is the balance snapshot of one tracked node.
type BalanceDetails struct {
	Confirmed []Output `json:"confirmed"`
	Change    []Output `json:"change"`
	Receiving []Output `json:"receiving"`
}

// Update is a push notification delivered for a subscribed node.
type Update struct {
	Status string `json:"status"`
	BalanceDetails
}

// Pending reports whether the update must be ignored.
func (u Update) Pending() bool {
	return u.Status == StatusPending
}

// Input is a transaction input as returned by the history endpoints.
type Input struct {
	SourceHash string `json:"sourceHash"`
	Index      uint32 `json:"ix"`
	Script     []byte `json:"script"`
	Sequence   uint32 `json:"sequence"`
}

// TxOutput is a transaction output; AddressID is set when the output pays the tracked node.
type TxOutput struct {
	Script    []byte  `json:"script"`
	Value     int64   `json:"value"`
	Index     uint32  `json:"ix"`
	AddressID *uint32 `json:"addressId,omitempty"`
}

// Transaction is a history record of a tracked node.
type Transaction struct {
	Hash      string     `json:"hash"`
	Version   uint32     `json:"version"`
	LockTime  uint32     `json:"lockTime"`
	Height    uint64     `json:"height"`
	BlockHash string     `json:"blockHash,omitempty"`
	Inputs    []Input    `json:"inputs"`
	Outputs   []TxOutput `json:"outputs"`
}

type registerRequest struct {
	After        string `json:"after"`
	PublicMaster string `json:"publicMaster"`
	LookAhead    int    `json:"lookAhead"`
	FirstIndex   int    `json:"firstIndex"`
}

type sendRequest struct {
	Transaction     []byte `json:"transaction"`
	TransactionHash []byte `json:"transactionHash"`
}
