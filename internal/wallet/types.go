package wallet

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gateway is the part of the ledger service an account talks to.
	Gateway interface {
		Register(ctx context.Context, node *hdnode.Node) error
		Deregister(ctx context.Context, node *hdnode.Node) error
		Balance(ctx context.Context, node *hdnode.Node) (ledger.BalanceDetails, error)
		Transactions(ctx context.Context, node *hdnode.Node) ([]ledger.Transaction, error)
		LookupTransaction(ctx context.Context, node *hdnode.Node, hash string) (ledger.Transaction, error)
		Send(ctx context.Context, rawTx []byte) error
		Subscribe(ctx context.Context, node *hdnode.Node, handler func(ledger.Update)) error
	}
	// Signer measures and signs candidate transactions.
	Signer interface {
		MeasureTx(ctx context.Context, tx *Tx) (int, error)
		SignTx(ctx context.Context, tx *Tx, refs []RefTx) ([]byte, error)
	}
	Metrics interface {
		ObserveMerge(transactions int, started time.Time)
		ObserveRefresh(chain string, err error, started time.Time)
		ObserveBuild(err error, attempts int, started time.Time)
		ObserveSend(err error)
	}
)
