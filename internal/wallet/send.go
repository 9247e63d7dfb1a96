package wallet

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/workerpool"
	"go.uber.org/zap"
)

// SendTx signs tx on signer and submits the result. It returns the id of the submitted transaction.
func (a *Account) SendTx(ctx context.Context, tx *Tx, signer Signer) (txid string, err error) {
	defer func() {
		a.metrics.ObserveSend(err)
	}()

	refs, err := a.referencedTransactions(ctx, tx)
	if err != nil {
		return "", err
	}
	raw, err := signer.SignTx(ctx, tx, refs)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	if err := a.gateway.Send(ctx, raw); err != nil {
		return "", fmt.Errorf("submit transaction: %w", err)
	}

	txid = chainhash.DoubleHashH(raw).String()
	a.logger.Info("transaction submitted", zap.String("txid", txid), zap.Stringer("fee", tx.Fee))
	return txid, nil
}

const lookupWorkers = 4

type lookup struct {
	hash string
	node *hdnode.Node
	idx  int
}

// referencedTransactions fetches the distinct previous transactions of tx, in input order.
func (a *Account) referencedTransactions(ctx context.Context, tx *Tx) ([]RefTx, error) {
	lookups := make([]lookup, 0, len(tx.Inputs))
	seen := make(map[string]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, ok := seen[in.PrevHash]; ok {
			continue
		}
		node, err := a.inputNode(in.Path)
		if err != nil {
			return nil, fmt.Errorf("input %s:%d: %w", in.PrevHash, in.PrevIndex, err)
		}
		seen[in.PrevHash] = struct{}{}
		lookups = append(lookups, lookup{hash: in.PrevHash, node: node, idx: len(lookups)})
	}

	refs := make([]RefTx, len(lookups))
	err := workerpool.Process(ctx, lookupWorkers, lookups, func(ctx context.Context, l lookup) error {
		prev, err := a.gateway.LookupTransaction(ctx, l.node, l.hash)
		if err != nil {
			return fmt.Errorf("lookup transaction %s: %w", l.hash, err)
		}
		refs[l.idx] = refTx(prev)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// inputNode infers the owning chain from the second to last path element.
func (a *Account) inputNode(path []uint32) (*hdnode.Node, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path %s too short", ErrUnknownChain, hdnode.FormatPath(path))
	}
	switch Chain(path[len(path)-2]) {
	case Primary:
		return a.Node, nil
	case Change:
		return a.ChangeNode, nil
	default:
		return nil, fmt.Errorf("%w: path %s", ErrUnknownChain, hdnode.FormatPath(path))
	}
}

func refTx(tx ledger.Transaction) RefTx {
	ref := RefTx{
		Hash:     tx.Hash,
		Version:  tx.Version,
		LockTime: tx.LockTime,
		Inputs:   make([]RefInput, 0, len(tx.Inputs)),
		Outputs:  make([]RefOutput, 0, len(tx.Outputs)),
	}
	for _, in := range tx.Inputs {
		ref.Inputs = append(ref.Inputs, RefInput{
			PrevHash:  in.SourceHash,
			PrevIndex: in.Index,
			ScriptSig: in.Script,
			Sequence:  in.Sequence,
		})
	}
	for _, out := range tx.Outputs {
		ref.Outputs = append(ref.Outputs, RefOutput{
			Amount:       btcutil.Amount(out.Value),
			ScriptPubKey: out.Script,
		})
	}
	return ref
}
