package wallet

import (
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-wallet/pkg/safe"
	"go.uber.org/zap"
)

// ApplyUTXOSnapshot replaces the UTXO list of chain. The merged set and balance are
// published only once both chains have been synced.
func (a *Account) ApplyUTXOSnapshot(chain Chain, details ledger.BalanceDetails) error {
	base := a.chainNode(chain).Path

	var utxos []UTXO
	groups := []struct {
		outputs   []ledger.Output
		confirmed bool
	}{
		{details.Confirmed, true},
		{details.Change, false},
		{details.Receiving, false},
	}
	for _, group := range groups {
		for _, out := range group.outputs {
			if _, err := safe.Uint64(out.Value); err != nil {
				return fmt.Errorf("utxo %s:%d: %w", out.TransactionHash, out.Index, err)
			}
			utxos = append(utxos, UTXO{
				TxHash:    out.TransactionHash,
				Index:     out.Index,
				Value:     btcutil.Amount(out.Value),
				Path:      childPath(base, out.AddressID),
				Confirmed: group.confirmed,
			})
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.chains[chain].utxos = utxos
	a.chains[chain].utxosSynced = true
	a.rollupUTXOs()
	return nil
}

func (a *Account) rollupUTXOs() {
	primary, change := &a.chains[Primary], &a.chains[Change]
	if !primary.utxosSynced || !change.utxosSynced {
		return
	}
	merged := make([]UTXO, 0, len(primary.utxos)+len(change.utxos))
	merged = append(merged, primary.utxos...)
	merged = append(merged, change.utxos...)

	balance := new(big.Int)
	for _, utxo := range merged {
		balance.Add(balance, big.NewInt(int64(utxo.Value)))
	}
	a.utxos = merged
	a.balance = balance
}

// ApplyTxSnapshot upserts txs into the history of chain and merges both chains
// once each of them delivered a snapshot.
func (a *Account) ApplyTxSnapshot(chain Chain, txs []ledger.Transaction) error {
	base := a.chainNode(chain).Path

	records := make([]*Transaction, 0, len(txs))
	for _, tx := range txs {
		rec, err := newTransaction(tx, base)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	state := &a.chains[chain]
	state.txs = upsert(state.txs, records)
	state.txsSynced = true

	if a.chains[Primary].txsSynced && a.chains[Change].txsSynced {
		a.rollupTransactions()
	}
	return nil
}

func newTransaction(tx ledger.Transaction, base []uint32) (*Transaction, error) {
	rec := &Transaction{
		Hash:      tx.Hash,
		Version:   tx.Version,
		LockTime:  tx.LockTime,
		Height:    tx.Height,
		BlockHash: tx.BlockHash,
		Inputs:    make([]Input, 0, len(tx.Inputs)),
		Outputs:   make([]Output, 0, len(tx.Outputs)),
	}
	for _, in := range tx.Inputs {
		rec.Inputs = append(rec.Inputs, Input{
			SourceHash: in.SourceHash,
			Index:      in.Index,
			Script:     in.Script,
			Sequence:   in.Sequence,
		})
	}
	for _, out := range tx.Outputs {
		if _, err := safe.Uint64(out.Value); err != nil {
			return nil, fmt.Errorf("transaction %s output %d: %w", tx.Hash, out.Index, err)
		}
		var path []uint32
		if out.AddressID != nil {
			path = childPath(base, *out.AddressID)
		}
		rec.Outputs = append(rec.Outputs, Output{
			Script: out.Script,
			Value:  btcutil.Amount(out.Value),
			Index:  out.Index,
			Path:   path,
		})
	}
	return rec, nil
}

func upsert(current, incoming []*Transaction) []*Transaction {
	pos := make(map[string]int, len(current))
	for i, tx := range current {
		pos[tx.Hash] = i
	}
	for _, tx := range incoming {
		if i, ok := pos[tx.Hash]; ok {
			current[i] = tx
			continue
		}
		pos[tx.Hash] = len(current)
		current = append(current, tx)
	}
	return current
}

func (a *Account) rollupTransactions() {
	started := time.Now()

	primary, change := a.chains[Primary].txs, a.chains[Change].txs
	all := make([]*Transaction, 0, len(primary)+len(change))
	for _, tx := range primary {
		all = append(all, tx.clone())
	}
	for _, tx := range change {
		all = append(all, tx.clone())
	}

	merged := mergeByHash(all)
	for _, tx := range merged {
		a.index.add(tx)
	}
	for _, tx := range merged {
		analysis, err := a.index.analysis(tx)
		if err != nil {
			a.logger.Debug("transaction left unclassified", zap.String("hash", tx.Hash), zap.Error(err))
		}
		tx.Analysis = analysis
	}
	sortByHeight(merged)
	runningBalance(merged)

	a.transactions = merged
	a.offsets.Primary = nextOffset(primary, a.offsets.Primary)
	a.offsets.Change = nextOffset(change, a.offsets.Change)

	a.metrics.ObserveMerge(len(merged), started)
}

// mergeByHash collapses records sharing a hash. Output paths already known are never overwritten.
func mergeByHash(txs []*Transaction) []*Transaction {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Hash < txs[j].Hash
	})

	merged := make([]*Transaction, 0, len(txs))
	for _, tx := range txs {
		if n := len(merged); n > 0 && merged[n-1].Hash == tx.Hash {
			prev := merged[n-1]
			for i, out := range tx.Outputs {
				if i < len(prev.Outputs) && prev.Outputs[i].Path == nil && out.Path != nil {
					prev.Outputs[i].Path = out.Path
				}
			}
			continue
		}
		merged = append(merged, tx)
	}
	return merged
}

// sortByHeight orders newest first with unconfirmed transactions ahead of all others.
func sortByHeight(txs []*Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		hi, hj := txs[i].Height, txs[j].Height
		if hi == 0 || hj == 0 {
			return hi == 0 && hj != 0
		}
		return hi > hj
	})
}

// runningBalance walks from the oldest record. Unclassified records carry no balance.
func runningBalance(txs []*Transaction) {
	balance := new(big.Int)
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]
		if tx.Analysis == nil {
			tx.Balance = nil
			continue
		}
		balance = new(big.Int).Add(balance, tx.Analysis.Impact())
		tx.Balance = balance
	}
}

func nextOffset(txs []*Transaction, offset uint32) uint32 {
	for _, tx := range txs {
		for _, out := range tx.Outputs {
			if len(out.Path) == 0 {
				continue
			}
			if id := out.Path[len(out.Path)-1]; id >= offset {
				offset = id + 1
			}
		}
	}
	return offset
}

func childPath(base []uint32, index uint32) []uint32 {
	path := make([]uint32, 0, len(base)+1)
	path = append(path, base...)
	return append(path, index)
}
