package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

var errUndecodableOwnedOutput = errors.New("owned output script is not pay-to-pubkey-hash")

// walletIndex resolves transactions by hash and knows which pubkey hashes belong to the account.
// Analyses are memoized per hash, including failed ones.
type walletIndex struct {
	params   *chaincfg.Params
	txs      map[string]*Transaction
	owned    map[string]struct{}
	analyses map[string]*Analysis
}

func newWalletIndex(params *chaincfg.Params) *walletIndex {
	return &walletIndex{
		params:   params,
		txs:      make(map[string]*Transaction),
		owned:    make(map[string]struct{}),
		analyses: make(map[string]*Analysis),
	}
}

func (i *walletIndex) has(hash string) bool {
	_, ok := i.txs[hash]
	return ok
}

// add indexes tx and registers the pubkey hashes of its path-annotated outputs.
// Already indexed hashes are left untouched.
func (i *walletIndex) add(tx *Transaction) {
	if i.has(tx.Hash) {
		return
	}
	i.txs[tx.Hash] = tx
	for _, out := range tx.Outputs {
		if out.Path == nil {
			continue
		}
		if hash, ok := i.pubKeyHash(out.Script); ok {
			i.owned[string(hash)] = struct{}{}
		}
	}
}

// analysis returns the memoized classification of tx, computing it on first use.
func (i *walletIndex) analysis(tx *Transaction) (*Analysis, error) {
	if a, ok := i.analyses[tx.Hash]; ok {
		return a, nil
	}
	a, err := i.analyze(tx)
	i.analyses[tx.Hash] = a
	return a, err
}

func (i *walletIndex) analyze(tx *Transaction) (*Analysis, error) {
	if len(tx.Outputs) == 0 {
		return nil, fmt.Errorf("analyze %s: no outputs", tx.Hash)
	}
	var (
		valueIn, valueOut int64
		firstOwned        = -1
		firstForeign      = -1
	)
	for n, out := range tx.Outputs {
		if out.Path != nil {
			if _, ok := i.pubKeyHash(out.Script); !ok {
				return nil, fmt.Errorf("analyze %s output %d: %w", tx.Hash, out.Index, errUndecodableOwnedOutput)
			}
		}
		if i.owns(out.Script) {
			valueOut += int64(out.Value)
			if firstOwned < 0 {
				firstOwned = n
			}
		} else if firstForeign < 0 {
			firstForeign = n
		}
	}
	for _, in := range tx.Inputs {
		prev, ok := i.txs[in.SourceHash]
		if !ok {
			continue
		}
		if out, ok := outputAt(prev, in.Index); ok && i.owns(out.Script) {
			valueIn += int64(out.Value)
		}
	}
	a := &Analysis{}
	switch {
	case valueOut > valueIn:
		a.Direction = Credit
		a.Value = btcutil.Amount(valueOut - valueIn)
		a.Address = i.addressOf(tx.Outputs[firstOwned].Script)
	default:
		a.Direction = Debit
		a.Value = btcutil.Amount(valueIn - valueOut)
		target := 0
		if firstForeign >= 0 {
			target = firstForeign
		}
		a.Address = i.addressOf(tx.Outputs[target].Script)
	}
	return a, nil
}

func (i *walletIndex) owns(script []byte) bool {
	hash, ok := i.pubKeyHash(script)
	if !ok {
		return false
	}
	_, owned := i.owned[string(hash)]
	return owned
}

func (i *walletIndex) pubKeyHash(script []byte) ([]byte, bool) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, i.params)
	if err != nil || class != txscript.PubKeyHashTy || len(addrs) != 1 {
		return nil, false
	}
	return addrs[0].ScriptAddress(), true
}

func (i *walletIndex) addressOf(script []byte) string {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, i.params)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	return addrs[0].EncodeAddress()
}

func outputAt(tx *Transaction, index uint32) (Output, bool) {
	for _, out := range tx.Outputs {
		if out.Index == index {
			return out, true
		}
	}
	return Output{}, false
}
