package emulator

import (
	"bytes"
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/hdnode"
	"github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet"
	"go.uber.org/zap"
)

type signingKey struct {
	script []byte
	key    *btcec.PrivateKey
}

func (s *session) MeasureTx(ctx context.Context, tx *wallet.Tx) (int, error) {
	msg, err := s.signTx(ctx, tx)
	if err != nil {
		return 0, err
	}
	return msg.SerializeSize(), nil
}

// SignTx checks every input against its previous transaction, asks for confirmation and signs.
func (s *session) SignTx(ctx context.Context, tx *wallet.Tx, refs []wallet.RefTx) ([]byte, error) {
	master, err := s.unlock(ctx)
	if err != nil {
		return nil, err
	}
	spent, err := s.spentAmount(master, tx, refs)
	if err != nil {
		return nil, err
	}

	var sent, paid btcutil.Amount
	for _, out := range tx.Outputs {
		sent += out.Amount
		if out.Address == "" {
			continue
		}
		paid += out.Amount
		if err := s.confirm(ctx, fmt.Sprintf("Confirm sending %s to %s", out.Amount, out.Address)); err != nil {
			return nil, err
		}
	}
	if sent > spent {
		return nil, fmt.Errorf("outputs %s exceed inputs %s", sent, spent)
	}
	if err := s.confirm(ctx, fmt.Sprintf("Really send %s? Fee: %s", paid, spent-sent)); err != nil {
		return nil, err
	}

	msg, err := s.signTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	if err := msg.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	s.emu.logger.Info("transaction signed", zap.Stringer("txid", msg.TxHash()), zap.Int("size", buf.Len()))
	return buf.Bytes(), nil
}

// spentAmount sums the previous outputs of tx, verifying that refs hash to their ids and that
// every spent output pays the key at the input path.
func (s *session) spentAmount(master *hdnode.Node, tx *wallet.Tx, refs []wallet.RefTx) (btcutil.Amount, error) {
	byHash := make(map[string]wallet.RefTx, len(refs))
	for _, ref := range refs {
		if got := refMsgTx(ref).TxHash().String(); got != ref.Hash {
			return 0, fmt.Errorf("previous transaction %s hashes to %s", ref.Hash, got)
		}
		byHash[ref.Hash] = ref
	}

	var total btcutil.Amount
	for _, in := range tx.Inputs {
		ref, ok := byHash[in.PrevHash]
		if !ok {
			return 0, fmt.Errorf("previous transaction %s not provided", in.PrevHash)
		}
		if int(in.PrevIndex) >= len(ref.Outputs) {
			return 0, fmt.Errorf("previous transaction %s has no output %d", in.PrevHash, in.PrevIndex)
		}
		k, err := s.signingKey(master, in.Path)
		if err != nil {
			return 0, err
		}
		prev := ref.Outputs[in.PrevIndex]
		if !bytes.Equal(prev.ScriptPubKey, k.script) {
			return 0, fmt.Errorf("%w: %s:%d", ErrNotOwnedInput, in.PrevHash, in.PrevIndex)
		}
		total += prev.Amount
	}
	return total, nil
}

func (s *session) signTx(ctx context.Context, tx *wallet.Tx) (*wire.MsgTx, error) {
	master, err := s.unlock(ctx)
	if err != nil {
		return nil, err
	}

	msg := wire.NewMsgTx(wire.TxVersion)
	keys := make([]signingKey, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		hash, err := chainhash.NewHashFromStr(in.PrevHash)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", in.PrevHash, err)
		}
		k, err := s.signingKey(master, in.Path)
		if err != nil {
			return nil, err
		}
		msg.AddTxIn(wire.NewTxIn(wire.NewOutPoint(hash, in.PrevIndex), nil, nil))
		keys = append(keys, k)
	}
	for _, out := range tx.Outputs {
		script, err := s.outputScript(master, out)
		if err != nil {
			return nil, err
		}
		msg.AddTxOut(wire.NewTxOut(int64(out.Amount), script))
	}

	for i, k := range keys {
		sigScript, err := txscript.SignatureScript(msg, i, k.script, txscript.SigHashAll, k.key, true)
		if err != nil {
			return nil, fmt.Errorf("sign input %d: %w", i, err)
		}
		msg.TxIn[i].SignatureScript = sigScript
	}
	return msg, nil
}

func (s *session) signingKey(master *hdnode.Node, path []uint32) (signingKey, error) {
	node, err := hdnode.DerivePath(master, path...)
	if err != nil {
		return signingKey{}, fmt.Errorf("derive %s: %w", hdnode.FormatPath(path), err)
	}
	script, err := hdnode.PayToAddrScript(node, s.emu.params.PubKeyHashAddrID)
	if err != nil {
		return signingKey{}, err
	}
	key, _ := btcec.PrivKeyFromBytes(node.PrivateKey)
	return signingKey{script: script, key: key}, nil
}

func (s *session) outputScript(master *hdnode.Node, out wallet.TxOutput) ([]byte, error) {
	if out.Address != "" {
		addr, err := btcutil.DecodeAddress(out.Address, s.emu.params)
		if err != nil {
			return nil, fmt.Errorf("output address %s: %w", out.Address, err)
		}
		return txscript.PayToAddrScript(addr)
	}
	node, err := hdnode.DerivePath(master, out.Path...)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", hdnode.FormatPath(out.Path), err)
	}
	return hdnode.PayToAddrScript(node, s.emu.params.PubKeyHashAddrID)
}

func refMsgTx(ref wallet.RefTx) *wire.MsgTx {
	msg := wire.NewMsgTx(int32(ref.Version))
	msg.LockTime = ref.LockTime
	for _, in := range ref.Inputs {
		var hash chainhash.Hash
		if h, err := chainhash.NewHashFromStr(in.PrevHash); err == nil {
			hash = *h
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(&hash, in.PrevIndex), in.ScriptSig, nil)
		txIn.Sequence = in.Sequence
		msg.AddTxIn(txIn)
	}
	for _, out := range ref.Outputs {
		msg.AddTxOut(wire.NewTxOut(int64(out.Amount), out.ScriptPubKey))
	}
	return msg
}
