package wallet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"
)

// SelectUTXOs picks confirmed outputs first, larger values first, until target is covered.
func (a *Account) SelectUTXOs(target btcutil.Amount) ([]UTXO, error) {
	candidates := a.UTXOs()
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confirmed != candidates[j].Confirmed {
			return candidates[i].Confirmed
		}
		return candidates[i].Value > candidates[j].Value
	})

	var (
		selected []UTXO
		total    btcutil.Amount
	)
	for _, utxo := range candidates {
		if total >= target {
			break
		}
		selected = append(selected, utxo)
		total += utxo.Value
	}
	if total < target {
		return nil, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, target, total)
	}
	return selected, nil
}

// BuildTx constructs a spend of amount to address and settles its fee by measuring
// candidates on signer. Signer failures are returned as is.
func (a *Account) BuildTx(ctx context.Context, address string, amount btcutil.Amount, signer Signer) (tx *Tx, err error) {
	started := time.Now()
	attempts := 0
	defer func() {
		a.metrics.ObserveBuild(err, attempts, started)
	}()

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if _, err := btcutil.DecodeAddress(address, a.params); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAddress, address, err)
	}

	var fee btcutil.Amount
	for attempts < a.maxFeeAttempts {
		attempts++

		tx, err = a.constructTx(address, amount, fee)
		if err != nil {
			return nil, err
		}
		size, err := signer.MeasureTx(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("measure transaction: %w", err)
		}

		fee = btcutil.Amount((size+999)/1000) * a.feePerKb
		space := tx.Total - amount

		if space-fee < a.dustThreshold {
			// change would be dust, leave the rest to the miners
			tx.Outputs = tx.Outputs[:1]
			tx.Fee = space
			return tx, nil
		}
		if fee < space {
			tx.Outputs[1].Amount = space - fee
			tx.Fee = fee
			return tx, nil
		}
		a.logger.Debug("fee exceeds selected inputs, reselecting",
			zap.Int("attempt", attempts), zap.Stringer("fee", fee), zap.Stringer("space", space))
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrFeeNegotiation, attempts)
}

func (a *Account) constructTx(address string, amount, fee btcutil.Amount) (*Tx, error) {
	utxos, err := a.SelectUTXOs(amount + fee)
	if err != nil {
		return nil, err
	}

	tx := &Tx{
		Inputs: make([]TxInput, 0, len(utxos)),
		Fee:    fee,
	}
	for _, utxo := range utxos {
		tx.Total += utxo.Value
		tx.Inputs = append(tx.Inputs, TxInput{
			PrevHash:  utxo.TxHash,
			PrevIndex: utxo.Index,
			Path:      utxo.Path,
		})
	}
	changePath := childPath(a.ChangeNode.Path, a.Offsets().Change)
	tx.Outputs = []TxOutput{
		{Address: address, Amount: amount},
		{Path: changePath, Amount: tx.Total - amount - fee},
	}
	return tx, nil
}
