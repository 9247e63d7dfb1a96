package wallet

import "sort"

// UsedAddresses groups credit transactions by their receiving address and sums the
// still unspent value each of them carries. The result is sorted by address.
func (a *Account) UsedAddresses() []UsedAddress {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var used []UsedAddress
	for _, tx := range a.transactions {
		if tx.Analysis == nil || tx.Analysis.Direction != Credit {
			continue
		}
		entry := UsedAddress{Address: tx.Analysis.Address}
		for _, utxo := range a.utxos {
			if utxo.TxHash != tx.Hash {
				continue
			}
			if entry.Path == nil {
				entry.Path = utxo.Path
			}
			entry.Balance += utxo.Value
		}
		used = append(used, entry)
	}

	sort.SliceStable(used, func(i, j int) bool {
		return used[i].Address < used[j].Address
	})

	out := make([]UsedAddress, 0, len(used))
	for _, entry := range used {
		if n := len(out); n > 0 && out[n-1].Address == entry.Address {
			out[n-1].Balance += entry.Balance
			continue
		}
		out = append(out, entry)
	}
	return out
}
