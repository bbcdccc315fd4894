package consensus

import "github.com/tbsmint/fedcore/txn"

// filterConflicts applies spec §4.4.3 step 3: transactions are kept in
// received order, first occurrence wins. Two transactions conflict if they
// spend the same coin-note nonce, or claim the same peg-in Bitcoin
// outpoint (the two P8 conflict relations).
func filterConflicts(txs []*txn.Transaction) []*txn.Transaction {
	seenNonce := make(map[[32]byte]bool)
	seenUTXO := make(map[txn.BitcoinOutPoint]bool)
	kept := make([]*txn.Transaction, 0, len(txs))

	for _, tx := range txs {
		if conflicts(tx, seenNonce, seenUTXO) {
			continue
		}
		markSpent(tx, seenNonce, seenUTXO)
		kept = append(kept, tx)
	}
	return kept
}

func conflicts(tx *txn.Transaction, seenNonce map[[32]byte]bool, seenUTXO map[txn.BitcoinOutPoint]bool) bool {
	for _, in := range tx.Inputs {
		switch in.Kind {
		case txn.InputKindCoins:
			if in.Coins == nil {
				continue
			}
			for _, note := range in.Coins.Notes {
				if seenNonce[note.Nonce] {
					return true
				}
			}
		case txn.InputKindPegIn:
			if in.PegIn != nil && seenUTXO[in.PegIn.Outpoint] {
				return true
			}
		}
	}
	return false
}

func markSpent(tx *txn.Transaction, seenNonce map[[32]byte]bool, seenUTXO map[txn.BitcoinOutPoint]bool) {
	for _, in := range tx.Inputs {
		switch in.Kind {
		case txn.InputKindCoins:
			if in.Coins == nil {
				continue
			}
			for _, note := range in.Coins.Notes {
				seenNonce[note.Nonce] = true
			}
		case txn.InputKindPegIn:
			if in.PegIn != nil {
				seenUTXO[in.PegIn.Outpoint] = true
			}
		}
	}
}
