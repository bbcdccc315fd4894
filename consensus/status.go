package consensus

import (
	"fmt"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/txn"
)

// TransactionStatus reports a transaction's lifecycle stage (spec §4.4.5).
// A missing output_status for an accepted transaction is treated as a
// fatal inconsistency, per spec §7 and the Open Question in spec §9
// resolved in favor of the original source's panic behavior.
func (r *Replica) TransactionStatus(txHash [32]byte) (TransactionStatusResult, error) {
	acceptedBytes, found, err := r.store.GetValue(kvstore.AcceptedTransactionKey(txHash))
	if err != nil {
		return TransactionStatusResult{}, fmt.Errorf("consensus: %w: %v", kvstore.ErrStorage, err)
	}
	if found {
		var rec acceptedRecord
		if err := kvstore.Decode(acceptedBytes, &rec); err != nil {
			return TransactionStatusResult{}, fmt.Errorf("consensus: decode accepted record: %w", err)
		}

		outputs := make([]OutputStatusEntry, len(rec.Tx.Outputs))
		for i, out := range rec.Tx.Outputs {
			outcome, found, err := r.outputStatus(txHash, i, out)
			if err != nil {
				return TransactionStatusResult{}, fmt.Errorf("consensus: %w: %v", ErrInconsistency, err)
			}
			if !found {
				r.log.Fatalf("consensus: %v: accepted transaction %x has no output_status for output %d", ErrInconsistency, txHash, i)
			}
			outputs[i] = OutputStatusEntry{Index: i, Outcome: outcome}
		}

		return TransactionStatusResult{State: StateAccepted, Epoch: rec.Epoch, Outputs: outputs}, nil
	}

	_, found, err = r.store.GetValue(kvstore.ProposedTransactionKey(txHash))
	if err != nil {
		return TransactionStatusResult{}, fmt.Errorf("consensus: %w: %v", kvstore.ErrStorage, err)
	}
	if found {
		return TransactionStatusResult{State: StateAwaitingConsensus}, nil
	}

	return TransactionStatusResult{State: StateAbsent}, nil
}

func (r *Replica) outputStatus(txHash [32]byte, idx int, out txn.Output) (any, bool, error) {
	switch out.Kind {
	case txn.OutputKindCoins:
		return r.mint.OutputStatus(r.store, txHash, idx)
	case txn.OutputKindPegOut:
		return r.wallet.OutputStatus(r.store, txHash, idx)
	default:
		return nil, false, fmt.Errorf("unknown output kind %v", out.Kind)
	}
}
