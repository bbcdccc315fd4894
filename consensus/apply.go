package consensus

import (
	"fmt"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/txn"
)

// applyTransaction is process_transaction (spec §4.4.4): re-runs the same
// stateless validation submit_transaction already ran — funding and
// signature — then re-validates every input/output against the owning
// module, then stages every apply_* write into batch. A failure aborts
// before any write is staged for the remaining inputs/outputs; writes
// already staged for earlier ones stay in batch, which is why applyOne
// passes a scratch batch and discards it on error.
func (r *Replica) applyTransaction(batch *kvstore.Batch, txHash [32]byte, tx *txn.Transaction) error {
	if err := tx.ValidateFunding(r.fees); err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionMalformed, err)
	}
	ok, err := tx.VerifyOwnSignature()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionMalformed, err)
	}
	if !ok {
		return fmt.Errorf("%w: signature does not verify", ErrTransactionMalformed)
	}
	for i, in := range tx.Inputs {
		if err := r.validateInput(in); err != nil {
			return fmt.Errorf("%w (input %d): %v", ErrModuleInputInvalid, i, err)
		}
	}
	for i, out := range tx.Outputs {
		if err := r.validateOutput(out); err != nil {
			return fmt.Errorf("%w (output %d): %v", ErrModuleOutputInvalid, i, err)
		}
	}

	for i, in := range tx.Inputs {
		if err := r.applyInput(batch, txHash, i, in); err != nil {
			return fmt.Errorf("%w (input %d): %v", ErrModuleInputInvalid, i, err)
		}
	}
	for i, out := range tx.Outputs {
		if _, err := r.applyOutput(batch, txHash, i, out); err != nil {
			return fmt.Errorf("%w (output %d): %v", ErrModuleOutputInvalid, i, err)
		}
	}
	return nil
}

func (r *Replica) applyInput(batch *kvstore.Batch, txHash [32]byte, idx int, in txn.Input) error {
	switch in.Kind {
	case txn.InputKindCoins:
		if in.Coins == nil {
			return fmt.Errorf("nil coin spend")
		}
		return r.mint.ApplyInput(batch, txHash, idx, *in.Coins)
	case txn.InputKindPegIn:
		if in.PegIn == nil {
			return fmt.Errorf("nil peg-in claim")
		}
		return r.wallet.ApplyInput(batch, txHash, idx, *in.PegIn)
	default:
		return fmt.Errorf("unknown input kind %v", in.Kind)
	}
}

func (r *Replica) applyOutput(batch *kvstore.Batch, txHash [32]byte, idx int, out txn.Output) (any, error) {
	switch out.Kind {
	case txn.OutputKindCoins:
		if out.Coins == nil {
			return nil, fmt.Errorf("nil coin issuance")
		}
		return r.mint.ApplyOutput(batch, txHash, idx, *out.Coins)
	case txn.OutputKindPegOut:
		if out.PegOut == nil {
			return nil, fmt.Errorf("nil peg-out withdrawal")
		}
		return r.wallet.ApplyOutput(batch, txHash, idx, *out.PegOut)
	default:
		return nil, fmt.Errorf("unknown output kind %v", out.Kind)
	}
}

// applyOne runs the per-transaction step of spec §4.4.3.4: it always
// deletes the transaction's pooled entry, and on success additionally
// records its acceptance. Failures are logged and swallowed here — they
// never escape to the caller, per spec §7's asymmetric propagation policy.
func (r *Replica) applyOne(epoch uint64, tx *txn.Transaction) *kvstore.Batch {
	batch := &kvstore.Batch{}

	txHash, err := tx.TxHash()
	if err != nil {
		r.log.Warnf("consensus: hash transaction during apply: %v", err)
		return batch
	}
	batch.Delete(kvstore.ProposedTransactionKey(txHash))

	txBatch := &kvstore.Batch{}
	if err := r.applyTransaction(txBatch, txHash, tx); err != nil {
		r.log.Warnf("consensus: transaction %x rejected during apply: %v", txHash, err)
		return batch
	}
	batch.Merge(txBatch)

	encoded, err := kvstore.Encode(acceptedRecord{Epoch: epoch, Tx: *tx})
	if err != nil {
		r.log.Fatalf("consensus: encode accepted record for %x: %v", txHash, err)
	}
	batch.Put(kvstore.AcceptedTransactionKey(txHash), encoded)
	return batch
}
