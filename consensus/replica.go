package consensus

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"go.uber.org/zap"

	"github.com/tbsmint/fedcore/internal/rng"
	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/modules/mint"
	"github.com/tbsmint/fedcore/modules/wallet"
	"github.com/tbsmint/fedcore/txn"
)

// Replica is the consensus-facing core (spec §4.4): it validates and pools
// submitted transactions, proposes pooled and module-owned items into BFT
// rounds, and applies ordered outcomes.
type Replica struct {
	store  kvstore.KVStore
	mint   *mint.Module
	wallet *wallet.Module
	fees   txn.FeeSchedule
	rngs   *rng.Factory
	log    *zap.SugaredLogger
}

// New builds a Replica. log must not be nil; pass zap.NewNop().Sugar() in
// tests that don't care about log output.
func New(store kvstore.KVStore, mintModule *mint.Module, walletModule *wallet.Module, fees txn.FeeSchedule, rngs *rng.Factory, log *zap.SugaredLogger) *Replica {
	return &Replica{
		store:  store,
		mint:   mintModule,
		wallet: walletModule,
		fees:   fees,
		rngs:   rngs,
		log:    log,
	}
}

// SubmitTransaction runs stateless and module validation on tx and, if it
// passes, pools it for the next consensus round (spec §4.4.1). pubKey is
// the key tx.Signature is checked against; it is stamped onto tx.PubKey
// before pooling so that apply-time re-verification (spec §4.4.4) has it
// available without depending on this replica's in-memory state.
func (r *Replica) SubmitTransaction(tx txn.Transaction, pubKey *btcec.PublicKey) error {
	if err := tx.ValidateFunding(r.fees); err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionMalformed, err)
	}
	tx.PubKey = pubKey.SerializeCompressed()
	ok, err := tx.VerifySignature(pubKey)
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

	txHash, err := tx.TxHash()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionMalformed, err)
	}

	encoded, err := kvstore.Encode(tx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionMalformed, err)
	}
	_, found, err := r.store.InsertEntry(kvstore.ProposedTransactionKey(txHash), encoded)
	if err != nil {
		return fmt.Errorf("consensus: %w: %v", kvstore.ErrStorage, err)
	}
	if found {
		r.log.Warnf("transaction %x resubmitted while already pooled; treating as idempotent success", txHash)
	}
	return nil
}

func (r *Replica) validateInput(in txn.Input) error {
	switch in.Kind {
	case txn.InputKindCoins:
		if in.Coins == nil {
			return fmt.Errorf("nil coin spend")
		}
		return r.mint.ValidateInput(r.store, *in.Coins)
	case txn.InputKindPegIn:
		if in.PegIn == nil {
			return fmt.Errorf("nil peg-in claim")
		}
		return r.wallet.ValidateInput(r.store, *in.PegIn)
	default:
		return fmt.Errorf("unknown input kind %v", in.Kind)
	}
}

func (r *Replica) validateOutput(out txn.Output) error {
	switch out.Kind {
	case txn.OutputKindCoins:
		if out.Coins == nil {
			return fmt.Errorf("nil coin issuance")
		}
		return r.mint.ValidateOutput(r.store, *out.Coins)
	case txn.OutputKindPegOut:
		if out.PegOut == nil {
			return fmt.Errorf("nil peg-out withdrawal")
		}
		return r.wallet.ValidateOutput(r.store, *out.PegOut)
	default:
		return fmt.Errorf("unknown output kind %v", out.Kind)
	}
}
