package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/modules"
	"github.com/tbsmint/fedcore/tbs"
	"github.com/tbsmint/fedcore/txn"
)

// Module satisfies modules.FederationModule; see mint.Module's identical
// assertion for why the replica still calls it concretely.
var _ modules.FederationModule[SignatureShare, txn.PegInClaim, txn.PegOutWithdraw] = (*Module)(nil)

// ErrUTXOAlreadyClaimed is returned when a PegInClaim references a Bitcoin
// outpoint this replica has already recorded as claimed (spec invariant P8,
// second conflict relation).
var ErrUTXOAlreadyClaimed = errors.New("wallet: peg-in utxo already claimed")

// ErrMissingProof is returned when a PegInClaim carries no SPV proof bytes.
var ErrMissingProof = errors.New("wallet: missing spv proof")

// Module implements modules.FederationModule for Bitcoin peg-in/peg-out
// (spec §4.4.4).
type Module struct {
	cfg Config
}

// New returns a Module backed by cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg}
}

// ValidateInput checks that a peg-in claim carries proof bytes and that its
// Bitcoin outpoint has not already been claimed.
func (m *Module) ValidateInput(store kvstore.KVStore, in txn.PegInClaim) error {
	if len(in.TxOutProof) == 0 {
		return ErrMissingProof
	}
	proof := toPegInProof(in)
	if _, found, err := store.GetValue(claimedKey(proof.Outpoint.Hash, proof.Outpoint.Index)); err != nil {
		return fmt.Errorf("wallet: check claimed utxo: %w", err)
	} else if found {
		return ErrUTXOAlreadyClaimed
	}
	return nil
}

// ValidateOutput checks that a withdrawal names a non-empty destination
// script and a positive amount.
func (m *Module) ValidateOutput(store kvstore.KVStore, out txn.PegOutWithdraw) error {
	if len(out.DestinationScript) == 0 {
		return errors.New("wallet: empty destination script")
	}
	if out.Amount == 0 {
		return errors.New("wallet: zero-amount withdrawal")
	}
	return nil
}

// ApplyInput marks the claimed Bitcoin outpoint as spent.
func (m *Module) ApplyInput(batch *kvstore.Batch, txHash [32]byte, inputIndex int, in txn.PegInClaim) error {
	proof := toPegInProof(in)
	batch.Put(claimedKey(proof.Outpoint.Hash, proof.Outpoint.Index), txHash[:])
	return nil
}

// ApplyOutput stages this guardian's attestation share for the withdrawal,
// mirroring mint.Module's per-output gossip-then-combine shape.
func (m *Module) ApplyOutput(batch *kvstore.Batch, txHash [32]byte, outputIndex int, out txn.PegOutWithdraw) (any, error) {
	msg, err := payoutMessage(txHash, outputIndex, out)
	if err != nil {
		return nil, err
	}
	share := tbs.SignBlinded(msg, m.cfg.SecretShare)
	shareBytes := tbs.MarshalG1(share)

	batch.Put(shareKey(txHash, outputIndex, m.cfg.GuardianIndex), shareBytes)
	batch.Put(localPendingKey(txHash, outputIndex), shareBytes)
	batch.Put(pendingKey(txHash, outputIndex), encodePendingPayout(out))

	return WithdrawalOutcome{LocalShare: share}, nil
}

// BeginConsensusEpoch records every guardian's SignatureShare ordered into
// this epoch's outcome, clearing this guardian's own pending-broadcast
// marker for any it produced itself.
func (m *Module) BeginConsensusEpoch(store kvstore.KVStore, items []SignatureShare) (*kvstore.Batch, error) {
	batch := &kvstore.Batch{}
	for _, item := range items {
		batch.Put(shareKey(item.TxHash, item.OutputIndex, item.GuardianIndex), tbs.MarshalG1(item.Share))
		if item.GuardianIndex == m.cfg.GuardianIndex {
			batch.Delete(localPendingKey(item.TxHash, item.OutputIndex))
		}
	}
	return batch, nil
}

// EndConsensusEpoch combines any withdrawal that has accumulated at least
// Threshold guardian shares into a finalized attestation, then folds every
// withdrawal newly attested this epoch into one broadcast-ready wire.MsgTx.
func (m *Module) EndConsensusEpoch(store kvstore.KVStore, rng io.Reader) (*kvstore.Batch, []SignatureShare, error) {
	batch := &kvstore.Batch{}

	entries, err := store.FindByPrefix(pendingPrefix())
	if err != nil {
		return nil, nil, fmt.Errorf("wallet: scan pending withdrawals: %w", err)
	}

	var newlyAttested []attestedPayout
	for _, e := range entries {
		txHash, outputIndex, err := parseSuffixedKey(e.Key, prefixPending)
		if err != nil {
			return nil, nil, err
		}

		if _, found, err := store.GetValue(attestKey(txHash, outputIndex)); err != nil {
			return nil, nil, fmt.Errorf("wallet: check attestation: %w", err)
		} else if found {
			batch.Delete(e.Key)
			continue
		}

		shares, err := store.FindByPrefix(sharePrefix(txHash, outputIndex))
		if err != nil {
			return nil, nil, fmt.Errorf("wallet: scan shares: %w", err)
		}
		if len(shares) < m.cfg.Threshold {
			continue
		}

		indexed := make([]tbs.IndexedShare, 0, len(shares))
		for _, s := range shares {
			guardianIndex, err := guardianIndexOf(s.Key)
			if err != nil {
				return nil, nil, err
			}
			share, err := tbs.UnmarshalG1(s.Value)
			if err != nil {
				return nil, nil, fmt.Errorf("wallet: unmarshal share: %w", err)
			}
			indexed = append(indexed, tbs.IndexedShare{Index: guardianIndex, Share: share})
		}

		combined, err := tbs.CombineValidShares(indexed, m.cfg.Threshold)
		if err != nil {
			return nil, nil, fmt.Errorf("wallet: combine shares: %w", err)
		}

		batch.Put(attestKey(txHash, outputIndex), tbs.MarshalG1(combined))
		batch.Delete(e.Key)

		payout, err := decodePendingPayout(e.Value)
		if err != nil {
			return nil, nil, err
		}
		newlyAttested = append(newlyAttested, payout)
	}

	if len(newlyAttested) > 0 {
		tx := assembleBatch(newlyAttested)
		var buf bytes.Buffer
		if err := tx.Serialize(&buf); err != nil {
			return nil, nil, fmt.Errorf("wallet: serialize payout batch: %w", err)
		}
		batch.Put(batchKey(tx.TxHash().String()), buf.Bytes())
	}

	return batch, nil, nil
}

// ConsensusProposal surfaces every locally pending share this guardian has
// produced but not yet seen ordered into an epoch.
func (m *Module) ConsensusProposal(store kvstore.KVStore) ([]SignatureShare, error) {
	entries, err := store.FindByPrefix([]byte(prefixLocal))
	if err != nil {
		return nil, fmt.Errorf("wallet: scan local shares: %w", err)
	}

	items := make([]SignatureShare, 0, len(entries))
	for _, e := range entries {
		txHash, outputIndex, err := parseSuffixedKey(e.Key, prefixLocal)
		if err != nil {
			return nil, err
		}
		share, err := tbs.UnmarshalG1(e.Value)
		if err != nil {
			return nil, fmt.Errorf("wallet: unmarshal local share: %w", err)
		}
		items = append(items, SignatureShare{
			TxHash:        txHash,
			OutputIndex:   outputIndex,
			GuardianIndex: m.cfg.GuardianIndex,
			Share:         share,
		})
	}
	return items, nil
}

// OutputStatus reports this guardian's own attestation share and, once
// combined, the finalized attestation for a peg-out.
func (m *Module) OutputStatus(store kvstore.KVStore, txHash [32]byte, outputIndex int) (any, bool, error) {
	localBytes, found, err := store.GetValue(shareKey(txHash, outputIndex, m.cfg.GuardianIndex))
	if err != nil {
		return nil, false, fmt.Errorf("wallet: read local share: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	localShare, err := tbs.UnmarshalG1(localBytes)
	if err != nil {
		return nil, false, fmt.Errorf("wallet: unmarshal local share: %w", err)
	}
	outcome := WithdrawalOutcome{LocalShare: localShare}

	if attBytes, found, err := store.GetValue(attestKey(txHash, outputIndex)); err != nil {
		return nil, false, fmt.Errorf("wallet: read attestation: %w", err)
	} else if found {
		att, err := tbs.UnmarshalG1(attBytes)
		if err != nil {
			return nil, false, fmt.Errorf("wallet: unmarshal attestation: %w", err)
		}
		outcome.Attestation = &att
	}
	return outcome, true, nil
}
