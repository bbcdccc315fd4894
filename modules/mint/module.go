package mint

import (
	"errors"
	"fmt"
	"io"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/modules"
	"github.com/tbsmint/fedcore/tbs"
	"github.com/tbsmint/fedcore/txn"
)

// Module satisfies modules.FederationModule; the replica dispatches to it
// through concrete calls rather than this interface value (there are only
// two modules), but this assertion keeps it honest to the capability
// contract spec §4.3 describes.
var _ modules.FederationModule[SignatureShare, txn.CoinSpend, txn.CoinIssuance] = (*Module)(nil)

// ErrNoteAlreadySpent is returned when a CoinSpend references a nonce this
// replica has already recorded as spent.
var ErrNoteAlreadySpent = errors.New("mint: note already spent")

// ErrInvalidNoteSignature is returned when a note's signature does not
// verify under the federation's aggregate public key.
var ErrInvalidNoteSignature = errors.New("mint: invalid note signature")

// Module implements modules.FederationModule for e-cash issuance and
// redemption (spec §4.4.1). It is safe for concurrent ValidateInput /
// ValidateOutput / ApplyInput / ApplyOutput calls against independent
// transactions, matching the replica's per-transaction parallel apply
// model; BeginConsensusEpoch/EndConsensusEpoch run serially around a batch.
type Module struct {
	cfg Config
}

// New returns a Module backed by cfg.
func New(cfg Config) *Module {
	return &Module{cfg: cfg}
}

// ValidateInput checks every spent note's signature and that its nonce has
// not already been redeemed.
func (m *Module) ValidateInput(store kvstore.KVStore, in txn.CoinSpend) error {
	for _, note := range in.Notes {
		if _, found, err := store.GetValue(nonceKey(note.Nonce)); err != nil {
			return fmt.Errorf("mint: check nonce: %w", err)
		} else if found {
			return ErrNoteAlreadySpent
		}

		msg, err := noteMessage(note.Nonce, note.Amount)
		if err != nil {
			return err
		}
		sig, err := tbs.UnmarshalG1(note.Signature)
		if err != nil {
			return fmt.Errorf("mint: unmarshal note signature: %w", err)
		}
		ok, err := tbs.Verify(msg, sig, m.cfg.AggregatePK)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidNoteSignature
		}
	}
	return nil
}

// ValidateOutput checks that the requested blinded message is a
// well-formed curve point.
func (m *Module) ValidateOutput(store kvstore.KVStore, out txn.CoinIssuance) error {
	if _, err := tbs.UnmarshalG1(out.BlindedMessage); err != nil {
		return fmt.Errorf("mint: unmarshal blinded message: %w", err)
	}
	return nil
}

// ApplyInput marks every spent note's nonce as redeemed.
func (m *Module) ApplyInput(batch *kvstore.Batch, txHash [32]byte, inputIndex int, in txn.CoinSpend) error {
	for _, note := range in.Notes {
		batch.Put(nonceKey(note.Nonce), txHash[:])
	}
	return nil
}

// ApplyOutput blind-signs the requested issuance with this guardian's
// secret key share, stages the share for later combination, and returns it
// as the immediate outcome.
func (m *Module) ApplyOutput(batch *kvstore.Batch, txHash [32]byte, outputIndex int, out txn.CoinIssuance) (any, error) {
	bmsg, err := tbs.UnmarshalG1(out.BlindedMessage)
	if err != nil {
		return nil, fmt.Errorf("mint: unmarshal blinded message: %w", err)
	}
	share := tbs.SignBlinded(bmsg, m.cfg.SecretShare)
	shareBytes := tbs.MarshalG1(share)

	batch.Put(shareKey(txHash, outputIndex, m.cfg.GuardianIndex), shareBytes)
	batch.Put(localPendingKey(txHash, outputIndex), shareBytes)
	batch.Put(pendingKey(txHash, outputIndex), []byte{1})

	return IssuanceOutcome{LocalShare: share}, nil
}

// BeginConsensusEpoch records every guardian's SignatureShare ordered into
// this epoch's outcome, and clears this guardian's own pending-broadcast
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

// EndConsensusEpoch combines any pending issuance that has accumulated at
// least Threshold guardian shares into a finalized, still-blinded
// signature.
func (m *Module) EndConsensusEpoch(store kvstore.KVStore, rng io.Reader) (*kvstore.Batch, []SignatureShare, error) {
	batch := &kvstore.Batch{}

	entries, err := store.FindByPrefix(pendingPrefix())
	if err != nil {
		return nil, nil, fmt.Errorf("mint: scan pending issuances: %w", err)
	}

	for _, e := range entries {
		txHash, outputIndex, err := parsePendingKey(e.Key)
		if err != nil {
			return nil, nil, err
		}

		if _, found, err := store.GetValue(noteKey(txHash, outputIndex)); err != nil {
			return nil, nil, fmt.Errorf("mint: check finalized note: %w", err)
		} else if found {
			batch.Delete(e.Key)
			continue
		}

		shares, err := store.FindByPrefix(sharePrefix(txHash, outputIndex))
		if err != nil {
			return nil, nil, fmt.Errorf("mint: scan shares: %w", err)
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
				return nil, nil, fmt.Errorf("mint: unmarshal share: %w", err)
			}
			indexed = append(indexed, tbs.IndexedShare{Index: guardianIndex, Share: share})
		}

		combined, err := tbs.CombineValidShares(indexed, m.cfg.Threshold)
		if err != nil {
			return nil, nil, fmt.Errorf("mint: combine shares: %w", err)
		}

		batch.Put(noteKey(txHash, outputIndex), tbs.MarshalG1(combined))
		batch.Delete(e.Key)
	}

	return batch, nil, nil
}

// ConsensusProposal surfaces every locally pending share this guardian has
// produced but not yet seen ordered into an epoch.
func (m *Module) ConsensusProposal(store kvstore.KVStore) ([]SignatureShare, error) {
	entries, err := store.FindByPrefix([]byte(prefixLocal))
	if err != nil {
		return nil, fmt.Errorf("mint: scan local shares: %w", err)
	}

	items := make([]SignatureShare, 0, len(entries))
	for _, e := range entries {
		rest := e.Key[len(prefixLocal):]
		txHash, outputIndex, err := parsePendingKey(append([]byte(prefixPending), rest...))
		if err != nil {
			return nil, err
		}
		share, err := tbs.UnmarshalG1(e.Value)
		if err != nil {
			return nil, fmt.Errorf("mint: unmarshal local share: %w", err)
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

// OutputStatus reports this guardian's own share and, once combined, the
// finalized blinded signature for a mint output.
func (m *Module) OutputStatus(store kvstore.KVStore, txHash [32]byte, outputIndex int) (any, bool, error) {
	localBytes, found, err := store.GetValue(shareKey(txHash, outputIndex, m.cfg.GuardianIndex))
	if err != nil {
		return nil, false, fmt.Errorf("mint: read local share: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	localShare, err := tbs.UnmarshalG1(localBytes)
	if err != nil {
		return nil, false, fmt.Errorf("mint: unmarshal local share: %w", err)
	}
	outcome := IssuanceOutcome{LocalShare: localShare}

	if noteBytes, found, err := store.GetValue(noteKey(txHash, outputIndex)); err != nil {
		return nil, false, fmt.Errorf("mint: read note: %w", err)
	} else if found {
		combined, err := tbs.UnmarshalG1(noteBytes)
		if err != nil {
			return nil, false, fmt.Errorf("mint: unmarshal note: %w", err)
		}
		outcome.Combined = &combined
	}
	return outcome, true, nil
}
