package consensus

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/modules/mint"
	"github.com/tbsmint/fedcore/modules/wallet"
	"github.com/tbsmint/fedcore/txn"
)

// ProcessConsensusOutcome applies one ordered BFT outcome (spec §4.4.3).
// Storage and inconsistency failures abort the replica via the logger's
// Fatal level, matching spec §7's "the replica cannot make progress"
// policy; per-transaction apply failures are logged and swallowed.
//
// Go maps do not iterate in a stable order, so contributions are processed
// peer-by-peer in ascending PeerID order: a canonical, reproducible
// cross-peer order the outcome format itself does not specify but the
// determinism requirement of §4.4.3 demands.
func (r *Replica) ProcessConsensusOutcome(outcome ConsensusOutcome) error {
	peers := make([]PeerID, 0, len(outcome.Contributions))
	for p := range outcome.Contributions {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].String() < peers[j].String() })

	txItems, walletItems, mintItems := r.unzipContributions(peers, outcome.Contributions)

	if err := r.beginEpoch(walletItems, mintItems); err != nil {
		r.log.Fatalf("consensus: begin_consensus_epoch: %v", err)
	}

	kept := filterConflicts(txItems)

	batches := make([]*kvstore.Batch, len(kept))
	var g errgroup.Group
	for i, tx := range kept {
		i, tx := i, tx
		g.Go(func() error {
			batches[i] = r.applyOne(outcome.Epoch, tx)
			return nil
		})
	}
	_ = g.Wait()

	commitBatch := &kvstore.Batch{}
	for _, b := range batches {
		commitBatch.Merge(b)
	}
	if err := r.store.ApplyBatch(commitBatch); err != nil {
		r.log.Fatalf("consensus: %v: %v", kvstore.ErrStorage, err)
	}

	if err := r.endEpoch(); err != nil {
		r.log.Fatalf("consensus: end_consensus_epoch: %v", err)
	}

	return nil
}

func (r *Replica) unzipContributions(peers []PeerID, contributions map[PeerID][]txn.ConsensusItem) ([]*txn.Transaction, []wallet.SignatureShare, []mint.SignatureShare) {
	var txItems []*txn.Transaction
	var walletItems []wallet.SignatureShare
	var mintItems []mint.SignatureShare

	for _, p := range peers {
		for _, item := range contributions[p] {
			switch item.Kind {
			case txn.ItemKindTransaction:
				if item.Transaction != nil {
					txItems = append(txItems, item.Transaction)
				}
			case txn.ItemKindWallet:
				var wi wallet.SignatureShare
				if err := kvstore.Decode(item.ModulePayload, &wi); err != nil {
					r.log.Fatalf("consensus: corrupt wallet consensus item from peer %s: %v", p, err)
				}
				walletItems = append(walletItems, wi)
			case txn.ItemKindMint:
				var mi mint.SignatureShare
				if err := kvstore.Decode(item.ModulePayload, &mi); err != nil {
					r.log.Fatalf("consensus: corrupt mint consensus item from peer %s: %v", p, err)
				}
				mintItems = append(mintItems, mi)
			}
		}
	}
	return txItems, walletItems, mintItems
}

func (r *Replica) beginEpoch(walletItems []wallet.SignatureShare, mintItems []mint.SignatureShare) error {
	batch := &kvstore.Batch{}
	wBatch, err := r.wallet.BeginConsensusEpoch(r.store, walletItems)
	if err != nil {
		return err
	}
	batch.Merge(wBatch)

	mBatch, err := r.mint.BeginConsensusEpoch(r.store, mintItems)
	if err != nil {
		return err
	}
	batch.Merge(mBatch)

	return r.store.ApplyBatch(batch)
}

func (r *Replica) endEpoch() error {
	batch := &kvstore.Batch{}
	wBatch, _, err := r.wallet.EndConsensusEpoch(r.store, r.rngs.New())
	if err != nil {
		return err
	}
	batch.Merge(wBatch)

	mBatch, _, err := r.mint.EndConsensusEpoch(r.store, r.rngs.New())
	if err != nil {
		return err
	}
	batch.Merge(mBatch)

	return r.store.ApplyBatch(batch)
}
