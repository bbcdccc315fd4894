package consensus

import (
	"fmt"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/txn"
)

// GetConsensusProposal returns this replica's contribution to the next
// consensus round: every pooled transaction, then the wallet module's
// items, then the mint module's items (spec §4.4.2's fixed cross-source
// order).
func (r *Replica) GetConsensusProposal() ([]txn.ConsensusItem, error) {
	entries, err := r.store.FindByPrefix(kvstore.ProposedTransactionPrefix())
	if err != nil {
		return nil, fmt.Errorf("consensus: %w: %v", kvstore.ErrStorage, err)
	}

	items := make([]txn.ConsensusItem, 0, len(entries))
	for _, e := range entries {
		var tx txn.Transaction
		if err := kvstore.Decode(e.Value, &tx); err != nil {
			return nil, fmt.Errorf("consensus: decode pooled transaction: %w", err)
		}
		items = append(items, txn.ConsensusItem{Kind: txn.ItemKindTransaction, Transaction: &tx})
	}

	walletItems, err := r.wallet.ConsensusProposal(r.store)
	if err != nil {
		return nil, fmt.Errorf("consensus: wallet consensus proposal: %w", err)
	}
	for _, wi := range walletItems {
		payload, err := kvstore.Encode(wi)
		if err != nil {
			return nil, fmt.Errorf("consensus: encode wallet item: %w", err)
		}
		items = append(items, txn.ConsensusItem{Kind: txn.ItemKindWallet, ModulePayload: payload})
	}

	mintItems, err := r.mint.ConsensusProposal(r.store)
	if err != nil {
		return nil, fmt.Errorf("consensus: mint consensus proposal: %w", err)
	}
	for _, mi := range mintItems {
		payload, err := kvstore.Encode(mi)
		if err != nil {
			return nil, fmt.Errorf("consensus: encode mint item: %w", err)
		}
		items = append(items, txn.ConsensusItem{Kind: txn.ItemKindMint, ModulePayload: payload})
	}

	return items, nil
}
