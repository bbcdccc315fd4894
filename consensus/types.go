package consensus

import (
	"github.com/google/uuid"
	"github.com/tbsmint/fedcore/txn"
)

// PeerID identifies a federation peer contributing to a consensus outcome.
type PeerID = uuid.UUID

// ConsensusOutcome is the BFT outcome the replica consumes (spec §6): a
// totally-ordered epoch number and, per peer, the ordered sequence of
// ConsensusItems that peer contributed.
type ConsensusOutcome struct {
	Epoch         uint64
	Contributions map[PeerID][]txn.ConsensusItem
}

// TransactionState is the coarse lifecycle stage transaction_status reports
// (spec §4.4.5).
type TransactionState int

const (
	StateAbsent TransactionState = iota
	StateAwaitingConsensus
	StateAccepted
)

func (s TransactionState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateAwaitingConsensus:
		return "awaiting_consensus"
	case StateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// OutputStatusEntry pairs an output's position in its transaction with the
// owning module's outcome for it.
type OutputStatusEntry struct {
	Index   int
	Outcome any
}

// TransactionStatusResult is the result of TransactionStatus.
type TransactionStatusResult struct {
	State   TransactionState
	Epoch   uint64
	Outputs []OutputStatusEntry
}

// acceptedRecord is the value stored under kvstore.AcceptedTransactionKey.
type acceptedRecord struct {
	Epoch uint64
	Tx    txn.Transaction
}
