package modules

import (
	"io"

	"github.com/tbsmint/fedcore/kvstore"
)

// FederationModule is the capability surface a federation module exposes to
// the consensus replica (spec.md §4.3). It is generic over:
//
//	Item - the module's own consensus item type (e.g. a threshold-signature
//	       share contribution), carried inside txn.ConsensusItem.ModulePayload
//	In   - the module's input payload type (e.g. a coin spend)
//	Out  - the module's output payload type (e.g. a coin issuance request)
//
// Every method is called with the KV store view appropriate to its point in
// the epoch: validation and ApplyInput/ApplyOutput see the store as of the
// start of the current batch; the epoch hooks see the store as committed at
// epoch boundaries. Implementations must not retain the store or batch
// across calls.
type FederationModule[Item, In, Out any] interface {
	// ValidateInput reports whether in is well-formed and currently spendable
	// against store. The replica pools only transactions whose inputs pass
	// this check at submission, and runs it again before applying one.
	ValidateInput(store kvstore.KVStore, in In) error

	// ValidateOutput reports whether out is well-formed. Output validation
	// never depends on consensus state beyond static configuration (e.g. the
	// module's public key), since outputs create new state rather than
	// consume it.
	ValidateOutput(store kvstore.KVStore, out Out) error

	// ApplyInput stages the state change that spends in, keyed by the owning
	// transaction's hash and the input's position within it. Called only for
	// inputs the conflict filter has not rejected as a double spend.
	ApplyInput(batch *kvstore.Batch, txHash [32]byte, inputIndex int, in In) error

	// ApplyOutput stages the state change that creates out, keyed by the
	// owning transaction's hash and the output's position within it, and
	// returns the immediate per-output outcome (e.g. a blind signature
	// share) to be exposed through OutputStatus.
	ApplyOutput(batch *kvstore.Batch, txHash [32]byte, outputIndex int, out Out) (any, error)

	// BeginConsensusEpoch runs before any input/output in this batch is
	// applied, given the full set of module-owned consensus items the
	// outcome carried (e.g. peer key shares agreed on this round). It may
	// stage setup writes for the upcoming batch.
	BeginConsensusEpoch(store kvstore.KVStore, items []Item) (*kvstore.Batch, error)

	// EndConsensusEpoch runs after every input/output in this batch has been
	// applied and committed. It may stage closing writes (e.g. combining
	// threshold shares collected this epoch) and propose Items for the next
	// round's outcome.
	EndConsensusEpoch(store kvstore.KVStore, rng io.Reader) (*kvstore.Batch, []Item, error)

	// ConsensusProposal returns the module-owned items this peer wants
	// included in the next consensus round (spec §4.3's "each module
	// contributes its own consensus items").
	ConsensusProposal(store kvstore.KVStore) ([]Item, error)

	// OutputStatus reports the outcome previously recorded for txHash's
	// outputIndex-th output, if any.
	OutputStatus(store kvstore.KVStore, txHash [32]byte, outputIndex int) (outcome any, found bool, err error)
}
