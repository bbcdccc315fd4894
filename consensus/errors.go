package consensus

import "errors"

// Error kinds (spec §7). CryptoDegenerate surfaces as whatever package tbs
// or poly returned; it is wrapped, not replaced.
var (
	// ErrTransactionMalformed covers funding imbalance and a signature
	// that does not verify.
	ErrTransactionMalformed = errors.New("consensus: transaction malformed")

	// ErrModuleInputInvalid wraps a module's own validate_input failure.
	ErrModuleInputInvalid = errors.New("consensus: module input invalid")

	// ErrModuleOutputInvalid wraps a module's own validate_output failure.
	ErrModuleOutputInvalid = errors.New("consensus: module output invalid")

	// ErrInconsistency marks an invariant violation. An accepted transaction
	// missing an output_status aborts the replica through the logger's Fatal
	// level; a module error while reading an output_status is returned to
	// the caller wrapped in ErrInconsistency.
	ErrInconsistency = errors.New("consensus: invariant violation")
)
