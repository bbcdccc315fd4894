package txn

import (
	"crypto/sha256"
	"fmt"

	"github.com/tbsmint/fedcore/kvstore"
)

// fingerprint is the canonically-encoded (Inputs, Outputs) pair, excluding
// the signature: the transaction is identified by what it moves, not by who
// authorized it (spec §3, invariant "a transaction's hash is independent of
// its signature").
type fingerprint struct {
	Inputs  []Input
	Outputs []Output
}

// TxHash computes the transaction's canonical identity: the SHA-256 digest
// of its canonically CBOR-encoded inputs and outputs. Two transactions with
// the same funding structure but different signatures hash identically.
func (t Transaction) TxHash() ([32]byte, error) {
	b, err := kvstore.Encode(fingerprint{Inputs: t.Inputs, Outputs: t.Outputs})
	if err != nil {
		return [32]byte{}, fmt.Errorf("txn: encode fingerprint: %w", err)
	}
	return sha256.Sum256(b), nil
}
