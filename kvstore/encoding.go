package kvstore

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var encMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("kvstore: building canonical cbor mode: %v", err))
	}
	return mode
}()

// Encode produces the canonical, deterministic byte encoding of v: the same
// value always serializes to the same bytes, as spec §6 requires for both
// keys and values.
func Encode(v interface{}) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("kvstore: encode: %w", err)
	}
	return b, nil
}

// Decode parses bytes produced by Encode into v.
func Decode(data []byte, v interface{}) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("kvstore: decode: %w", err)
	}
	return nil
}

// Key prefixes distinguish the key namespaces the replica writes into.
const (
	prefixProposedTx = "ptx:"
	prefixAcceptedTx = "atx:"
)

// ProposedTransactionKey builds the pending-pool key for a transaction hash
// (spec §3).
func ProposedTransactionKey(txHash [32]byte) []byte {
	return append([]byte(prefixProposedTx), txHash[:]...)
}

// AcceptedTransactionKey builds the accepted-transaction key for a
// transaction hash (spec §3).
func AcceptedTransactionKey(txHash [32]byte) []byte {
	return append([]byte(prefixAcceptedTx), txHash[:]...)
}

// ProposedTransactionPrefix is the scan prefix for every pending transaction
// (spec §4.4.2).
func ProposedTransactionPrefix() []byte {
	return []byte(prefixProposedTx)
}
