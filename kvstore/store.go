package kvstore

import "errors"

// ErrStorage wraps any failure from the underlying engine. The replica
// treats it as fatal inside ProcessConsensusOutcome; SubmitTransaction,
// GetConsensusProposal and TransactionStatus return it to their caller
// wrapped in an error instead of aborting.
var ErrStorage = errors.New("kvstore: storage failure")

// Entry is one (key, value) pair as returned by FindByPrefix.
type Entry struct {
	Key   []byte
	Value []byte
}

// KVStore is the ordered key-value contract spec.md §6 requires: typed via a
// key-type -> value-type mapping at the call site, with canonical
// deterministic encoding (Encode for values, the key-builder functions such
// as ProposedTransactionKey for keys) so the same logical (key, value) always
// produces the same bytes.
type KVStore interface {
	// InsertEntry writes value under key, returning the previous value if
	// one existed.
	InsertEntry(key, value []byte) (prev []byte, found bool, err error)
	// GetValue reads the value stored under key.
	GetValue(key []byte) (value []byte, found bool, err error)
	// FindByPrefix returns every entry whose key starts with prefix, in key
	// order.
	FindByPrefix(prefix []byte) ([]Entry, error)
	// ApplyBatch commits every operation in b atomically: all or nothing.
	ApplyBatch(b *Batch) error
}

// opKind distinguishes a Batch entry's operation.
type opKind int

const (
	opPut opKind = iota
	opDelete
)

type batchOp struct {
	kind  opKind
	key   []byte
	value []byte
}

// Batch accumulates writes for one atomic ApplyBatch call. The zero value is
// ready to use.
type Batch struct {
	ops []batchOp
}

// Put stages an insert/overwrite of key -> value.
func (b *Batch) Put(key, value []byte) {
	b.ops = append(b.ops, batchOp{kind: opPut, key: key, value: value})
}

// Delete stages a removal of key.
func (b *Batch) Delete(key []byte) {
	b.ops = append(b.ops, batchOp{kind: opDelete, key: key})
}

// Len reports the number of staged operations.
func (b *Batch) Len() int { return len(b.ops) }

// Merge appends other's operations onto b, preserving order. Used by the
// replica to fold many per-transaction batches into one commit (spec
// §4.4.3 step 5).
func (b *Batch) Merge(other *Batch) {
	b.ops = append(b.ops, other.ops...)
}
