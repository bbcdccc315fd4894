/*
Package kvstore defines the ordered key-value store contract the consensus
replica is built against (spec.md §6), plus the canonical, deterministic
byte encoding used for keys and values, and a MemStore reference
implementation.

The real persistence engine is an external collaborator (spec.md §1): a
production deployment would back KVStore with an embedded engine (bbolt,
badger, pebble, ...). MemStore exists only so the replica and its tests have
something concrete to run against; it is deliberately minimal and
stdlib-only — see DESIGN.md for why no third-party engine is wired here.
*/
package kvstore
