/*
Package modules declares the capability interface a federation module
implements to plug into the consensus replica (spec.md §4.3): input/output
validation and application against the KV store, and the epoch hooks that
bookend every batch of consensus outcomes.

modules/mint and modules/wallet are the two concrete modules this
federation ships; package consensus holds one of each and dispatches to
whichever a ConsensusItem or Input/Output belongs to.
*/
package modules
