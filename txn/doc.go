/*
Package txn defines the client transaction format the consensus replica
sequences (spec.md §3): an ordered list of Inputs (Coins or PegIn) and
Outputs (Coins or PegOut), bound together by a signature over the
transaction's canonical fingerprint, plus the ConsensusItem tagged union that
flows through BFT outcomes.

Module-specific payloads (coin notes, peg proofs, withdraw requests) are
carried as plain data here; the modules that own their semantics
(modules/mint, modules/wallet) interpret and validate them. This keeps txn
free of a dependency on either module package, avoiding an import cycle with
package consensus, which wires both together.
*/
package txn
