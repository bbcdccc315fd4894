/*
Package rng provides the replica's RNG factory (spec.md §9 "RNG injection"):
a fresh io.Reader per call, backed by crypto/rand in production — matching
the teacher's bbs/utils.go use of a cryptographically secure source for
share and blinding-key generation — or by a seeded deterministic stream in
tests, so that process_consensus_outcome's module hooks produce
bit-identical DB batches across runs (spec.md §4.4.3's determinism
requirement).

No third-party deterministic CSPRNG appears anywhere in the example corpus,
so this package stays on the standard library (crypto/rand, math/rand/v2)
rather than reaching for one; see DESIGN.md.
*/
package rng
