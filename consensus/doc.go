/*
Package consensus implements the Replica (spec.md §4.4): the component
that accepts client transactions, proposes them into BFT rounds, applies
ordered outcomes against the Mint and Wallet federation modules, and
answers status queries.

The replica never inspects a module's internals; it dispatches through the
modules.FederationModule capability surface uniformly for both Mint and
Wallet, per spec.md §4.3.
*/
package consensus
