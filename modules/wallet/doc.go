/*
Package wallet implements the Wallet federation module (spec.md §4.4.4):
peg-in deposits are claimed by Bitcoin outpoint (ValidateInput checks only
that proof bytes are present, not a merkle path), and peg-out withdrawals
are attested one by one and then batched per epoch into a wire.MsgTx.

Attestation reuses the tbs threshold-signing machinery from package mint
rather than standing up a second signature scheme or a dedicated
wallet-key DKG (both out of scope per spec.md's Non-goals): each guardian
signs every withdrawal's payout fingerprint (owning transaction hash, output
index, destination script, amount) with its mint-key share, and once
Threshold shares for that withdrawal are ordered the combined signature is
the federation's attestation of it. Every withdrawal attested in an epoch
is then folded into one wire.MsgTx of payouts. Broadcasting the resulting
transaction to the Bitcoin network, and watching for confirmations, are
external collaborators this module does not implement (spec.md §1).
*/
package wallet
