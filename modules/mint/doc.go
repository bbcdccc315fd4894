/*
Package mint implements the Mint federation module (spec.md §4.4.1): notes
are blind-signed e-cash backed by a threshold BLS signature (package tbs).

This replica holds exactly one guardian's secret key share. Issuing a note
is a three-step protocol spread across consensus epochs:

 1. ApplyOutput blind-signs the client's blinded message with this
    guardian's share and stages it as a pending local share.
 2. ConsensusProposal surfaces pending local shares as SignatureShare items;
    once a BFT outcome orders them, BeginConsensusEpoch records every
    guardian's contribution (including peers') for the epoch.
 3. EndConsensusEpoch combines any (transaction, output) with at least
    Threshold shares into a finalized BlindedSignature, which the client
    unblinds locally — the mint never sees or needs the blinding key.

Spent notes are tracked by nonce so a note can be redeemed at most once
(spec invariant P8); the consensus replica's conflict filter catches
same-epoch double spends, and ValidateInput catches spends of
already-finalized nonces from earlier epochs.
*/
package mint
