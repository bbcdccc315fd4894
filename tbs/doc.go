/*
Package tbs implements a (t,n)-threshold blind BLS-style signature scheme over
the BLS12-381 pairing-friendly curve.

A trusted dealer splits a secret key into n shares such that any t of them can
jointly produce a signature indistinguishable from one made by the aggregate
key, while fewer than t shares reveal nothing about it. Messages are blinded
before signing so that signers never see the plaintext message they sign over;
the requester undoes the blinding afterwards to recover a signature that
verifies directly under the aggregate public key.

Signatures and messages live on G1; public keys live on G2; the pairing
e: G1 x G2 -> GT binds them together:

	e(msg, aggregatePK) == e(sig, G2Generator)

Key shares and blinded signature shares are combined via Lagrange
interpolation at x=0 (see package poly), using the convention that share
index i (0-based) sits at x-coordinate i+1 — the x=0 slot is reserved for the
secret itself.

Usage:

	keys, _ := tbs.DealerKeygen(5, 15, rand.Reader)
	msg, _ := tbs.FromBytes([]byte("Hello World!"))
	bk, bmsg, _ := tbs.BlindMessage(msg, rand.Reader)

	shares := make([]tbs.IndexedShare, 5)
	for i := 0; i < 5; i++ {
	    shares[i] = tbs.IndexedShare{Index: i, Share: tbs.SignBlinded(bmsg, keys.SecretKeyShares[i])}
	}
	bsig, _ := tbs.CombineValidShares(shares, 5)
	sig := tbs.Unblind(bk, bsig)
	ok, _ := tbs.Verify(msg, sig, keys.AggregatePublicKey) // ok == true
*/
package tbs
