package tbs

import (
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BlindMessage draws a fresh nonzero BlindingKey and returns the resulting
// BlindedMessage = msg * blindingKey.
func BlindMessage(msg Message, rng io.Reader) (BlindingKey, BlindedMessage, error) {
	bk, err := randomNonzeroScalar(rng)
	if err != nil {
		return nil, BlindedMessage{}, err
	}
	return bk, g1ScalarMul(msg, bk), nil
}

// SignBlinded computes one guardian's contribution to a threshold signature
// over a blinded message: bmsg * secretShare.
func SignBlinded(bmsg BlindedMessage, sks SecretKeyShare) BlindedSignatureShare {
	return g1ScalarMul(bmsg, sks)
}

// Unblind removes a BlindingKey from a combined BlindedSignature, yielding a
// Signature verifiable directly under the AggregatePublicKey.
func Unblind(bk BlindingKey, bsig BlindedSignature) Signature {
	inv := new(big.Int).ModInverse(bk, Order)
	return g1ScalarMul(bsig, inv)
}

// Verify checks the pairing equality e(msg, aggPK) == e(sig, G2Generator)
// (spec invariant K2).
func Verify(msg Message, sig Signature, aggPK AggregatePublicKey) (bool, error) {
	_, _, _, g2Gen := bls12381.Generators()
	return pairingEqual(msg, aggPK, sig, g2Gen)
}

// VerifyBlindShare checks that a BlindedSignatureShare was produced honestly
// by a given PublicKeyShare over a given BlindedMessage: e(bmsg, pks) ==
// e(share, G2Generator). Callers accepting adversarial shares must call this
// before CombineValidShares, which does not itself verify.
func VerifyBlindShare(bmsg BlindedMessage, share BlindedSignatureShare, pks PublicKeyShare) (bool, error) {
	_, _, _, g2Gen := bls12381.Generators()
	return pairingEqual(bmsg, pks, share, g2Gen)
}

// pairingEqual checks e(a, A) == e(b, B) via e(a,A) * e(-b,B) == 1.
func pairingEqual(a G1Point, A G2Point, b G1Point, B G2Point) (bool, error) {
	negB := g1Neg(b)
	res, err := bls12381.Pair([]bls12381.G1Affine{a, negB}, []bls12381.G2Affine{A, B})
	if err != nil {
		return false, fmt.Errorf("tbs: pairing: %w", err)
	}
	return res.IsOne(), nil
}
