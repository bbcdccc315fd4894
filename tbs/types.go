package tbs

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1Point is an affine point on BLS12-381's G1, compressed to 48 bytes.
type G1Point = bls12381.G1Affine

// G2Point is an affine point on BLS12-381's G2, compressed to 96 bytes.
type G2Point = bls12381.G2Affine

// Scalar is a field element of the BLS12-381 scalar field.
type Scalar = *big.Int

// Message is a curve point obtained by hashing a byte string or a
// pre-digested hash onto G1 (see FromBytes / FromHash).
type Message = G1Point

// SecretKeyShare is the evaluation of the dealer's secret polynomial at a
// given share index.
type SecretKeyShare = Scalar

// PublicKeyShare is the G2 image of a SecretKeyShare under the generator.
type PublicKeyShare = G2Point

// AggregatePublicKey is the G2 image of the dealer's secret (the
// polynomial's value at x=0).
type AggregatePublicKey = G2Point

// BlindingKey is the nonzero scalar used to mask a Message before signing.
type BlindingKey = Scalar

// BlindedMessage is a Message multiplied by a BlindingKey.
type BlindedMessage = G1Point

// BlindedSignatureShare is a single guardian's contribution toward a
// BlindedSignature: BlindedMessage * SecretKeyShare.
type BlindedSignatureShare = G1Point

// BlindedSignature is the Lagrange-at-zero combination of >= t
// BlindedSignatureShares.
type BlindedSignature = G1Point

// Signature is an unblinded BlindedSignature, verifiable under an
// AggregatePublicKey.
type Signature = G1Point

// IndexedShare pairs a zero-based share index with its value, the external
// wire format producers use for (index, share) pairs (spec §6).
type IndexedShare struct {
	Index int
	Share G1Point
}

// KeyShares is the output of DealerKeygen: one entry per party, in index order.
type KeyShares struct {
	AggregatePublicKey AggregatePublicKey
	PublicKeyShares    []PublicKeyShare
	SecretKeyShares    []SecretKeyShare
}
