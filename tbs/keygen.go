package tbs

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/tbsmint/fedcore/poly"
)

// DealerKeygen runs a trusted-dealer keygen for a (t,n) threshold scheme: a
// random degree-(t-1) polynomial is drawn over the scalar field, its value at
// x=0 is the secret, and shares are its evaluations at x=1..n (spec §6's
// index+1 convention).
//
// K1 holds by construction: interpolating any t of the returned
// PublicKeyShares at x=0 reconstructs AggregatePublicKey, since g2-scalar-mul
// is linear and interpolation is linear in the y-values.
func DealerKeygen(t, n int, rng io.Reader) (KeyShares, error) {
	if t <= 0 || n <= 0 || t > n {
		return KeyShares{}, fmt.Errorf("%w: t=%d n=%d", ErrInvalidThreshold, t, n)
	}

	f, err := poly.Random(Order, t-1, nil, rng)
	if err != nil {
		return KeyShares{}, fmt.Errorf("tbs: sampling dealer polynomial: %w", err)
	}

	_, _, _, g2Gen := bls12381.Generators()

	secretShares := make([]SecretKeyShare, n)
	pubShares := make([]PublicKeyShare, n)
	for i := 0; i < n; i++ {
		x := bigFromInt(i + 1)
		share := f.Evaluate(x)
		secretShares[i] = share
		pubShares[i] = g2ScalarMul(g2Gen, share)
	}

	aggPK := g2ScalarMul(g2Gen, f.Evaluate(bigFromInt(0)))

	return KeyShares{
		AggregatePublicKey: aggPK,
		PublicKeyShares:    pubShares,
		SecretKeyShares:    secretShares,
	}, nil
}

// AggregatePublicKeyShares reconstructs the AggregatePublicKey from any t of
// the (index, PublicKeyShare) pairs produced by DealerKeygen, exercising the
// same Lagrange-at-zero machinery used to combine signature shares. Used to
// validate K1 independently of DealerKeygen's internal computation.
func AggregatePublicKeyShares(shares []IndexedPublicKeyShare) (AggregatePublicKey, error) {
	points := make([]poly.Point[g2Elem], len(shares))
	for i, s := range shares {
		points[i] = poly.Point[g2Elem]{X: bigFromInt(s.Index + 1), Y: g2Elem{p: s.Share}}
	}
	result, err := poly.InterpolateZero(Order, points)
	if err != nil {
		return G2Point{}, translateInterpolationErr(err)
	}
	return result.p, nil
}

// IndexedPublicKeyShare pairs a zero-based share index with its PublicKeyShare.
type IndexedPublicKeyShare struct {
	Index int
	Share PublicKeyShare
}
