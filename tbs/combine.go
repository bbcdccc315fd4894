package tbs

import "github.com/tbsmint/fedcore/poly"

// CombineValidShares interpolates a BlindedSignature at x=0 from the first
// `threshold` entries of shares, using x-coordinate index+1 for each
// IndexedShare (spec §6). It performs no verification of the shares
// themselves — callers exposed to adversarial contributors must pre-screen
// with VerifyBlindShare. Combining fewer than the scheme's real threshold
// succeeds mechanically but yields a point unrelated to the secret; that is
// the caller's responsibility to avoid, not this function's to detect.
func CombineValidShares(shares []IndexedShare, threshold int) (BlindedSignature, error) {
	if len(shares) < threshold {
		return BlindedSignature{}, ErrInsufficientShares
	}

	points := make([]poly.Point[g1Elem], threshold)
	for i := 0; i < threshold; i++ {
		s := shares[i]
		points[i] = poly.Point[g1Elem]{X: bigFromInt(s.Index + 1), Y: g1Elem{p: s.Share}}
	}

	result, err := poly.InterpolateZero(Order, points)
	if err != nil {
		return BlindedSignature{}, translateInterpolationErr(err)
	}
	return result.p, nil
}
