package poly

import (
	"errors"
	"math/big"
)

// ErrDegenerateInterpolation is returned when two supplied x-coordinates
// coincide, or any x-coordinate is zero (the x=0 slot is reserved for the
// secret being reconstructed).
var ErrDegenerateInterpolation = errors.New("poly: degenerate interpolation (zero or repeated x-coordinate)")

// InterpolateZero reconstructs f(0) = sum_i y_i * L_i(0) from a set of
// (x_i, y_i) points on an unknown polynomial f, where
//
//	L_i(0) = prod_{j != i} x_j * (x_j - x_i)^-1   (mod modulus)
//
// All x-coordinates must be distinct and nonzero. It is the caller's
// responsibility to supply at least `threshold` points; combining fewer
// yields a value unrelated to the secret — see package tbs's
// CombineValidShares contract.
func InterpolateZero[V Element[V]](modulus *big.Int, points []Point[V]) (V, error) {
	var zero V

	if err := checkDistinctNonzero(modulus, points); err != nil {
		return zero, err
	}

	coeffs, err := lagrangeCoefficientsAtZero(modulus, points)
	if err != nil {
		return zero, err
	}

	acc := points[0].Y.ScalarMul(coeffs[0])
	for i := 1; i < len(points); i++ {
		acc = acc.Add(points[i].Y.ScalarMul(coeffs[i]))
	}
	return acc, nil
}

func checkDistinctNonzero[V any](modulus *big.Int, points []Point[V]) error {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		x := new(big.Int).Mod(p.X, modulus)
		if x.Sign() == 0 {
			return ErrDegenerateInterpolation
		}
		key := x.String()
		if _, ok := seen[key]; ok {
			return ErrDegenerateInterpolation
		}
		seen[key] = struct{}{}
	}
	return nil
}

// lagrangeCoefficientsAtZero computes L_i(0) for each point, mod modulus.
func lagrangeCoefficientsAtZero[V any](modulus *big.Int, points []Point[V]) ([]*big.Int, error) {
	n := len(points)
	coeffs := make([]*big.Int, n)

	for i := 0; i < n; i++ {
		xi := new(big.Int).Mod(points[i].X, modulus)

		num := big.NewInt(1)
		den := big.NewInt(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			xj := new(big.Int).Mod(points[j].X, modulus)

			num.Mul(num, xj)
			num.Mod(num, modulus)

			diff := new(big.Int).Sub(xj, xi)
			diff.Mod(diff, modulus)
			den.Mul(den, diff)
			den.Mod(den, modulus)
		}

		denInv := new(big.Int).ModInverse(den, modulus)
		if denInv == nil {
			return nil, ErrDegenerateInterpolation
		}
		c := new(big.Int).Mul(num, denInv)
		c.Mod(c, modulus)
		coeffs[i] = c
	}

	return coeffs, nil
}
