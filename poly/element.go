package poly

import "math/big"

// Element is the minimal algebraic capability a Lagrange-interpolation
// codomain must support: addition and scalar multiplication, both closed
// over V. Scalars and curve points (G1, G2) all implement it.
type Element[V any] interface {
	Add(other V) V
	ScalarMul(k *big.Int) V
}

// Point is one (x, y) evaluation point supplied to InterpolateZero.
type Point[V any] struct {
	X *big.Int
	Y V
}
