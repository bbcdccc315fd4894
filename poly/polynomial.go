package poly

import (
	"io"
	"math/big"
)

// Polynomial is a scalar-coefficient polynomial a0 + a1*x + ... + ad*x^d,
// reduced modulo Modulus. Coefficients are stored lowest-degree first.
type Polynomial struct {
	Modulus      *big.Int
	Coefficients []*big.Int
}

// Random draws a uniform Polynomial of the given degree, with the constant
// term fixed to secret if non-nil, or drawn uniformly if secret is nil (as
// tbs.DealerKeygen does, so the dealer's secret a0 is itself random).
func Random(modulus *big.Int, degree int, secret *big.Int, rng io.Reader) (*Polynomial, error) {
	coeffs := make([]*big.Int, degree+1)
	for i := range coeffs {
		c, err := randScalar(modulus, rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	if secret != nil {
		coeffs[0] = new(big.Int).Mod(secret, modulus)
	}
	return &Polynomial{Modulus: modulus, Coefficients: coeffs}, nil
}

// randScalar draws a uniform value in [0, modulus) via rejection sampling:
// draw exactly ceil(bitLen/8) bytes, mask the top byte down to bitLen bits,
// and retry on the (at most roughly 50%, for a non-power-of-two modulus)
// chance the masked value still lands above modulus.
func randScalar(modulus *big.Int, rng io.Reader) (*big.Int, error) {
	byteLen := (modulus.BitLen() + 7) / 8
	bits := modulus.BitLen() % 8
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte((1 << bits) - 1)
	}
	buf := make([]byte, byteLen)
	result := new(big.Int)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		result.SetBytes(buf)
		if result.Cmp(modulus) < 0 {
			return result, nil
		}
	}
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate computes p(x) mod Modulus using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := new(big.Int)
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
		result.Mod(result, p.Modulus)
	}
	if result.Sign() < 0 {
		result.Add(result, p.Modulus)
	}
	return result
}
