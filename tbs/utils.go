package tbs

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/tbsmint/fedcore/poly"
)

func bigFromInt(i int) *big.Int {
	return big.NewInt(int64(i))
}

// randomNonzeroScalar draws a uniform nonzero scalar, retrying on zero as
// required for BlindingKey (spec §4.2 "Randomness").
func randomNonzeroScalar(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	for {
		p, err := poly.Random(Order, 0, nil, rng)
		if err != nil {
			return nil, fmt.Errorf("tbs: sampling scalar: %w", err)
		}
		k := p.Coefficients[0]
		if k.Sign() != 0 {
			return k, nil
		}
	}
}

func translateInterpolationErr(err error) error {
	if errors.Is(err, poly.ErrDegenerateInterpolation) {
		return ErrDegenerateInterpolation
	}
	return err
}
