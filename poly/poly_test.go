package poly

import (
	"math/big"
	"testing"
)

var smallModulus = big.NewInt(97) // prime, small enough for hand-checked arithmetic

func TestPolynomialEvaluateConstant(t *testing.T) {
	p := &Polynomial{Modulus: smallModulus, Coefficients: []*big.Int{big.NewInt(5)}}
	for _, x := range []int64{0, 1, 42, 96} {
		got := p.Evaluate(big.NewInt(x))
		if got.Cmp(big.NewInt(5)) != 0 {
			t.Fatalf("constant polynomial at x=%d: got %v, want 5", x, got)
		}
	}
}

func TestPolynomialEvaluateKnownDegreeTwo(t *testing.T) {
	// f(x) = 3 + 2x + 7x^2 over mod 97
	p := &Polynomial{Modulus: smallModulus, Coefficients: []*big.Int{big.NewInt(3), big.NewInt(2), big.NewInt(7)}}
	cases := []struct {
		x, want int64
	}{
		{0, 3},
		{1, 12},                     // 3 + 2 + 7 = 12
		{2, 3 + 4 + 28},              // 35
		{3, (3 + 6 + 63) % 97},       // 72
	}
	for _, c := range cases {
		got := p.Evaluate(big.NewInt(c.x))
		want := new(big.Int).Mod(big.NewInt(c.want), smallModulus)
		if got.Cmp(want) != 0 {
			t.Fatalf("f(%d): got %v, want %v", c.x, got, want)
		}
	}
}

func TestPolynomialDegree(t *testing.T) {
	p := &Polynomial{Modulus: smallModulus, Coefficients: []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}}
	if got := p.Degree(); got != 2 {
		t.Fatalf("Degree(): got %d, want 2", got)
	}
}

func TestRandomFixesSecretAtConstantTerm(t *testing.T) {
	secret := big.NewInt(41)
	p, err := Random(smallModulus, 4, secret, &deterministicReader{seed: 7})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if p.Degree() != 4 {
		t.Fatalf("Degree(): got %d, want 4", p.Degree())
	}
	if p.Coefficients[0].Cmp(secret) != 0 {
		t.Fatalf("constant term: got %v, want %v", p.Coefficients[0], secret)
	}
	if got := p.Evaluate(big.NewInt(0)); got.Cmp(secret) != 0 {
		t.Fatalf("p(0): got %v, want %v", got, secret)
	}
}

func TestRandomDrawsConstantTermWhenSecretNil(t *testing.T) {
	p, err := Random(smallModulus, 2, nil, &deterministicReader{seed: 3})
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	if len(p.Coefficients) != 3 {
		t.Fatalf("Coefficients: got %d entries, want 3", len(p.Coefficients))
	}
	for _, c := range p.Coefficients {
		if c.Sign() < 0 || c.Cmp(smallModulus) >= 0 {
			t.Fatalf("coefficient %v out of range [0, %v)", c, smallModulus)
		}
	}
}

// scalarTestElem is a minimal Element[scalarTestElem] over smallModulus,
// standing in for tbs's scalarElem/g1Elem/g2Elem wrappers without pulling in
// curve arithmetic.
type scalarTestElem struct{ v *big.Int }

func (s scalarTestElem) Add(o scalarTestElem) scalarTestElem {
	r := new(big.Int).Add(s.v, o.v)
	r.Mod(r, smallModulus)
	return scalarTestElem{v: r}
}

func (s scalarTestElem) ScalarMul(k *big.Int) scalarTestElem {
	r := new(big.Int).Mul(s.v, k)
	r.Mod(r, smallModulus)
	return scalarTestElem{v: r}
}

func TestInterpolateZeroReconstructsSecret(t *testing.T) {
	secret := big.NewInt(61)
	p, err := Random(smallModulus, 2, secret, &deterministicReader{seed: 11}) // degree 2, threshold 3
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	points := make([]Point[scalarTestElem], 3)
	for i := 0; i < 3; i++ {
		x := big.NewInt(int64(i + 1))
		points[i] = Point[scalarTestElem]{X: x, Y: scalarTestElem{v: p.Evaluate(x)}}
	}

	got, err := InterpolateZero(smallModulus, points)
	if err != nil {
		t.Fatalf("InterpolateZero: %v", err)
	}
	if got.v.Cmp(secret) != 0 {
		t.Fatalf("reconstructed secret: got %v, want %v", got.v, secret)
	}
}

func TestInterpolateZeroAnySubsetOfThresholdAgrees(t *testing.T) {
	secret := big.NewInt(18)
	p, err := Random(smallModulus, 3, secret, &deterministicReader{seed: 22}) // degree 3, threshold 4
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	allPoints := make([]Point[scalarTestElem], 6)
	for i := 0; i < 6; i++ {
		x := big.NewInt(int64(i + 1))
		allPoints[i] = Point[scalarTestElem]{X: x, Y: scalarTestElem{v: p.Evaluate(x)}}
	}

	subsetA := allPoints[0:4]
	subsetB := allPoints[2:6]

	gotA, err := InterpolateZero(smallModulus, subsetA)
	if err != nil {
		t.Fatalf("InterpolateZero(subsetA): %v", err)
	}
	gotB, err := InterpolateZero(smallModulus, subsetB)
	if err != nil {
		t.Fatalf("InterpolateZero(subsetB): %v", err)
	}
	if gotA.v.Cmp(secret) != 0 {
		t.Fatalf("subsetA reconstructed: got %v, want %v", gotA.v, secret)
	}
	if gotB.v.Cmp(secret) != 0 {
		t.Fatalf("subsetB reconstructed: got %v, want %v", gotB.v, secret)
	}
}

func TestInterpolateZeroRejectsZeroXCoordinate(t *testing.T) {
	points := []Point[scalarTestElem]{
		{X: big.NewInt(0), Y: scalarTestElem{v: big.NewInt(1)}},
		{X: big.NewInt(1), Y: scalarTestElem{v: big.NewInt(2)}},
	}
	_, err := InterpolateZero(smallModulus, points)
	if err != ErrDegenerateInterpolation {
		t.Fatalf("expected ErrDegenerateInterpolation, got %v", err)
	}
}

func TestInterpolateZeroRejectsRepeatedXCoordinate(t *testing.T) {
	points := []Point[scalarTestElem]{
		{X: big.NewInt(3), Y: scalarTestElem{v: big.NewInt(1)}},
		{X: big.NewInt(3), Y: scalarTestElem{v: big.NewInt(2)}},
	}
	_, err := InterpolateZero(smallModulus, points)
	if err != ErrDegenerateInterpolation {
		t.Fatalf("expected ErrDegenerateInterpolation, got %v", err)
	}
}

// deterministicReader is a tiny non-cryptographic io.Reader for test
// reproducibility; Random only needs uniform-looking bytes, not real entropy.
// Each Read advances an internal counter so repeated calls (as randScalar's
// rejection loop makes on a reject) don't return the same bytes forever.
type deterministicReader struct {
	seed byte
	call int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	r.call++
	for i := range p {
		p[i] = byte(int(r.seed)*31+i*7+r.call*13) ^ 0x5A
	}
	return len(p), nil
}
