package tbs

// G1CompressedSize and G2CompressedSize are the canonical compressed-affine
// encoding sizes for BLS12-381 (spec §6).
const (
	G1CompressedSize = 48
	G2CompressedSize = 96
)

// MarshalG1 returns the 48-byte compressed affine encoding of a G1Point,
// delegating directly to gnark-crypto's native Marshal rather than
// reinventing point compression.
func MarshalG1(p G1Point) []byte {
	b := p.Marshal()
	return b[:]
}

// UnmarshalG1 parses a 48-byte compressed G1 point.
func UnmarshalG1(data []byte) (G1Point, error) {
	if len(data) != G1CompressedSize {
		return G1Point{}, ErrInvalidEncoding
	}
	var p G1Point
	if err := p.Unmarshal(data); err != nil {
		return G1Point{}, ErrInvalidEncoding
	}
	return p, nil
}

// MarshalG2 returns the 96-byte compressed affine encoding of a G2Point.
func MarshalG2(p G2Point) []byte {
	b := p.Marshal()
	return b[:]
}

// UnmarshalG2 parses a 96-byte compressed G2 point.
func UnmarshalG2(data []byte) (G2Point, error) {
	if len(data) != G2CompressedSize {
		return G2Point{}, ErrInvalidEncoding
	}
	var p G2Point
	if err := p.Unmarshal(data); err != nil {
		return G2Point{}, ErrInvalidEncoding
	}
	return p, nil
}
