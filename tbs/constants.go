package tbs

import (
	"errors"
	"math/big"
)

var (
	// ErrDegenerateInterpolation is returned when interpolation x-coordinates
	// collide or one of them is zero. BlindMessage never returns it: a zero
	// blinding key is redrawn.
	ErrDegenerateInterpolation = errors.New("tbs: degenerate interpolation or zero blinding key")

	// ErrInvalidThreshold is returned by DealerKeygen for out-of-range t, n.
	ErrInvalidThreshold = errors.New("tbs: invalid threshold parameters")

	// ErrInsufficientShares is returned when fewer shares than requested are supplied to CombineValidShares.
	ErrInsufficientShares = errors.New("tbs: insufficient shares supplied")

	// ErrInvalidEncoding is returned when a compressed point fails to unmarshal.
	ErrInvalidEncoding = errors.New("tbs: invalid point encoding")

	// Order is the order of the BLS12-381 scalar field (the r-order subgroup
	// shared by G1, G2 and GT).
	Order, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

	// dstFromBytes domain-separates hash_to_curve for arbitrary byte strings.
	dstFromBytes = []byte("TBS_BLS12381G1_XMD:SHA-256_SSWU_RO_FROM_BYTES_")

	// dstFromHash domain-separates hash_to_curve for pre-digested 32-byte
	// hashes. It MUST differ from dstFromBytes: otherwise from_bytes(x) and
	// from_hash(H(x)) could collide on some input, breaking domain
	// separation (spec invariant P6).
	dstFromHash = []byte("TBS_BLS12381G1_XMD:SHA-256_SSWU_RO_FROM_HASH_")
)
