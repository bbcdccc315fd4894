package tbs

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// FromBytes hashes an arbitrary byte string onto G1 using a domain tag
// distinct from FromHash, so that FromBytes(x) and FromHash(H(x)) can never
// collide for any x (spec invariant P6).
func FromBytes(msg []byte) (Message, error) {
	p, err := bls12381.HashToG1(msg, dstFromBytes)
	if err != nil {
		return Message{}, fmt.Errorf("tbs: hash to curve: %w", err)
	}
	return p, nil
}

// FromHash maps a pre-digested 32-byte hash directly onto G1, using its own
// domain tag (no caller-supplied tag; the 32-byte-digest contract takes the
// place of domain separation on the input side, and dstFromHash keeps it
// separated from FromBytes on the curve-mapping side).
func FromHash(digest [32]byte) (Message, error) {
	p, err := bls12381.HashToG1(digest[:], dstFromHash)
	if err != nil {
		return Message{}, fmt.Errorf("tbs: hash to curve: %w", err)
	}
	return p, nil
}
