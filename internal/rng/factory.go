package rng

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand/v2"
	"sync/atomic"
)

// Factory produces the io.Reader each epoch hook draws randomness from.
// Construct one with CryptoFactory for production use and SeededFactory
// for deterministic tests; the zero value is a CryptoFactory.
type Factory struct {
	deterministic bool
	counter       atomic.Uint64
	seed          uint64
}

// CryptoFactory returns a Factory whose New always yields crypto/rand.Reader.
func CryptoFactory() *Factory {
	return &Factory{}
}

// SeededFactory returns a Factory whose New yields a deterministic stream
// derived from seed, advancing on every call so consecutive draws within an
// epoch differ while remaining reproducible across runs given the same
// seed and call sequence.
func SeededFactory(seed uint64) *Factory {
	return &Factory{deterministic: true, seed: seed}
}

// New returns a fresh io.Reader for one RNG-consuming operation.
func (f *Factory) New() io.Reader {
	if !f.deterministic {
		return rand.Reader
	}
	n := f.counter.Add(1)
	var seedBytes [32]byte
	binary.LittleEndian.PutUint64(seedBytes[0:8], f.seed)
	binary.LittleEndian.PutUint64(seedBytes[8:16], n)
	return mathrand.NewChaCha8(seedBytes)
}
