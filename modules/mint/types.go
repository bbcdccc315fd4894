package mint

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/tbsmint/fedcore/tbs"
)

var cborMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("mint: building canonical cbor mode: %v", err))
	}
	return mode
}()

// SignatureShare is this module's consensus item: one guardian's blind
// signature contribution toward a specific transaction output (spec
// §4.4.1). It is gossiped through consensus so every replica can assemble
// the same combined signature once enough guardians have contributed.
type SignatureShare struct {
	TxHash        [32]byte
	OutputIndex   int
	GuardianIndex int
	Share         tbs.BlindedSignatureShare
}

// signatureShareWire is SignatureShare's wire form. Share is carried as its
// 48-byte compressed encoding rather than gnark-crypto's internal
// Montgomery-form struct layout, so the bytes on the wire match the
// canonical point encoding spec §6 requires.
type signatureShareWire struct {
	TxHash        [32]byte
	OutputIndex   int
	GuardianIndex int
	Share         []byte
}

// MarshalCBOR implements cbor.Marshaler.
func (s SignatureShare) MarshalCBOR() ([]byte, error) {
	w := signatureShareWire{
		TxHash:        s.TxHash,
		OutputIndex:   s.OutputIndex,
		GuardianIndex: s.GuardianIndex,
		Share:         tbs.MarshalG1(s.Share),
	}
	return cborMode.Marshal(w)
}

// UnmarshalCBOR implements cbor.Unmarshaler, the inverse of MarshalCBOR.
func (s *SignatureShare) UnmarshalCBOR(data []byte) error {
	var w signatureShareWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	share, err := tbs.UnmarshalG1(w.Share)
	if err != nil {
		return err
	}
	s.TxHash, s.OutputIndex, s.GuardianIndex, s.Share = w.TxHash, w.OutputIndex, w.GuardianIndex, share
	return nil
}

// Config is the static, per-replica material a Module needs: its own share
// of the federation's signing key, and the aggregate key every note
// verifies against.
type Config struct {
	GuardianIndex int
	Threshold     int
	SecretShare   tbs.SecretKeyShare
	PublicShare   tbs.PublicKeyShare
	AggregatePK   tbs.AggregatePublicKey
}

// IssuanceOutcome is the per-output result ApplyOutput and OutputStatus
// expose: this guardian's own share immediately, and the combined,
// still-blinded signature once the epoch that reaches Threshold
// contributions closes.
type IssuanceOutcome struct {
	LocalShare tbs.BlindedSignatureShare
	Combined   *tbs.BlindedSignature
}
