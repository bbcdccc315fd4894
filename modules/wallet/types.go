package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/fxamacker/cbor/v2"

	"github.com/tbsmint/fedcore/tbs"
)

var cborMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("wallet: building canonical cbor mode: %v", err))
	}
	return mode
}()

// PegInProof restates a txn.PegInClaim's opaque bytes using btcd's native
// Bitcoin types: the form the rest of the Bitcoin tooling in this module
// works with. It is a stand-in for a full SPV/merkle proof — the actual
// Bitcoin chain watcher that would produce one is an external collaborator
// (spec.md §1), so ValidateInput only checks TxOutProof is non-empty rather
// than walking a real merkle path.
type PegInProof struct {
	Outpoint  wire.OutPoint
	BlockHash chainhash.Hash
	Amount    int64 // satoshis
}

// SignatureShare is this module's consensus item: one guardian's
// contribution toward the threshold attestation of a pending peg-out (spec
// §4.4.4). It mirrors mint.SignatureShare exactly, borrowing the same
// gossip-then-combine shape rather than a second signature scheme.
type SignatureShare struct {
	TxHash        [32]byte
	OutputIndex   int
	GuardianIndex int
	Share         tbs.BlindedSignatureShare
}

// signatureShareWire is SignatureShare's wire form; see mint's
// signatureShareWire for why Share is carried as compressed bytes.
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

// Config is the static, per-replica material a Module needs. The wallet
// reuses the federation's mint key rather than running a dedicated DKG for
// a wallet key (spec.md Non-goals).
type Config struct {
	GuardianIndex int
	Threshold     int
	SecretShare   tbs.SecretKeyShare
	AggregatePK   tbs.AggregatePublicKey
}

// WithdrawalOutcome is the per-output result ApplyOutput and OutputStatus
// expose: this guardian's own attestation share immediately, and the
// combined, federation-verifiable attestation once Threshold guardians
// have contributed.
type WithdrawalOutcome struct {
	LocalShare  tbs.BlindedSignatureShare
	Attestation *tbs.Signature
}
