package txn

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// ErrNotSigned is returned by VerifySignature when no signature is present.
var ErrNotSigned = errors.New("txn: transaction is not signed")

// Sign computes TxHash and authorizes it with key, storing the DER-encoded
// signature on the transaction (spec §3: "a transaction is authorized by a
// signature its owner produces over the transaction's hash").
func (t *Transaction) Sign(key *btcec.PrivateKey) error {
	hash, err := t.TxHash()
	if err != nil {
		return err
	}
	sig := ecdsa.Sign(key, hash[:])
	t.Signature = sig.Serialize()
	return nil
}

// VerifySignature reports whether Signature authorizes this transaction's
// hash under pubKey.
func (t Transaction) VerifySignature(pubKey *btcec.PublicKey) (bool, error) {
	if len(t.Signature) == 0 {
		return false, ErrNotSigned
	}
	hash, err := t.TxHash()
	if err != nil {
		return false, err
	}
	sig, err := ecdsa.ParseDERSignature(t.Signature)
	if err != nil {
		return false, fmt.Errorf("txn: parse signature: %w", err)
	}
	return sig.Verify(hash[:], pubKey), nil
}

// VerifyOwnSignature parses PubKey and verifies Signature under it. Unlike
// VerifySignature, it needs no caller-supplied key: the transaction carries
// everything required to re-check its own authorization, which is what
// lets an apply-time re-validation (spec §4.4.4) happen on any replica,
// including one that never saw the original submit_transaction call.
func (t Transaction) VerifyOwnSignature() (bool, error) {
	if len(t.PubKey) == 0 {
		return false, ErrNotSigned
	}
	pubKey, err := btcec.ParsePubKey(t.PubKey)
	if err != nil {
		return false, fmt.Errorf("txn: parse public key: %w", err)
	}
	return t.VerifySignature(pubKey)
}
