package mint

import (
	"fmt"

	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/tbs"
)

// noteFingerprint is the canonically-encoded content a redeemed note's
// signature must cover: binding the signature to both the nonce and the
// amount prevents a note minted at one denomination from being replayed as
// another.
type noteFingerprint struct {
	Nonce  [32]byte
	Amount uint64
}

// noteMessage derives the tbs.Message a note's signature is checked
// against.
func noteMessage(nonce [32]byte, amount uint64) (tbs.Message, error) {
	b, err := kvstore.Encode(noteFingerprint{Nonce: nonce, Amount: amount})
	if err != nil {
		return tbs.Message{}, fmt.Errorf("mint: encode note fingerprint: %w", err)
	}
	msg, err := tbs.FromBytes(b)
	if err != nil {
		return tbs.Message{}, err
	}
	return msg, nil
}
