package tbs

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"testing"
)

func TestFromBytesDeterministic(t *testing.T) {
	msg, err := FromBytes([]byte("hello federation"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	again, err := FromBytes([]byte("hello federation"))
	if err != nil {
		t.Fatalf("FromBytes (again): %v", err)
	}
	if !msg.Equal(&again) {
		t.Fatalf("FromBytes is not deterministic for identical input")
	}
}

// TestDomainSeparationFromBytesVsFromHash is invariant P6: FromBytes(x) and
// FromHash(H(x)) must never land on the same curve point, even when x's
// SHA-256 digest is fed straight into FromHash.
func TestDomainSeparationFromBytesVsFromHash(t *testing.T) {
	input := []byte("note redeemed at the mint")
	digest := sha256.Sum256(input)

	fromBytes, err := FromBytes(input)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	fromHash, err := FromHash(digest)
	if err != nil {
		t.Fatalf("FromHash: %v", err)
	}
	if fromBytes.Equal(&fromHash) {
		t.Fatalf("FromBytes and FromHash collided on the same point: domain separation broken")
	}

	// Also check against hashing the raw digest bytes through FromBytes:
	// different domain tags, so still must not collide.
	fromBytesOfDigest, err := FromBytes(digest[:])
	if err != nil {
		t.Fatalf("FromBytes(digest): %v", err)
	}
	if fromBytesOfDigest.Equal(&fromHash) {
		t.Fatalf("FromBytes(digest) and FromHash(digest) collided: domain separation broken")
	}
}

func TestBlindSignUnblindVerifyRoundTrip(t *testing.T) {
	shares, err := DealerKeygen(3, 5, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}

	msg, err := FromBytes([]byte("a note worth one sat"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	bk, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}

	indexed := make([]IndexedShare, 3)
	for i := 0; i < 3; i++ {
		indexed[i] = IndexedShare{Index: i, Share: SignBlinded(bmsg, shares.SecretKeyShares[i])}
	}

	combined, err := CombineValidShares(indexed, 3)
	if err != nil {
		t.Fatalf("CombineValidShares: %v", err)
	}
	sig := Unblind(bk, combined)

	ok, err := Verify(msg, sig, shares.AggregatePublicKey)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("combined signature failed to verify under the aggregate public key")
	}
}

func TestCombineValidSharesAnyThresholdSubsetVerifies(t *testing.T) {
	shares, err := DealerKeygen(3, 5, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	msg, err := FromBytes([]byte("picked from a different subset"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	bk, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}

	// Use guardians 2, 3, 4 instead of 0, 1, 2.
	indexed := []IndexedShare{
		{Index: 2, Share: SignBlinded(bmsg, shares.SecretKeyShares[2])},
		{Index: 3, Share: SignBlinded(bmsg, shares.SecretKeyShares[3])},
		{Index: 4, Share: SignBlinded(bmsg, shares.SecretKeyShares[4])},
	}
	combined, err := CombineValidShares(indexed, 3)
	if err != nil {
		t.Fatalf("CombineValidShares: %v", err)
	}
	sig := Unblind(bk, combined)

	ok, err := Verify(msg, sig, shares.AggregatePublicKey)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("signature combined from a non-default guardian subset failed to verify")
	}
}

func TestCombineValidSharesRejectsInsufficientShares(t *testing.T) {
	shares, err := DealerKeygen(3, 5, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	msg, err := FromBytes([]byte("not enough guardians signed"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	_, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}

	indexed := []IndexedShare{
		{Index: 0, Share: SignBlinded(bmsg, shares.SecretKeyShares[0])},
		{Index: 1, Share: SignBlinded(bmsg, shares.SecretKeyShares[1])},
	}
	_, err = CombineValidShares(indexed, 3)
	if err != ErrInsufficientShares {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
}

func TestVerifyBlindShareAcceptsHonestShareRejectsForgedShare(t *testing.T) {
	shares, err := DealerKeygen(2, 3, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	msg, err := FromBytes([]byte("share under test"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	_, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}

	honestShare := SignBlinded(bmsg, shares.SecretKeyShares[0])
	ok, err := VerifyBlindShare(bmsg, honestShare, shares.PublicKeyShares[0])
	if err != nil {
		t.Fatalf("VerifyBlindShare(honest): %v", err)
	}
	if !ok {
		t.Fatalf("expected honest share to verify against its own public key share")
	}

	// The same share checked against a different guardian's public key share
	// must not verify.
	ok, err = VerifyBlindShare(bmsg, honestShare, shares.PublicKeyShares[1])
	if err != nil {
		t.Fatalf("VerifyBlindShare(wrong key): %v", err)
	}
	if ok {
		t.Fatalf("share verified against the wrong guardian's public key share")
	}

	// A share signed by one guardian but claimed under another's key.
	otherGuardianShare := SignBlinded(bmsg, shares.SecretKeyShares[1])
	ok, err = VerifyBlindShare(bmsg, otherGuardianShare, shares.PublicKeyShares[0])
	if err != nil {
		t.Fatalf("VerifyBlindShare(swapped): %v", err)
	}
	if ok {
		t.Fatalf("guardian 1's share verified under guardian 0's public key share")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	shares, err := DealerKeygen(2, 3, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	msg, err := FromBytes([]byte("the real message"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	bk, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}
	indexed := []IndexedShare{
		{Index: 0, Share: SignBlinded(bmsg, shares.SecretKeyShares[0])},
		{Index: 1, Share: SignBlinded(bmsg, shares.SecretKeyShares[1])},
	}
	combined, err := CombineValidShares(indexed, 2)
	if err != nil {
		t.Fatalf("CombineValidShares: %v", err)
	}
	sig := Unblind(bk, combined)

	wrongMsg, err := FromBytes([]byte("a different message entirely"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	ok, err := Verify(wrongMsg, sig, shares.AggregatePublicKey)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatalf("signature verified against a message it was never issued for")
	}
}

func TestMarshalUnmarshalG1RoundTrip(t *testing.T) {
	msg, err := FromBytes([]byte("round trip me through the wire"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	encoded := MarshalG1(msg)
	if len(encoded) != G1CompressedSize {
		t.Fatalf("MarshalG1: got %d bytes, want %d", len(encoded), G1CompressedSize)
	}
	decoded, err := UnmarshalG1(encoded)
	if err != nil {
		t.Fatalf("UnmarshalG1: %v", err)
	}
	if !msg.Equal(&decoded) {
		t.Fatalf("UnmarshalG1(MarshalG1(p)) != p")
	}
}

func TestUnmarshalG1RejectsWrongLength(t *testing.T) {
	_, err := UnmarshalG1([]byte{0x01, 0x02, 0x03})
	if err != ErrInvalidEncoding {
		t.Fatalf("expected ErrInvalidEncoding for short input, got %v", err)
	}
}

func TestMarshalUnmarshalG2RoundTrip(t *testing.T) {
	shares, err := DealerKeygen(1, 1, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	encoded := MarshalG2(shares.AggregatePublicKey)
	if len(encoded) != G2CompressedSize {
		t.Fatalf("MarshalG2: got %d bytes, want %d", len(encoded), G2CompressedSize)
	}
	decoded, err := UnmarshalG2(encoded)
	if err != nil {
		t.Fatalf("UnmarshalG2: %v", err)
	}
	if !shares.AggregatePublicKey.Equal(&decoded) {
		t.Fatalf("UnmarshalG2(MarshalG2(p)) != p")
	}
}

func TestUnmarshalG2RejectsWrongLength(t *testing.T) {
	_, err := UnmarshalG2(bytes.Repeat([]byte{0xAA}, G2CompressedSize-1))
	if err != ErrInvalidEncoding {
		t.Fatalf("expected ErrInvalidEncoding for short input, got %v", err)
	}
}

// TestAggregatePublicKeyReconstructionMatchesDealer exercises invariant K1:
// interpolating any threshold-sized subset of PublicKeyShares at x=0
// reconstructs the same AggregatePublicKey DealerKeygen returned directly.
func TestAggregatePublicKeyReconstructionMatchesDealer(t *testing.T) {
	shares, err := DealerKeygen(3, 5, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}

	indexed := []IndexedPublicKeyShare{
		{Index: 1, Share: shares.PublicKeyShares[1]},
		{Index: 2, Share: shares.PublicKeyShares[2]},
		{Index: 3, Share: shares.PublicKeyShares[3]},
	}
	reconstructed, err := AggregatePublicKeyShares(indexed)
	if err != nil {
		t.Fatalf("AggregatePublicKeyShares: %v", err)
	}
	if !shares.AggregatePublicKey.Equal(&reconstructed) {
		t.Fatalf("reconstructed aggregate public key does not match DealerKeygen's")
	}
}

func TestDealerKeygenRejectsInvalidThreshold(t *testing.T) {
	cases := []struct{ t, n int }{
		{0, 5},
		{-1, 5},
		{5, 3},
		{3, 0},
	}
	for _, c := range cases {
		_, err := DealerKeygen(c.t, c.n, rand.Reader)
		if err == nil {
			t.Fatalf("DealerKeygen(%d, %d): expected error, got nil", c.t, c.n)
		}
	}
}

func TestSingleGuardianThresholdOneIsSelfSufficient(t *testing.T) {
	shares, err := DealerKeygen(1, 1, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	msg, err := FromBytes([]byte("lone guardian signs alone"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	bk, bmsg, err := BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}
	share := SignBlinded(bmsg, shares.SecretKeyShares[0])
	combined, err := CombineValidShares([]IndexedShare{{Index: 0, Share: share}}, 1)
	if err != nil {
		t.Fatalf("CombineValidShares: %v", err)
	}
	sig := Unblind(bk, combined)
	ok, err := Verify(msg, sig, shares.AggregatePublicKey)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("single-guardian threshold-1 signature failed to verify")
	}
}
