package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/tbs"
	"github.com/tbsmint/fedcore/txn"
)

// payoutFingerprint is the canonically-encoded content a withdrawal's
// threshold attestation covers: binding it to the owning transaction and
// output position prevents one guardian's share for one payout being
// replayed against another of the same amount.
type payoutFingerprint struct {
	TxHash            [32]byte
	OutputIndex       int
	DestinationScript []byte
	Amount            uint64
}

func payoutMessage(txHash [32]byte, outputIndex int, out txn.PegOutWithdraw) (tbs.Message, error) {
	b, err := kvstore.Encode(payoutFingerprint{
		TxHash:            txHash,
		OutputIndex:       outputIndex,
		DestinationScript: out.DestinationScript,
		Amount:            out.Amount,
	})
	if err != nil {
		return tbs.Message{}, fmt.Errorf("wallet: encode payout fingerprint: %w", err)
	}
	return tbs.FromBytes(b)
}

// encodePendingPayout/decodePendingPayout persist the minimal content
// EndConsensusEpoch needs to fold an attested withdrawal into a wire.MsgTx,
// without retaining the full txn.PegOutWithdraw shape in the KV store.
func encodePendingPayout(out txn.PegOutWithdraw) []byte {
	b, err := kvstore.Encode(attestedPayout{DestinationScript: out.DestinationScript, Amount: int64(out.Amount)})
	if err != nil {
		// Amount/DestinationScript are always CBOR-encodable plain data;
		// a failure here indicates a library defect, not bad input.
		panic(fmt.Sprintf("wallet: encode pending payout: %v", err))
	}
	return b
}

func decodePendingPayout(data []byte) (attestedPayout, error) {
	var p attestedPayout
	if err := kvstore.Decode(data, &p); err != nil {
		return attestedPayout{}, fmt.Errorf("wallet: decode pending payout: %w", err)
	}
	return p, nil
}

// toPegInProof restates a txn.PegInClaim using btcd's native types.
func toPegInProof(claim txn.PegInClaim) PegInProof {
	return PegInProof{
		Outpoint: wire.OutPoint{
			Hash:  chainhash.Hash(claim.Outpoint.TxID),
			Index: claim.Outpoint.Index,
		},
		BlockHash: chainhash.Hash(claim.BlockHash),
		Amount:    int64(claim.TxOutAmount),
	}
}
