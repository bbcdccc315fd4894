package wallet

import "github.com/btcsuite/btcd/wire"

// attestedPayout is one withdrawal whose threshold attestation has just
// finalized, ready to be folded into a broadcast-ready transaction.
type attestedPayout struct {
	DestinationScript []byte
	Amount            int64
}

// assembleBatch builds the wire.MsgTx a set of newly-attested peg-outs
// produce. Funding inputs (the federation's own reserve UTXOs) are supplied
// by whatever external process holds the reserve's spending keys — out of
// scope for this module, which only needs to produce the payout side
// deterministically.
func assembleBatch(payouts []attestedPayout) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	for _, p := range payouts {
		tx.AddTxOut(wire.NewTxOut(p.Amount, p.DestinationScript))
	}
	return tx
}
