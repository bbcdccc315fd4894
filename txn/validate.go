package txn

import "errors"

// ErrUnbalancedTransaction is returned when a transaction's funded inputs do
// not equal its outputs plus fees, in either direction: outputs that exceed
// the inputs and inputs left over after outputs and fees are both rejected.
var ErrUnbalancedTransaction = errors.New("txn: inputs do not equal outputs plus fees")

// FeeSchedule prices the two funding-affecting operations a transaction may
// request. Fees are charged in the federation's base unit and subtracted
// from the inputs before comparing against outputs.
type FeeSchedule struct {
	CoinSpendFee uint64 // per consumed note
	PegInFee     uint64 // per claimed deposit
	PegOutFee    uint64 // per requested withdrawal
}

// totalFee sums the fees this transaction owes under fees.
func (t Transaction) totalFee(fees FeeSchedule) uint64 {
	var total uint64
	for _, in := range t.Inputs {
		if in.Kind == InputKindCoins && in.Coins != nil {
			total += uint64(len(in.Coins.Notes)) * fees.CoinSpendFee
		}
		if in.Kind == InputKindPegIn {
			total += fees.PegInFee
		}
	}
	for _, out := range t.Outputs {
		if out.Kind == OutputKindPegOut {
			total += fees.PegOutFee
		}
	}
	return total
}

// ValidateFunding checks that the transaction's funded inputs, net of fees,
// cover its outputs exactly. Consensus items are never partially applied, so
// unlike a typical UTXO ledger there is no implicit "change goes to
// miners": inputs must equal outputs plus fees exactly, or the transaction
// is rejected outright (spec §4.4.1).
func (t Transaction) ValidateFunding(fees FeeSchedule) error {
	var funded, spent uint64
	for _, in := range t.Inputs {
		funded += in.Amount()
	}
	for _, out := range t.Outputs {
		spent += out.Amount()
	}
	fee := t.totalFee(fees)
	if funded != spent+fee {
		return ErrUnbalancedTransaction
	}
	return nil
}
