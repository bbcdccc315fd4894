package txn

// TxOutPoint identifies one output of a transaction: the transaction's hash
// and the output's position within it (spec §3).
type TxOutPoint struct {
	TxHash [32]byte
	Index  uint32
}

// BitcoinOutPoint identifies a Bitcoin UTXO claimed by a peg-in (spec
// §4.4.4). Kept as plain bytes here rather than wire.OutPoint/chainhash.Hash
// so that txn has no dependency on modules/wallet or btcd; modules/wallet
// converts to and from the btcd types at its boundary.
type BitcoinOutPoint struct {
	TxID  [32]byte
	Index uint32
}

// CoinNote is a spendable e-cash note: a blind-signed nonce carrying an
// amount tier (spec §4.4.1).
type CoinNote struct {
	Nonce     [32]byte
	Amount    uint64
	Signature []byte // compressed tbs.Signature (48-byte G1 point)
}

// CoinSpend lists the notes an input consumes. A single input may bundle
// several notes so a transaction can spend an arbitrary amount using the
// mint's fixed denomination tiers.
type CoinSpend struct {
	Notes []CoinNote
}

// Amount sums the denominations of the spent notes.
func (c CoinSpend) Amount() uint64 {
	var total uint64
	for _, n := range c.Notes {
		total += n.Amount
	}
	return total
}

// PegInClaim proves a Bitcoin deposit into the federation's peg-in script,
// to be exchanged for newly issued notes (spec §4.4.4).
type PegInClaim struct {
	Outpoint    BitcoinOutPoint
	BlockHash   [32]byte
	TxOutProof  []byte // SPV merkle proof binding Outpoint to BlockHash
	TxOutAmount uint64 // satoshis locked at Outpoint, claimed by the depositor
}

// InputKind discriminates the Input tagged union.
type InputKind int

const (
	InputKindCoins InputKind = iota
	InputKindPegIn
)

func (k InputKind) String() string {
	switch k {
	case InputKindCoins:
		return "coins"
	case InputKindPegIn:
		return "peg_in"
	default:
		return "unknown"
	}
}

// Input is one funding source of a Transaction: either notes being spent or
// a Bitcoin deposit being claimed (spec §3, §4.4.1, §4.4.4). Exactly one of
// Coins, PegIn is set, selected by Kind.
type Input struct {
	Kind  InputKind
	Coins *CoinSpend
	PegIn *PegInClaim
}

// Amount reports the funding value this input contributes, in the
// federation's base unit.
func (in Input) Amount() uint64 {
	switch in.Kind {
	case InputKindCoins:
		if in.Coins == nil {
			return 0
		}
		return in.Coins.Amount()
	case InputKindPegIn:
		if in.PegIn == nil {
			return 0
		}
		return in.PegIn.TxOutAmount
	default:
		return 0
	}
}

// CoinIssuance requests a newly blind-signed note for the given blinded
// message (spec §4.4.1).
type CoinIssuance struct {
	BlindedMessage []byte // compressed tbs.BlindedMessage (48-byte G1 point)
	Amount         uint64
}

// PegOutWithdraw requests a Bitcoin payment out of the federation's reserve
// (spec §4.4.4).
type PegOutWithdraw struct {
	DestinationScript []byte // Bitcoin output script (pkScript)
	Amount            uint64 // satoshis
}

// OutputKind discriminates the Output tagged union.
type OutputKind int

const (
	OutputKindCoins OutputKind = iota
	OutputKindPegOut
)

func (k OutputKind) String() string {
	switch k {
	case OutputKindCoins:
		return "coins"
	case OutputKindPegOut:
		return "peg_out"
	default:
		return "unknown"
	}
}

// Output is one funding destination of a Transaction: either a blinded note
// issuance or a Bitcoin withdrawal (spec §3, §4.4.1, §4.4.4). Exactly one of
// Coins, PegOut is set, selected by Kind.
type Output struct {
	Kind   OutputKind
	Coins  *CoinIssuance
	PegOut *PegOutWithdraw
}

// Amount reports the funding value this output consumes, in the
// federation's base unit.
func (out Output) Amount() uint64 {
	switch out.Kind {
	case OutputKindCoins:
		if out.Coins == nil {
			return 0
		}
		return out.Coins.Amount
	case OutputKindPegOut:
		if out.PegOut == nil {
			return 0
		}
		return out.PegOut.Amount
	default:
		return 0
	}
}

// Transaction is the unit a client submits for sequencing (spec §3). Its
// funding is validated input-for-output before it is ever proposed for
// consensus; its identity is its canonical hash, and its authorization is a
// signature over that hash. PubKey travels with the transaction itself
// (rather than being a caller-supplied, discarded parameter) so that
// whichever replica ends up applying an agreed-upon consensus outcome can
// re-verify Signature without needing to have seen the original submitter
// (spec §4.4.4: process_transaction re-runs stateless validation — funding
// and signature — a second time, at apply).
type Transaction struct {
	Inputs    []Input
	Outputs   []Output
	PubKey    []byte // compressed secp256k1 public key authorizing Signature
	Signature []byte // DER-encoded ECDSA signature over TxHash()
}

// ConsensusItemKind discriminates the ConsensusItem tagged union.
type ConsensusItemKind int

const (
	ItemKindTransaction ConsensusItemKind = iota
	ItemKindMint
	ItemKindWallet
)

func (k ConsensusItemKind) String() string {
	switch k {
	case ItemKindTransaction:
		return "transaction"
	case ItemKindMint:
		return "mint"
	case ItemKindWallet:
		return "wallet"
	default:
		return "unknown"
	}
}

// ConsensusItem is one element of a BFT outcome (spec §4.3, §4.4.3): either a
// client Transaction, or a module-specific item belonging to the Mint or
// Wallet module. Module items are carried as a canonically encoded opaque
// payload so that txn does not need to import modules/mint or
// modules/wallet; package consensus, which does, decodes ModulePayload into
// the concrete module item type before dispatching to the module.
type ConsensusItem struct {
	Kind          ConsensusItemKind
	Transaction   *Transaction
	ModulePayload []byte
}
