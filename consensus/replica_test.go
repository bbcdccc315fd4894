package consensus

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"go.uber.org/zap"

	"github.com/tbsmint/fedcore/internal/rng"
	"github.com/tbsmint/fedcore/kvstore"
	"github.com/tbsmint/fedcore/modules/mint"
	"github.com/tbsmint/fedcore/modules/wallet"
	"github.com/tbsmint/fedcore/tbs"
	"github.com/tbsmint/fedcore/txn"
)

// newTestFederation builds a single-guardian (threshold 1 of 1) Replica: the
// simplest configuration in which a guardian's own share already meets
// threshold, so issuance and withdrawal combine within the epoch that
// produces them. Mint and wallet share the same dealer-issued key, per
// wallet's doc.go: there is no separate wallet DKG.
func newTestFederation(t *testing.T) (*Replica, kvstore.KVStore) {
	t.Helper()
	shares, err := tbs.DealerKeygen(1, 1, rand.Reader)
	if err != nil {
		t.Fatalf("DealerKeygen: %v", err)
	}
	store := kvstore.NewMemStore()
	mintMod := mint.New(mint.Config{
		GuardianIndex: 0,
		Threshold:     1,
		SecretShare:   shares.SecretKeyShares[0],
		PublicShare:   shares.PublicKeyShares[0],
		AggregatePK:   shares.AggregatePublicKey,
	})
	walletMod := wallet.New(wallet.Config{
		GuardianIndex: 0,
		Threshold:     1,
		SecretShare:   shares.SecretKeyShares[0],
		AggregatePK:   shares.AggregatePublicKey,
	})
	r := New(store, mintMod, walletMod, txn.FeeSchedule{}, rng.SeededFactory(1), zap.NewNop().Sugar())
	return r, store
}

// balancedPegTx builds a Transaction with one peg-in input funding a single
// peg-out output of the same amount, distinguished by destinationScript so
// distinct calls produce distinct transaction hashes.
func balancedPegTx(t *testing.T, utxo txn.BitcoinOutPoint, amount uint64, destinationScript []byte) (txn.Transaction, *btcec.PrivateKey) {
	t.Helper()
	tx := txn.Transaction{
		Inputs: []txn.Input{{
			Kind: txn.InputKindPegIn,
			PegIn: &txn.PegInClaim{
				Outpoint:    utxo,
				BlockHash:   [32]byte{0xaa},
				TxOutProof:  []byte("spv-proof-stand-in"),
				TxOutAmount: amount,
			},
		}},
		Outputs: []txn.Output{{
			Kind: txn.OutputKindPegOut,
			PegOut: &txn.PegOutWithdraw{
				DestinationScript: destinationScript,
				Amount:            amount,
			},
		}},
	}
	key, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	tx.PubKey = key.PubKey().SerializeCompressed()
	if err := tx.Sign(key); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return tx, key
}

func TestSubmitTransactionRejectsUnbalanced(t *testing.T) {
	r, _ := newTestFederation(t)
	tx, key := balancedPegTx(t, txn.BitcoinOutPoint{TxID: [32]byte{1}}, 100, []byte{0x00, 0x14, 1})
	tx.Outputs[0].PegOut.Amount = 50 // funded 100, spent 50: unbalanced
	if err := tx.Sign(key); err != nil {
		t.Fatalf("re-sign: %v", err)
	}

	err := r.SubmitTransaction(tx, key.PubKey())
	if !errors.Is(err, ErrTransactionMalformed) {
		t.Fatalf("expected ErrTransactionMalformed, got %v", err)
	}
}

func TestSubmitTransactionRejectsBadSignature(t *testing.T) {
	r, _ := newTestFederation(t)
	tx, _ := balancedPegTx(t, txn.BitcoinOutPoint{TxID: [32]byte{2}}, 100, []byte{0x00, 0x14, 2})

	otherKey, err := btcec.NewPrivateKey()
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	err = r.SubmitTransaction(tx, otherKey.PubKey())
	if !errors.Is(err, ErrTransactionMalformed) {
		t.Fatalf("expected ErrTransactionMalformed for wrong pubkey, got %v", err)
	}
}

func TestSubmitTransactionRejectsMissingPegInProof(t *testing.T) {
	r, _ := newTestFederation(t)
	tx, key := balancedPegTx(t, txn.BitcoinOutPoint{TxID: [32]byte{3}}, 100, []byte{0x00, 0x14, 3})
	tx.Inputs[0].PegIn.TxOutProof = nil
	if err := tx.Sign(key); err != nil {
		t.Fatalf("re-sign: %v", err)
	}

	err := r.SubmitTransaction(tx, key.PubKey())
	if !errors.Is(err, ErrModuleInputInvalid) {
		t.Fatalf("expected ErrModuleInputInvalid, got %v", err)
	}
}

func TestSubmitTransactionPoolsValidTransaction(t *testing.T) {
	r, store := newTestFederation(t)
	tx, key := balancedPegTx(t, txn.BitcoinOutPoint{TxID: [32]byte{4}}, 100, []byte{0x00, 0x14, 4})

	if err := r.SubmitTransaction(tx, key.PubKey()); err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}

	txHash, err := tx.TxHash()
	if err != nil {
		t.Fatalf("TxHash: %v", err)
	}
	if _, found, err := store.GetValue(kvstore.ProposedTransactionKey(txHash)); err != nil || !found {
		t.Fatalf("expected transaction pooled, found=%v err=%v", found, err)
	}

	status, err := r.TransactionStatus(txHash)
	if err != nil {
		t.Fatalf("TransactionStatus: %v", err)
	}
	if status.State != StateAwaitingConsensus {
		t.Fatalf("expected StateAwaitingConsensus, got %v", status.State)
	}
}

func TestGetConsensusProposalOrdersTransactionsThenWalletThenMint(t *testing.T) {
	r, store := newTestFederation(t)
	tx, key := balancedPegTx(t, txn.BitcoinOutPoint{TxID: [32]byte{5}}, 100, []byte{0x00, 0x14, 5})
	if err := r.SubmitTransaction(tx, key.PubKey()); err != nil {
		t.Fatalf("SubmitTransaction: %v", err)
	}

	// Stage one pending local share in each module directly, simulating
	// output processing that already happened in a prior epoch.
	var walletTxHash, mintTxHash [32]byte
	copy(walletTxHash[:], []byte("wallet-output-tx-hash-for-order"))
	copy(mintTxHash[:], []byte("mint-output-tx-hash-for-ordering"))

	wBatch := &kvstore.Batch{}
	if _, err := r.wallet.ApplyOutput(wBatch, walletTxHash, 0, txn.PegOutWithdraw{DestinationScript: []byte{0x00, 0x14, 9}, Amount: 1}); err != nil {
		t.Fatalf("wallet ApplyOutput: %v", err)
	}
	if err := store.ApplyBatch(wBatch); err != nil {
		t.Fatalf("ApplyBatch(wallet): %v", err)
	}

	msg, err := tbs.FromBytes([]byte("ordering-test-message"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	_, bmsg, err := tbs.BlindMessage(msg, rand.Reader)
	if err != nil {
		t.Fatalf("BlindMessage: %v", err)
	}
	mBatch := &kvstore.Batch{}
	if _, err := r.mint.ApplyOutput(mBatch, mintTxHash, 0, txn.CoinIssuance{BlindedMessage: tbs.MarshalG1(bmsg), Amount: 1}); err != nil {
		t.Fatalf("mint ApplyOutput: %v", err)
	}
	if err := store.ApplyBatch(mBatch); err != nil {
		t.Fatalf("ApplyBatch(mint): %v", err)
	}

	items, err := r.GetConsensusProposal()
	if err != nil {
		t.Fatalf("GetConsensusProposal: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 proposal items, got %d", len(items))
	}
	if items[0].Kind != txn.ItemKindTransaction {
		t.Fatalf("expected item 0 to be a transaction, got %v", items[0].Kind)
	}
	if items[1].Kind != txn.ItemKindWallet {
		t.Fatalf("expected item 1 to be a wallet item, got %v", items[1].Kind)
	}
	if items[2].Kind != txn.ItemKindMint {
		t.Fatalf("expected item 2 to be a mint item, got %v", items[2].Kind)
	}
}
