package wallet

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Key namespace for the wallet module's slice of the shared KV store.
const (
	prefixClaimed = "wallet:claimed:"
	prefixShare   = "wallet:share:"
	prefixLocal   = "wallet:local:"
	prefixPending = "wallet:pending:"
	prefixAttest  = "wallet:attest:"
	prefixBatch   = "wallet:batch:"
)

func claimedKey(txid [32]byte, index uint32) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixClaimed, txid, index))
}

func shareKey(txHash [32]byte, outputIndex, guardianIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d:%d", prefixShare, txHash, outputIndex, guardianIndex))
}

func sharePrefix(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d:", prefixShare, txHash, outputIndex))
}

func localPendingKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixLocal, txHash, outputIndex))
}

func pendingKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixPending, txHash, outputIndex))
}

func pendingPrefix() []byte {
	return []byte(prefixPending)
}

func attestKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixAttest, txHash, outputIndex))
}

func batchKey(epochMarker string) []byte {
	return []byte(prefixBatch + epochMarker)
}

func parseSuffixedKey(key []byte, prefix string) (txHash [32]byte, outputIndex int, err error) {
	rest := strings.TrimPrefix(string(key), prefix)
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return txHash, 0, fmt.Errorf("wallet: malformed key %q", key)
	}
	raw, err := decodeHex32(parts[0])
	if err != nil {
		return txHash, 0, err
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return txHash, 0, fmt.Errorf("wallet: malformed key %q: %w", key, err)
	}
	return raw, idx, nil
}

func guardianIndexOf(key []byte) (int, error) {
	i := strings.LastIndex(string(key), ":")
	if i < 0 {
		return 0, fmt.Errorf("wallet: malformed share key %q", key)
	}
	idx, err := strconv.Atoi(string(key)[i+1:])
	if err != nil {
		return 0, fmt.Errorf("wallet: malformed share key %q: %w", key, err)
	}
	return idx, nil
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("wallet: decode hex: %w", err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("wallet: expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}
