package mint

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Key namespace for the mint module's slice of the shared KV store.
const (
	prefixNonce   = "mint:nonce:"
	prefixShare   = "mint:share:"
	prefixNote    = "mint:note:"
	prefixLocal   = "mint:local:"
	prefixPending = "mint:pending:"
)

func pendingKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixPending, txHash, outputIndex))
}

func pendingPrefix() []byte {
	return []byte(prefixPending)
}

// parsePendingKey recovers the (txHash, outputIndex) a pending marker key
// was built from.
func parsePendingKey(key []byte) (txHash [32]byte, outputIndex int, err error) {
	rest := strings.TrimPrefix(string(key), prefixPending)
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return txHash, 0, fmt.Errorf("mint: malformed pending key %q", key)
	}
	raw, err := decodeHex32(parts[0])
	if err != nil {
		return txHash, 0, err
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil {
		return txHash, 0, fmt.Errorf("mint: malformed pending key %q: %w", key, err)
	}
	return raw, idx, nil
}

// guardianIndexOf recovers the trailing guardian index from a share key.
func guardianIndexOf(key []byte) (int, error) {
	i := strings.LastIndex(string(key), ":")
	if i < 0 {
		return 0, fmt.Errorf("mint: malformed share key %q", key)
	}
	idx, err := strconv.Atoi(string(key)[i+1:])
	if err != nil {
		return 0, fmt.Errorf("mint: malformed share key %q: %w", key, err)
	}
	return idx, nil
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("mint: decode hex: %w", err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("mint: expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func nonceKey(nonce [32]byte) []byte {
	return []byte(fmt.Sprintf("%s%x", prefixNonce, nonce))
}

func shareKey(txHash [32]byte, outputIndex, guardianIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d:%d", prefixShare, txHash, outputIndex, guardianIndex))
}

func sharePrefix(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d:", prefixShare, txHash, outputIndex))
}

func noteKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixNote, txHash, outputIndex))
}

func localPendingKey(txHash [32]byte, outputIndex int) []byte {
	return []byte(fmt.Sprintf("%s%x:%d", prefixLocal, txHash, outputIndex))
}
