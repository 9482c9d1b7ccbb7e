package model

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// NormalizeAddress returns the canonical lowercase form of an account address.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ValidAddress reports whether addr is a 0x-prefixed 40 hex character account address.
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return false
	}
	_, err := hex.DecodeString(addr[2:])
	return err == nil
}

// PoolKey converts a pool id into the 32-byte identifier used by the settlement
// contract: the UTF-8 bytes of the id, right-padded with zeros.
// Ids longer than 31 bytes do not fit and return false.
func PoolKey(id string) (chainhash.Hash, bool) {
	var key chainhash.Hash
	if id == "" || len(id) > chainhash.HashSize-1 {
		return key, false
	}
	copy(key[:], id)
	return key, true
}

// PoolKeyHex renders a pool key as 0x-prefixed big-endian hex, the layout the contract expects.
// chainhash.Hash.String reverses bytes, so it is not used here.
func PoolKeyHex(key chainhash.Hash) string {
	return "0x" + hex.EncodeToString(key[:])
}
