package domain

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the hex BLAKE2b-256 digest of the given parts, each
// length-prefixed so that ("ab","c") and ("a","bc") differ.
func Fingerprint(parts ...[]byte) string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	var lenBuf [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := 0; i < 8; i++ {
			lenBuf[i] = byte(n >> (8 * i))
		}
		h.Write(lenBuf[:])
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
