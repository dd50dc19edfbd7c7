package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes n‖e (big-endian, each prefixed by its byte length) with SHA-256
// and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub PublicKey) string {
	h := sha256.New()
	for _, v := range [][]byte{pub.N.Bytes(), pub.E.Bytes()} {
		l := len(v)
		h.Write([]byte{byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)})
		h.Write(v)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
