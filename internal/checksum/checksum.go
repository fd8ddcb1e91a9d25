// Package checksum fingerprints generated documents so unchanged output can be detected.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Of returns the hex-encoded SHA-256 digest of a rendered document.
func Of(doc string) string {
	h := sha256.Sum256([]byte(doc))
	return hex.EncodeToString(h[:])
}

// Equal reports whether data on disk matches the digest of a previous render.
func Equal(data []byte, digest string) bool {
	return digest != "" && Of(string(data)) == digest
}
