// Package checksum computes content digests used to detect entry changes.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Same reports whether two path→digest snapshots describe identical trees.
func Same(a, b map[string]string) bool {
	return maps.Equal(a, b)
}
