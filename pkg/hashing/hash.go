package hashing

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the SHA256 digest of data as a lowercase hex string.
// Every hash field in the data model stores digests in this form.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// SumString is a convenience wrapper for hashing string content.
func SumString(data string) string {
	return Sum([]byte(data))
}
