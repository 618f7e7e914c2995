package signer

import (
	"crypto/sha256"

	"github.com/mgharebaghi/cc-transaction/pkg/keys"
)

// StubSigner produces deterministic pseudo-signatures without any real
// cryptography. Test use only.
type StubSigner struct {
	// Err, when set, is returned instead of signing.
	Err error
}

// Sign derives a repeatable signature from the key material and hash.
func (s StubSigner) Sign(private string, hash string) (keys.Signature, error) {
	if s.Err != nil {
		return keys.Signature{}, s.Err
	}

	left := sha256.Sum256([]byte(private + hash))
	right := sha256.Sum256([]byte(hash + private))

	return keys.NewSignature(append(left[:], right[:]...))
}
