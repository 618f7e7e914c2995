package signer

import (
	"crypto/ed25519"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/mgharebaghi/cc-transaction/pkg/keys"
)

// ErrInvalidKey is returned when the supplied private key material
// cannot be decoded into a usable signing key.
var ErrInvalidKey = errors.New("invalid private key material")

// Signer signs a transaction hash with externally held key material.
// The pipeline never inspects or stores the material beyond passing it
// through, so alternative implementations (hardware keys, remote
// signing services, test stubs) can be injected freely.
type Signer interface {
	Sign(private string, hash string) (keys.Signature, error)
}

// Ed25519Signer signs with an ed25519 key. The private key material is
// the base58 encoding of the 32-byte seed.
type Ed25519Signer struct{}

// Sign produces a signature over the hash string.
func (Ed25519Signer) Sign(private string, hash string) (keys.Signature, error) {
	seed := base58.Decode(private)
	if len(seed) != ed25519.SeedSize {
		return keys.Signature{}, errors.Wrapf(ErrInvalidKey,
			"seed decoded to %d bytes, want %d", len(seed), ed25519.SeedSize)
	}

	key := ed25519.NewKeyFromSeed(seed)
	raw := ed25519.Sign(key, []byte(hash))

	return keys.NewSignature(raw)
}

// PublicKeyFor derives the public key bound to the given private key
// material, letting callers cross-check an address before signing.
func PublicKeyFor(private string) (keys.PublicKey, error) {
	seed := base58.Decode(private)
	if len(seed) != ed25519.SeedSize {
		return keys.PublicKey{}, errors.Wrapf(ErrInvalidKey,
			"seed decoded to %d bytes, want %d", len(seed), ed25519.SeedSize)
	}

	key := ed25519.NewKeyFromSeed(seed)
	public, _ := key.Public().(ed25519.PublicKey)

	return keys.NewPublicKey(public)
}
