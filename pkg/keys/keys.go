package keys

import (
	"bytes"
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

const (
	// PublicKeySize is the byte length of an ed25519 public key.
	PublicKeySize = 32
	// SignatureSize is the byte length of an ed25519 signature.
	SignatureSize = 64
)

// PublicKey is an opaque fixed-size public key. The canonical
// human-readable form is the base58 encoding of the raw bytes; that
// form is what appears in addresses and in serialized transactions.
type PublicKey [PublicKeySize]byte

// Signature is an opaque fixed-size signature with the same base58
// canonical form as PublicKey.
type Signature [SignatureSize]byte

// ParsePublicKey decodes the canonical base58 form of a public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var key PublicKey
	decoded := base58.Decode(s)
	if len(decoded) != PublicKeySize {
		return key, errors.Errorf("invalid public key %q: decoded to %d bytes, want %d",
			s, len(decoded), PublicKeySize)
	}

	copy(key[:], decoded)
	return key, nil
}

// ParseSignature decodes the canonical base58 form of a signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	decoded := base58.Decode(s)
	if len(decoded) != SignatureSize {
		return sig, errors.Errorf("invalid signature %q: decoded to %d bytes, want %d",
			s, len(decoded), SignatureSize)
	}

	copy(sig[:], decoded)
	return sig, nil
}

// NewPublicKey copies raw key bytes into a PublicKey.
func NewPublicKey(raw []byte) (PublicKey, error) {
	var key PublicKey
	if len(raw) != PublicKeySize {
		return key, errors.Errorf("invalid public key length %d, want %d", len(raw), PublicKeySize)
	}

	copy(key[:], raw)
	return key, nil
}

// NewSignature copies raw signature bytes into a Signature.
func NewSignature(raw []byte) (Signature, error) {
	var sig Signature
	if len(raw) != SignatureSize {
		return sig, errors.Errorf("invalid signature length %d, want %d", len(raw), SignatureSize)
	}

	copy(sig[:], raw)
	return sig, nil
}

// String returns the canonical base58 form.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// Bytes returns a copy of the raw key bytes.
func (k PublicKey) Bytes() []byte {
	raw := make([]byte, PublicKeySize)
	copy(raw, k[:])
	return raw
}

// Equal reports byte-exact equality.
func (k PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(k[:], other[:])
}

// MarshalJSON encodes the key as its canonical string form.
func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a key from its canonical string form.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "failed to decode public key")
	}

	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// String returns the canonical base58 form.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

// Bytes returns a copy of the raw signature bytes.
func (s Signature) Bytes() []byte {
	raw := make([]byte, SignatureSize)
	copy(raw, s[:])
	return raw
}

// MarshalJSON encodes the signature as its canonical string form.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a signature from its canonical string form.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "failed to decode signature")
	}

	parsed, err := ParseSignature(str)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
