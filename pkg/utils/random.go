package utils

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// RandomSource yields the per-output salt used to keep two outputs of
// equal wallet and value from hashing to the same digest. Collisions
// are the concern, not secrecy, but the production source still reads
// from crypto/rand. Tests inject a fixed source to get stable hashes.
type RandomSource interface {
	Salt() (uint32, error)
}

// CryptoSource draws salts from crypto/rand.
type CryptoSource struct{}

// Salt returns a fresh random 32-bit value.
func (CryptoSource) Salt() (uint32, error) {
	var buf [4]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random salt")
	}

	return binary.BigEndian.Uint32(buf[:]), nil
}

// FixedSource replays a predefined sequence of salts. Once the
// sequence is exhausted it keeps returning the last value.
type FixedSource struct {
	Salts []uint32
	next  int
}

// Salt returns the next predefined value.
func (s *FixedSource) Salt() (uint32, error) {
	if len(s.Salts) == 0 {
		return 0, errors.New("fixed source has no salts")
	}

	salt := s.Salts[s.next]
	if s.next < len(s.Salts)-1 {
		s.next++
	}

	return salt, nil
}
