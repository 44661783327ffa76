package tape

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
)

// KeySize is the byte length of a Key: exactly chacha20's key size. New
// still derives a distinct per-domain ChaCha20 key from it (see
// deriveCipherKey) rather than feeding it to the cipher directly.
const KeySize = chacha20.KeySize

// Key is a fixed-length seed for a Tape's CSPRNG.
type Key [KeySize]byte

// GenerateKey draws a uniformly random Key from rng. rng is caller-provided;
// pass nil to use crypto/rand.
func GenerateKey(rng io.Reader) (Key, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var k Key
	if _, err := io.ReadFull(rng, k[:]); err != nil {
		return Key{}, fmt.Errorf("tape: generating key: %w", err)
	}
	return k, nil
}

// Bytes returns the key's byte representation.
func (k Key) Bytes() []byte { return k[:] }

// KeyFromBytes parses a Key from its canonical byte encoding.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("tape: key must be %d bytes, got %d", KeySize, len(b))
	}
	var k Key
	copy(k[:], b)
	return k, nil
}
