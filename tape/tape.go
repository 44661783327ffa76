package tape

import (
	"fmt"

	"github.com/consensys/gnark-crypto/hash"

	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/word"
	"golang.org/x/crypto/chacha20"
)

// zeroNonce is fixed: a Tape's only entropy source is its Key, a fresh
// uniformly random value per party per repetition, so a constant nonce never
// causes keystream reuse across two tapes with distinct keys.
var zeroNonce = [chacha20.NonceSize]byte{}

// deriveCipherKey domain-separates tape expansion from every other use of a
// party's Key (view commitment, future protocol extensions) by hashing the
// key under DSTTape before handing it to ChaCha20, rather than feeding the
// raw seed straight into the cipher.
func deriveCipherKey(seed Key) []byte {
	h := hash.KECCAK_256.New()
	h.Write([]byte(common.DSTTape))
	h.Write(seed[:])
	return h.Sum(nil)[:chacha20.KeySize]
}

// Tape is the pre-expanded pseudorandom stream of spec section 4.2: a
// buffer of length L Words drawn deterministically from a Key, read
// monotonically by a single Party during circuit evaluation.
//
// Invariant: cursor <= len(buffer) always holds; ReadNext enforces it.
type Tape[T word.Unsigned] struct {
	seed   Key
	buffer []word.Word[T]
	cursor int
}

// New derives a Tape of the given length (in Words) from seed. The circuit
// being evaluated determines length via its NumOfMulGates; honest callers
// always pass a length at least that large.
func New[T word.Unsigned](seed Key, length int) (*Tape[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("tape: negative length %d", length)
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(deriveCipherKey(seed), zeroNonce[:])
	if err != nil {
		return nil, fmt.Errorf("tape: constructing cipher: %w", err)
	}

	wordLen := word.ByteLen[T]()
	raw := make([]byte, length*wordLen)
	cipher.XORKeyStream(raw, raw) // raw is all-zero: this just emits the keystream

	buffer := make([]word.Word[T], length)
	for i := 0; i < length; i++ {
		w, err := word.FromBytes[T](raw[i*wordLen : (i+1)*wordLen])
		if err != nil {
			return nil, fmt.Errorf("tape: decoding word %d: %w", i, err)
		}
		buffer[i] = w
	}

	return &Tape[T]{seed: seed, buffer: buffer}, nil
}

// Len returns the tape's total capacity in Words.
func (t *Tape[T]) Len() int { return len(t.buffer) }

// Cursor returns the number of Words already consumed.
func (t *Tape[T]) Cursor() int { return t.cursor }

// Seed returns the Key the tape was derived from.
func (t *Tape[T]) Seed() Key { return t.seed }

// ReadNext returns the next Word in the stream and advances the cursor.
// Reading past the end is a protocol invariant violation — it can only
// happen if a circuit's NumOfMulGates under-counts its own tape
// consumption — never a condition on honest inputs.
func (t *Tape[T]) ReadNext() (word.Word[T], error) {
	if t.cursor >= len(t.buffer) {
		return word.Word[T]{}, common.ErrTapeExhausted
	}
	w := t.buffer[t.cursor]
	t.cursor++
	return w, nil
}
