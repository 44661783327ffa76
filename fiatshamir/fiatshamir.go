package fiatshamir

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/anupsv/zkboo/commitment"
	"github.com/anupsv/zkboo/internal/common"
)

// rejectionThreshold is the largest multiple of 3 not exceeding 256: byte
// values at or above it are discarded so the surviving values map onto
// {0,1,2} with no residual bias. 256 mod 3 == 1, so exactly one byte value
// (255) is rejected, i.e. one draw in 256 on average.
const rejectionThreshold = 256 - (256 % 3)

// Challenges derives N values in {0,1,2} deterministically from the
// transcript of 3N view commitments (spec section 4.7): one challenge per
// repetition, selecting which party is hidden from the verifier.
//
// transcript should be every commitment from every repetition, concatenated
// in a fixed, canonical order so both prover and verifier derive identical
// challenges.
func Challenges(transcript [][]byte, n int) ([]int, error) {
	seed := hashTranscript(transcript)

	var key [chacha20.KeySize]byte
	copy(key[:], seed)
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("fiatshamir: constructing expansion cipher: %w", err)
	}

	challenges := make([]int, 0, n)
	buf := make([]byte, 64)
	pos := len(buf)
	for len(challenges) < n {
		if pos >= len(buf) {
			for i := range buf {
				buf[i] = 0
			}
			cipher.XORKeyStream(buf, buf)
			pos = 0
		}
		b := buf[pos]
		pos++
		if int(b) >= rejectionThreshold {
			continue
		}
		challenges = append(challenges, int(b)%3)
	}
	return challenges, nil
}

func hashTranscript(transcript [][]byte) []byte {
	h := commitment.Algorithm.New()
	h.Write([]byte(common.DSTFiatShamir))
	for _, c := range transcript {
		h.Write(c)
	}
	return h.Sum(nil)[:32]
}
