package commitment

import (
	"github.com/consensys/gnark-crypto/hash"

	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/internal/pool"
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/view"
	"github.com/anupsv/zkboo/word"
)

// Algorithm selects the concrete hash function backing Commit and the
// Fiat-Shamir transform. KECCAK_256 is the default: it is what every
// ZKBoo-family reference implementation in the pack's original_source
// benchmarks against.
var Algorithm = hash.KECCAK_256

// Commit computes H(domain || key || encode(view)), binding a party's seed
// and its full message transcript into one digest (spec section 4.6).
func Commit[T word.Unsigned](key tape.Key, v *view.View[T]) []byte {
	buf := pool.Default.Get(v.EncodeSize())
	defer pool.Default.Put(buf)
	buf = v.EncodeInto(buf[:v.EncodeSize()])

	h := Algorithm.New()
	h.Write([]byte(common.DSTCommitment))
	h.Write(key.Bytes())
	h.Write(buf)
	return h.Sum(nil)
}

// Verify recomputes the commitment and compares it against the claimed
// digest in constant time is not required here: the comparison result is
// public (the verifier's own accept/reject decision), so a simple byte
// comparison is sufficient.
func Verify[T word.Unsigned](key tape.Key, v *view.View[T], claimed []byte) bool {
	got := Commit(key, v)
	if len(got) != len(claimed) {
		return false
	}
	for i := range got {
		if got[i] != claimed[i] {
			return false
		}
	}
	return true
}
