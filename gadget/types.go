package gadget

import "github.com/anupsv/zkboo/word"

// Triple holds one value share per party of a three-party (2,3)-decomposition.
type Triple[T word.Unsigned] struct {
	P1, P2, P3 word.Word[T]
}

// Pair holds one value share per party of a two-party verification replay:
// the opened party p and its cyclic successor p_next.
type Pair[T word.Unsigned] struct {
	P, PNext word.Word[T]
}
