package gadget

import "github.com/anupsv/zkboo/word"

// Xor is the free linear gate: each party XORs its own shares of x and y,
// with no tape consumption and no view message. Used directly by both the
// prover's three-party evaluation and the verifier's two-party replay,
// since an honest XOR output share never needs to be checked against a
// broadcast message — there isn't one.
func Xor[T word.Unsigned](x, y Triple[T]) Triple[T] {
	return Triple[T]{
		P1: x.P1.Xor(y.P1),
		P2: x.P2.Xor(y.P2),
		P3: x.P3.Xor(y.P3),
	}
}

// XorPair is Xor restricted to the two parties visible during verification.
func XorPair[T word.Unsigned](x, y Pair[T]) Pair[T] {
	return Pair[T]{
		P:     x.P.Xor(y.P),
		PNext: x.PNext.Xor(y.PNext),
	}
}

// Not is the free linear complement gate.
func Not[T word.Unsigned](x Triple[T]) Triple[T] {
	return Triple[T]{P1: x.P1.Not(), P2: x.P2.Not(), P3: x.P3.Not()}
}

// RotateLeft and the other bit-permutation gates below are free: they
// operate independently per party with no tape or view interaction.
func RotateLeft[T word.Unsigned](x Triple[T], k int) Triple[T] {
	return Triple[T]{P1: x.P1.RotateLeft(k), P2: x.P2.RotateLeft(k), P3: x.P3.RotateLeft(k)}
}

func RotateRight[T word.Unsigned](x Triple[T], k int) Triple[T] {
	return Triple[T]{P1: x.P1.RotateRight(k), P2: x.P2.RotateRight(k), P3: x.P3.RotateRight(k)}
}

func ShiftRight[T word.Unsigned](x Triple[T], k int) Triple[T] {
	return Triple[T]{P1: x.P1.ShiftRight(k), P2: x.P2.ShiftRight(k), P3: x.P3.ShiftRight(k)}
}
