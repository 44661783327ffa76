package gadget

import (
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// SHA256IV is the eight 32-bit initialization words of SHA-256 (FIPS
// 180-4 section 5.3.3), the public constants AddModK folds against in
// FinalDigest.
var SHA256IV = [8]word.Word[uint32]{
	word.New[uint32](0x6a09e667),
	word.New[uint32](0xbb67ae85),
	word.New[uint32](0x3c6ef372),
	word.New[uint32](0xa54ff53a),
	word.New[uint32](0x510e527f),
	word.New[uint32](0x9b05688c),
	word.New[uint32](0x1f83d9ab),
	word.New[uint32](0x5be0cd19),
}

// BigSigma0 and BigSigma1 are SHA-256's compression-round rotation
// combinations (Σ0, Σ1): free gates, no tape or view interaction.
func BigSigma0[T word.Unsigned](a Triple[T]) Triple[T] {
	return Xor(Xor(RotateRight(a, 2), RotateRight(a, 13)), RotateRight(a, 22))
}

func BigSigma1[T word.Unsigned](e Triple[T]) Triple[T] {
	return Xor(Xor(RotateRight(e, 6), RotateRight(e, 11)), RotateRight(e, 25))
}

// SmallSigma0 and SmallSigma1 are the message-schedule combinations (σ0,
// σ1): likewise free.
func SmallSigma0[T word.Unsigned](x Triple[T]) Triple[T] {
	return Xor(Xor(RotateRight(x, 7), RotateRight(x, 18)), ShiftRight(x, 3))
}

func SmallSigma1[T word.Unsigned](x Triple[T]) Triple[T] {
	return Xor(Xor(RotateRight(x, 17), RotateRight(x, 19)), ShiftRight(x, 10))
}

// Ch is the compression-round choice function: (e and f) xor ((not e) and
// g), rewritten as e and (f xor g) xor g so it costs a single And gate
// rather than two.
func Ch[T word.Unsigned](e, f, g Triple[T], p1, p2, p3 *party.Party[T]) (Triple[T], error) {
	fXorG := Xor(f, g)
	lhs, err := And(e, fXorG, p1, p2, p3)
	if err != nil {
		return Triple[T]{}, err
	}
	return Xor(lhs, g), nil
}

// ChVerify replays Ch for the two opened parties.
func ChVerify[T word.Unsigned](e, f, g Pair[T], p, pNext *party.Party[T]) (Pair[T], error) {
	fXorG := XorPair(f, g)
	lhs, err := AndVerify(e, fXorG, p, pNext)
	if err != nil {
		return Pair[T]{}, err
	}
	return XorPair(lhs, g), nil
}

// Maj is the compression-round majority function: (a and b) xor (a and c)
// xor (b and c), rewritten as (a xor b) and (a xor c) xor a so it costs a
// single And gate.
func Maj[T word.Unsigned](a, b, c Triple[T], p1, p2, p3 *party.Party[T]) (Triple[T], error) {
	aXorB := Xor(a, b)
	aXorC := Xor(a, c)
	lhs, err := And(aXorB, aXorC, p1, p2, p3)
	if err != nil {
		return Triple[T]{}, err
	}
	return Xor(lhs, a), nil
}

// MajVerify replays Maj for the two opened parties.
func MajVerify[T word.Unsigned](a, b, c Pair[T], p, pNext *party.Party[T]) (Pair[T], error) {
	aXorB := XorPair(a, b)
	aXorC := XorPair(a, c)
	lhs, err := AndVerify(aXorB, aXorC, p, pNext)
	if err != nil {
		return Pair[T]{}, err
	}
	return XorPair(lhs, a), nil
}

// Temp2 is the compression round's "T2 := Σ0(a) + Maj(a,b,c)" term:
// a single AddMod against the two already-computed wire values.
func Temp2[T word.Unsigned](s0, maj Triple[T], p1, p2, p3 *party.Party[T]) (Triple[T], error) {
	return AddMod(s0, maj, p1, p2, p3)
}

// Temp2Verify replays Temp2 for the two opened parties.
func Temp2Verify[T word.Unsigned](s0, maj Pair[T], p, pNext *party.Party[T]) (Pair[T], error) {
	return AddModVerify(s0, maj, p, pNext)
}

// Temp1 is the compression round's "T1 := h + Σ1(e) + Ch(e,f,g) + k + w"
// term: the same single-operand accumulation pattern as Temp2, chained
// across all four operands via three AddMod gates and one AddModK gate for
// the round's public constant k.
func Temp1[T word.Unsigned](h, bigSigma1, ch Triple[T], k word.Word[T], w Triple[T], p1, p2, p3 *party.Party[T]) (Triple[T], error) {
	sum, err := AddMod(h, bigSigma1, p1, p2, p3)
	if err != nil {
		return Triple[T]{}, err
	}
	sum, err = AddMod(sum, ch, p1, p2, p3)
	if err != nil {
		return Triple[T]{}, err
	}
	sum, err = AddModK(sum, k, p1, p2, p3)
	if err != nil {
		return Triple[T]{}, err
	}
	return AddMod(sum, w, p1, p2, p3)
}

// Temp1Verify replays Temp1 for the two opened parties.
func Temp1Verify[T word.Unsigned](h, bigSigma1, ch Pair[T], k word.Word[T], w Pair[T], p, pNext *party.Party[T]) (Pair[T], error) {
	sum, err := AddModVerify(h, bigSigma1, p, pNext)
	if err != nil {
		return Pair[T]{}, err
	}
	sum, err = AddModVerify(sum, ch, p, pNext)
	if err != nil {
		return Pair[T]{}, err
	}
	sum, err = AddModVerifyK(sum, k, p, pNext)
	if err != nil {
		return Pair[T]{}, err
	}
	return AddModVerify(sum, w, p, pNext)
}

// FinalDigest adds the eight SHA-256 IV words onto the final compression
// state, one AddModK gate per word.
func FinalDigest(compression [8]Triple[uint32], p1, p2, p3 *party.Party[uint32]) ([8]Triple[uint32], error) {
	var out [8]Triple[uint32]
	for i := 0; i < 8; i++ {
		o, err := AddModK(compression[i], SHA256IV[i], p1, p2, p3)
		if err != nil {
			return [8]Triple[uint32]{}, err
		}
		out[i] = o
	}
	return out, nil
}

// FinalDigestVerify replays FinalDigest for the two opened parties.
func FinalDigestVerify(compression [8]Pair[uint32], p, pNext *party.Party[uint32]) ([8]Pair[uint32], error) {
	var out [8]Pair[uint32]
	for i := 0; i < 8; i++ {
		o, err := AddModVerifyK(compression[i], SHA256IV[i], p, pNext)
		if err != nil {
			return [8]Pair[uint32]{}, err
		}
		out[i] = o
	}
	return out, nil
}
