package gadget

import (
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// andShare is the binary multiplication gate from the ZKBoo construction
// (Giacomelli, Madsen, Orlandi, eprint 2016/163, section 5.1): the share of
// party i's AND output, masked by the XOR of i's and i+1's tape draws so
// that neither party alone learns anything about the other party's input.
//
// Applies bitwise across the full Word, generalizing the single-bit
// formula of original_source/src/gadgets/add_mod.rs's bit_and helper.
func andShare[T word.Unsigned](aP, bP, aPNext, bPNext, rP, rPNext word.Word[T]) word.Word[T] {
	return aP.And(bP).Xor(aP.And(bPNext)).Xor(aPNext.And(bP)).Xor(rP.Xor(rPNext))
}

// And is the single non-linear gate: one tape word per party, one broadcast
// message per party, computing the AND of x and y's per-party shares.
func And[T word.Unsigned](x, y Triple[T], p1, p2, p3 *party.Party[T]) (Triple[T], error) {
	r1, err := p1.ReadTape()
	if err != nil {
		return Triple[T]{}, err
	}
	r2, err := p2.ReadTape()
	if err != nil {
		return Triple[T]{}, err
	}
	r3, err := p3.ReadTape()
	if err != nil {
		return Triple[T]{}, err
	}

	o1 := andShare(x.P1, y.P1, x.P2, y.P2, r1, r2)
	o2 := andShare(x.P2, y.P2, x.P3, y.P3, r2, r3)
	o3 := andShare(x.P3, y.P3, x.P1, y.P1, r3, r1)

	p1.SendMsg(o1)
	p2.SendMsg(o2)
	p3.SendMsg(o3)

	return Triple[T]{P1: o1, P2: o2, P3: o3}, nil
}

// AndVerify replays And for the two opened parties p and p_next: p's output
// is recomputed live from its own tape draw and p_next's, checked later by
// comparing the view p.SendMsg records against the claimed view in the
// proof; p_next's output is read directly from its already-opened view,
// since the verifier does not hold the third party's share needed to
// recompute it.
func AndVerify[T word.Unsigned](x, y Pair[T], p, pNext *party.Party[T]) (Pair[T], error) {
	rP, err := p.ReadTape()
	if err != nil {
		return Pair[T]{}, err
	}
	rPNext, err := pNext.ReadTape()
	if err != nil {
		return Pair[T]{}, err
	}
	oPNext, err := pNext.ReadView()
	if err != nil {
		return Pair[T]{}, err
	}

	oP := andShare(x.P, y.P, x.PNext, y.PNext, rP, rPNext)
	p.SendMsg(oP)

	return Pair[T]{P: oP, PNext: oPNext}, nil
}
