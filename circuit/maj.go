package circuit

import (
	"github.com/anupsv/zkboo/gadget"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// Maj computes the SHA-256 compression-round majority function
// (a and b) xor (a and c) xor (b and c) over three inputs a, b, c.
//
// Grounded on original_source/src/gadgets/sha256/compression/maj.rs's
// MajCircuit test.
type Maj struct{}

func (Maj) Compute(input []word.Word[uint32]) []word.Word[uint32] {
	if len(input) != 3 {
		panic("circuit: maj circuit requires exactly 3 inputs")
	}
	a, b, c := input[0], input[1], input[2]
	return []word.Word[uint32]{a.And(b).Xor(a.And(c)).Xor(b.And(c))}
}

func (Maj) ComputeDecomposition(p1, p2, p3 *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], []word.Word[uint32], error) {
	a := gadget.Triple[uint32]{P1: p1.View.InputShare[0], P2: p2.View.InputShare[0], P3: p3.View.InputShare[0]}
	b := gadget.Triple[uint32]{P1: p1.View.InputShare[1], P2: p2.View.InputShare[1], P3: p3.View.InputShare[1]}
	c := gadget.Triple[uint32]{P1: p1.View.InputShare[2], P2: p2.View.InputShare[2], P3: p3.View.InputShare[2]}

	out, err := gadget.Maj(a, b, c, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}
	return []word.Word[uint32]{out.P1}, []word.Word[uint32]{out.P2}, []word.Word[uint32]{out.P3}, nil
}

func (Maj) SimulateTwoParties(p, pNext *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], error) {
	a := gadget.Pair[uint32]{P: p.View.InputShare[0], PNext: pNext.View.InputShare[0]}
	b := gadget.Pair[uint32]{P: p.View.InputShare[1], PNext: pNext.View.InputShare[1]}
	c := gadget.Pair[uint32]{P: p.View.InputShare[2], PNext: pNext.View.InputShare[2]}

	out, err := gadget.MajVerify(a, b, c, p, pNext)
	if err != nil {
		return nil, nil, err
	}
	return []word.Word[uint32]{out.P}, []word.Word[uint32]{out.PNext}, nil
}

func (Maj) PartyInputLen() int  { return 3 }
func (Maj) PartyOutputLen() int { return 1 }
func (Maj) NumOfMulGates() int  { return 1 }
