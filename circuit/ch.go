package circuit

import (
	"github.com/anupsv/zkboo/gadget"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// Ch computes the SHA-256 compression-round choice function
// (e and f) xor ((not e) and g) over three inputs e, f, g.
//
// Grounded on original_source/src/gadgets/sha256/compression/ch.rs's
// ChCircuit test.
type Ch struct{}

func (Ch) Compute(input []word.Word[uint32]) []word.Word[uint32] {
	if len(input) != 3 {
		panic("circuit: ch circuit requires exactly 3 inputs")
	}
	e, f, g := input[0], input[1], input[2]
	return []word.Word[uint32]{e.And(f).Xor(e.Not().And(g))}
}

func (Ch) ComputeDecomposition(p1, p2, p3 *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], []word.Word[uint32], error) {
	e := gadget.Triple[uint32]{P1: p1.View.InputShare[0], P2: p2.View.InputShare[0], P3: p3.View.InputShare[0]}
	f := gadget.Triple[uint32]{P1: p1.View.InputShare[1], P2: p2.View.InputShare[1], P3: p3.View.InputShare[1]}
	g := gadget.Triple[uint32]{P1: p1.View.InputShare[2], P2: p2.View.InputShare[2], P3: p3.View.InputShare[2]}

	out, err := gadget.Ch(e, f, g, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}
	return []word.Word[uint32]{out.P1}, []word.Word[uint32]{out.P2}, []word.Word[uint32]{out.P3}, nil
}

func (Ch) SimulateTwoParties(p, pNext *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], error) {
	e := gadget.Pair[uint32]{P: p.View.InputShare[0], PNext: pNext.View.InputShare[0]}
	f := gadget.Pair[uint32]{P: p.View.InputShare[1], PNext: pNext.View.InputShare[1]}
	g := gadget.Pair[uint32]{P: p.View.InputShare[2], PNext: pNext.View.InputShare[2]}

	out, err := gadget.ChVerify(e, f, g, p, pNext)
	if err != nil {
		return nil, nil, err
	}
	return []word.Word[uint32]{out.P}, []word.Word[uint32]{out.PNext}, nil
}

func (Ch) PartyInputLen() int  { return 3 }
func (Ch) PartyOutputLen() int { return 1 }
func (Ch) NumOfMulGates() int  { return 1 }
