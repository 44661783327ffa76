package circuit

import (
	"github.com/anupsv/zkboo/gadget"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// Toy computes (x1 xor x2) and (x3 xor x4) and x5, the minimal circuit
// exercising both a linear gate chain and two dependent And gates.
//
// Grounded on original_source/src/circuit.rs's SimpleCircuit1.
type Toy[T word.Unsigned] struct{}

func (Toy[T]) Compute(input []word.Word[T]) []word.Word[T] {
	if len(input) != 5 {
		panic("circuit: toy circuit requires exactly 5 inputs")
	}
	out := input[0].Xor(input[1]).And(input[2].Xor(input[3])).And(input[4])
	return []word.Word[T]{out}
}

func (Toy[T]) ComputeDecomposition(p1, p2, p3 *party.Party[T]) ([]word.Word[T], []word.Word[T], []word.Word[T], error) {
	x := gadget.Triple[T]{P1: p1.View.InputShare[0], P2: p2.View.InputShare[0], P3: p3.View.InputShare[0]}
	y := gadget.Triple[T]{P1: p1.View.InputShare[1], P2: p2.View.InputShare[1], P3: p3.View.InputShare[1]}
	z := gadget.Triple[T]{P1: p1.View.InputShare[2], P2: p2.View.InputShare[2], P3: p3.View.InputShare[2]}
	w := gadget.Triple[T]{P1: p1.View.InputShare[3], P2: p2.View.InputShare[3], P3: p3.View.InputShare[3]}
	v := gadget.Triple[T]{P1: p1.View.InputShare[4], P2: p2.View.InputShare[4], P3: p3.View.InputShare[4]}

	a := gadget.Xor(x, y)
	b := gadget.Xor(z, w)

	ab, err := gadget.And(a, b, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}
	out, err := gadget.And(ab, v, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}

	return []word.Word[T]{out.P1}, []word.Word[T]{out.P2}, []word.Word[T]{out.P3}, nil
}

func (Toy[T]) SimulateTwoParties(p, pNext *party.Party[T]) ([]word.Word[T], []word.Word[T], error) {
	x := gadget.Pair[T]{P: p.View.InputShare[0], PNext: pNext.View.InputShare[0]}
	y := gadget.Pair[T]{P: p.View.InputShare[1], PNext: pNext.View.InputShare[1]}
	z := gadget.Pair[T]{P: p.View.InputShare[2], PNext: pNext.View.InputShare[2]}
	w := gadget.Pair[T]{P: p.View.InputShare[3], PNext: pNext.View.InputShare[3]}
	v := gadget.Pair[T]{P: p.View.InputShare[4], PNext: pNext.View.InputShare[4]}

	a := gadget.XorPair(x, y)
	b := gadget.XorPair(z, w)

	ab, err := gadget.AndVerify(a, b, p, pNext)
	if err != nil {
		return nil, nil, err
	}
	out, err := gadget.AndVerify(ab, v, p, pNext)
	if err != nil {
		return nil, nil, err
	}

	return []word.Word[T]{out.P}, []word.Word[T]{out.PNext}, nil
}

func (Toy[T]) PartyInputLen() int  { return 5 }
func (Toy[T]) PartyOutputLen() int { return 1 }
func (Toy[T]) NumOfMulGates() int  { return 2 }
