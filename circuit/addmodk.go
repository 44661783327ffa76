package circuit

import (
	"github.com/anupsv/zkboo/gadget"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// AddModK computes x + K mod 2^bitlen for a fixed public constant K, the
// minimal circuit exercising the ripple-carry AddMod gate.
//
// Grounded on original_source/src/gadgets/add_mod.rs's AddModKCircuit test.
type AddModK[T word.Unsigned] struct {
	K word.Word[T]
}

func (c AddModK[T]) Compute(input []word.Word[T]) []word.Word[T] {
	if len(input) != 1 {
		panic("circuit: add_mod_k circuit requires exactly 1 input")
	}
	return []word.Word[T]{gadget.Adder(input[0], c.K)}
}

func (c AddModK[T]) ComputeDecomposition(p1, p2, p3 *party.Party[T]) ([]word.Word[T], []word.Word[T], []word.Word[T], error) {
	x := gadget.Triple[T]{P1: p1.View.InputShare[0], P2: p2.View.InputShare[0], P3: p3.View.InputShare[0]}
	out, err := gadget.AddModK(x, c.K, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}
	return []word.Word[T]{out.P1}, []word.Word[T]{out.P2}, []word.Word[T]{out.P3}, nil
}

func (c AddModK[T]) SimulateTwoParties(p, pNext *party.Party[T]) ([]word.Word[T], []word.Word[T], error) {
	x := gadget.Pair[T]{P: p.View.InputShare[0], PNext: pNext.View.InputShare[0]}
	out, err := gadget.AddModVerifyK(x, c.K, p, pNext)
	if err != nil {
		return nil, nil, err
	}
	return []word.Word[T]{out.P}, []word.Word[T]{out.PNext}, nil
}

func (AddModK[T]) PartyInputLen() int  { return 1 }
func (AddModK[T]) PartyOutputLen() int { return 1 }
func (AddModK[T]) NumOfMulGates() int  { return 1 }
