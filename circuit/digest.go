package circuit

import (
	"github.com/anupsv/zkboo/gadget"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// FinalDigest adds the eight SHA-256 IV words onto an eight-word
// compression-round output, producing the final 256-bit digest.
//
// Grounded on original_source/src/gadgets/sha256/final_digest.rs's digest
// test circuit.
type FinalDigest struct{}

func (FinalDigest) Compute(input []word.Word[uint32]) []word.Word[uint32] {
	if len(input) != 8 {
		panic("circuit: final digest circuit requires exactly 8 inputs")
	}
	out := make([]word.Word[uint32], 8)
	for i := range out {
		out[i] = gadget.Adder(gadget.SHA256IV[i], input[i])
	}
	return out
}

func (FinalDigest) ComputeDecomposition(p1, p2, p3 *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], []word.Word[uint32], error) {
	var compression [8]gadget.Triple[uint32]
	for i := range compression {
		compression[i] = gadget.Triple[uint32]{
			P1: p1.View.InputShare[i],
			P2: p2.View.InputShare[i],
			P3: p3.View.InputShare[i],
		}
	}
	out, err := gadget.FinalDigest(compression, p1, p2, p3)
	if err != nil {
		return nil, nil, nil, err
	}
	out1 := make([]word.Word[uint32], 8)
	out2 := make([]word.Word[uint32], 8)
	out3 := make([]word.Word[uint32], 8)
	for i := range out {
		out1[i], out2[i], out3[i] = out[i].P1, out[i].P2, out[i].P3
	}
	return out1, out2, out3, nil
}

func (FinalDigest) SimulateTwoParties(p, pNext *party.Party[uint32]) ([]word.Word[uint32], []word.Word[uint32], error) {
	var compression [8]gadget.Pair[uint32]
	for i := range compression {
		compression[i] = gadget.Pair[uint32]{
			P:     p.View.InputShare[i],
			PNext: pNext.View.InputShare[i],
		}
	}
	out, err := gadget.FinalDigestVerify(compression, p, pNext)
	if err != nil {
		return nil, nil, err
	}
	outP := make([]word.Word[uint32], 8)
	outPNext := make([]word.Word[uint32], 8)
	for i := range out {
		outP[i], outPNext[i] = out[i].P, out[i].PNext
	}
	return outP, outPNext, nil
}

func (FinalDigest) PartyInputLen() int  { return 8 }
func (FinalDigest) PartyOutputLen() int { return 8 }
func (FinalDigest) NumOfMulGates() int  { return 8 }
