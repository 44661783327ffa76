package circuit

import (
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/word"
)

// Circuit is a boolean circuit over GF(2) words, expressed twice: once as a
// plain function (Compute, for the verifier to know what output the proof
// claims) and once as a (2,3)-decomposition built from gadget package gates
// (ComputeDecomposition, for the prover) together with its two-party replay
// (SimulateTwoParties, for the verifier).
type Circuit[T word.Unsigned] interface {
	// Compute evaluates the circuit in the clear.
	Compute(input []word.Word[T]) []word.Word[T]

	// ComputeDecomposition evaluates the circuit across three parties
	// simultaneously, each reading its own tape and writing its own view,
	// returning each party's output share.
	ComputeDecomposition(p1, p2, p3 *party.Party[T]) (out1, out2, out3 []word.Word[T], err error)

	// SimulateTwoParties replays ComputeDecomposition for the two opened
	// parties only, returning their output shares for comparison against
	// the claimed circuit output.
	SimulateTwoParties(p, pNext *party.Party[T]) (out, outNext []word.Word[T], err error)

	// PartyInputLen is the number of input Words each party's view carries.
	PartyInputLen() int

	// PartyOutputLen is the number of output Words each party produces.
	PartyOutputLen() int

	// NumOfMulGates is the number of non-linear gates the circuit
	// evaluates, and therefore the tape length each party needs.
	NumOfMulGates() int
}

// ReconstructOutput XORs three parties' output shares into the claimed
// circuit output (additive secret sharing over GF(2): the true wire value
// is the XOR of all three shares).
func ReconstructOutput[T word.Unsigned](o1, o2, o3 []word.Word[T]) []word.Word[T] {
	out := make([]word.Word[T], len(o1))
	for i := range out {
		out[i] = o1[i].Xor(o2[i]).Xor(o3[i])
	}
	return out
}
