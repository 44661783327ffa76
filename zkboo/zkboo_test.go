package zkboo

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/anupsv/zkboo/circuit"
	"github.com/anupsv/zkboo/word"
)

func TestComputeNMatchesKnownValues(t *testing.T) {
	if n := ComputeN(40); n != 69 {
		t.Fatalf("ComputeN(40): got %d want 69", n)
	}
	if n := ComputeN(80); n != 137 {
		t.Fatalf("ComputeN(80): got %d want 137", n)
	}
}

func TestToyCircuitProveVerifyAccepts(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestAddModKCircuitProveVerifyAccepts(t *testing.T) {
	c := circuit.AddModK[uint32]{K: word.New[uint32](3490903)}
	input := []word.Word[uint32]{word.New[uint32](4294)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestChCircuitProveVerifyAccepts(t *testing.T) {
	c := circuit.Ch{}
	input := []word.Word[uint32]{word.New[uint32](381321), word.New[uint32](32131), word.New[uint32](328131)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestMajCircuitProveVerifyAccepts(t *testing.T) {
	c := circuit.Maj{}
	input := []word.Word[uint32]{word.New[uint32](381321), word.New[uint32](32131), word.New[uint32](328131)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestFinalDigestCircuitProveVerifyAccepts(t *testing.T) {
	c := circuit.FinalDigest{}
	input := make([]word.Word[uint32], 8)
	for i := range input {
		input[i] = word.New[uint32](uint32(i*7919 + 13))
	}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}
	proof.Repetitions[0].Commitments[0][0] ^= 0xFF

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err == nil {
		t.Fatalf("expected rejection of tampered commitment")
	}
}

func TestVerifyRejectsSwappedOpenedView(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}
	proof.Repetitions[0].Views[0], proof.Repetitions[1].Views[0] = proof.Repetitions[1].Views[0], proof.Repetitions[0].Views[0]

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err == nil {
		t.Fatalf("expected rejection of swapped opened view")
	}
}

func TestVerifyRejectsFlippedOutput(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	wrongOutput := c.Compute(input)
	wrongOutput[0] = wrongOutput[0].Xor(word.New[uint32](1))

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, wrongOutput); err == nil {
		t.Fatalf("expected rejection of mismatched claimed output")
	}
}

func TestVerifyRejectsWrongRepetitionCount(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}
	proof.Repetitions = proof.Repetitions[:len(proof.Repetitions)-1]
	proof.N = len(proof.Repetitions)

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(proof, c.Compute(input)); err == nil {
		t.Fatalf("expected rejection of truncated repetition count")
	}
}

func TestProofEncodeDecodeRoundTrip(t *testing.T) {
	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}

	prover := NewProver[uint32](c, 40, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		t.Fatal(err)
	}

	encoded := proof.Encode()
	decoded, err := Decode[uint32](encoded)
	if err != nil {
		t.Fatal(err)
	}

	verifier := NewVerifier[uint32](c, 40)
	if err := verifier.Verify(decoded, c.Compute(input)); err != nil {
		t.Fatalf("decoded proof should still verify: %v", err)
	}
	if !bytes.Equal(encoded, decoded.Encode()) {
		t.Fatalf("re-encoding a decoded proof should round-trip byte-for-byte")
	}
}
