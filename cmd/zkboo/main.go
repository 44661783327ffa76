// Command zkboo proves and verifies knowledge of a preimage under the toy
// circuit (x1 xor x2) and (x3 xor x4) and x5 using a non-interactive
// MPC-in-the-head proof.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anupsv/zkboo/circuit"
	"github.com/anupsv/zkboo/word"
	"github.com/anupsv/zkboo/zkboo"
)

func main() {
	mode := flag.String("mode", "prove", "prove or verify")
	inputFlag := flag.String("input", "5,4,7,2,9", "comma-separated uint32 inputs (prove mode; verify mode computes the claimed output from them)")
	sigma := flag.Float64("sigma", 80, "soundness target in bits")
	proofPath := flag.String("proof", "proof.bin", "path to read/write the proof")

	flag.Parse()

	input, err := parseInput(*inputFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := circuit.Toy[uint32]{}

	switch *mode {
	case "prove":
		if err := runProve(c, input, *sigma, *proofPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error proving: %v\n", err)
			os.Exit(1)
		}
	case "verify":
		if err := runVerify(c, input, *sigma, *proofPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error verifying: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q, want prove or verify\n", *mode)
		os.Exit(1)
	}
}

func runProve(c circuit.Toy[uint32], input []word.Word[uint32], sigma float64, path string) error {
	prover := zkboo.NewProver[uint32](c, sigma, rand.Reader)
	proof, err := prover.Prove(input)
	if err != nil {
		return err
	}
	encoded := proof.Encode()
	if err := os.WriteFile(path, encoded, 0o600); err != nil {
		return err
	}
	fmt.Printf("Wrote %d-byte proof (N=%d repetitions) to %s\n", len(encoded), proof.N, path)
	return nil
}

func runVerify(c circuit.Toy[uint32], input []word.Word[uint32], sigma float64, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	proof, err := zkboo.Decode[uint32](raw)
	if err != nil {
		return err
	}
	verifier := zkboo.NewVerifier[uint32](c, sigma)
	claimed := c.Compute(input)
	if err := verifier.Verify(proof, claimed); err != nil {
		return err
	}
	fmt.Println("Proof accepted.")
	return nil
}

func parseInput(s string) ([]word.Word[uint32], error) {
	parts := strings.Split(s, ",")
	out := make([]word.Word[uint32], 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q: %w", p, err)
		}
		out = append(out, word.New[uint32](uint32(v)))
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("toy circuit requires exactly 5 inputs, got %d", len(out))
	}
	return out, nil
}
