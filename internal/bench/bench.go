package bench

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/anupsv/zkboo/circuit"
	"github.com/anupsv/zkboo/word"
	"github.com/anupsv/zkboo/zkboo"
)

// Config selects which soundness targets to benchmark and how many trials
// to average per target.
type Config struct {
	SigmaValues []float64
	Trials      int
}

// Result is one sigma target's averaged measurements.
type Result struct {
	Sigma          float64
	N              int
	ProveDuration  time.Duration
	VerifyDuration time.Duration
	ProofBytes     int
}

// Run benchmarks the Toy circuit (spec's minimal two-And-gate circuit)
// across cfg.SigmaValues, averaging cfg.Trials runs per target.
func Run(cfg Config) ([]Result, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("bench: trials must be at least 1")
	}

	c := circuit.Toy[uint32]{}
	input := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](4), word.New[uint32](7), word.New[uint32](2), word.New[uint32](9)}
	output := c.Compute(input)

	results := make([]Result, len(cfg.SigmaValues))
	for i, sigma := range cfg.SigmaValues {
		var proveTotal, verifyTotal time.Duration
		var proofBytes int

		for t := 0; t < cfg.Trials; t++ {
			prover := zkboo.NewProver[uint32](c, sigma, rand.Reader)

			start := time.Now()
			proof, err := prover.Prove(input)
			proveTotal += time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("bench: sigma=%v trial=%d: %w", sigma, t, err)
			}

			proofBytes += len(proof.Encode())

			verifier := zkboo.NewVerifier[uint32](c, sigma)
			start = time.Now()
			if err := verifier.Verify(proof, output); err != nil {
				return nil, fmt.Errorf("bench: sigma=%v trial=%d: verify: %w", sigma, t, err)
			}
			verifyTotal += time.Since(start)
		}

		results[i] = Result{
			Sigma:          sigma,
			N:              zkboo.ComputeN(sigma),
			ProveDuration:  proveTotal / time.Duration(cfg.Trials),
			VerifyDuration: verifyTotal / time.Duration(cfg.Trials),
			ProofBytes:     proofBytes / cfg.Trials,
		}
	}

	return results, nil
}
