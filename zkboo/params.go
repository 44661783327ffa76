package zkboo

import (
	"math"

	"github.com/anupsv/zkboo/internal/common"
)

// ComputeN returns the number of repetitions needed for sigma bits of
// soundness error: each repetition an unbounded prover avoids detection
// with probability at most 2/3, so N repetitions bound the cheating
// probability by (2/3)^N = 2^-sigma.
func ComputeN(sigma float64) int {
	return int(math.Ceil(sigma / common.SoundnessErrorBits))
}
