package zkboo

import (
	"fmt"

	"github.com/anupsv/zkboo/circuit"
	"github.com/anupsv/zkboo/commitment"
	"github.com/anupsv/zkboo/fiatshamir"
	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/internal/pool"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/word"
)

// Verifier checks proofs against a fixed circuit and soundness target.
type Verifier[T word.Unsigned] struct {
	Circuit        circuit.Circuit[T]
	Sigma          float64
	MaxConcurrency int
}

// NewVerifier constructs a Verifier with the package's default concurrency.
func NewVerifier[T word.Unsigned](c circuit.Circuit[T], sigma float64) *Verifier[T] {
	return &Verifier[T]{Circuit: c, Sigma: sigma, MaxConcurrency: common.DefaultMaxConcurrency}
}

// Verify checks that proof attests to claimedOutput under v.Circuit and
// v.Sigma, returning nil only if every repetition's commitments, replayed
// messages and output reconstruction are all consistent.
func (v *Verifier[T]) Verify(proof *Proof[T], claimedOutput []word.Word[T]) error {
	n := ComputeN(v.Sigma)
	if proof.N != n || len(proof.Repetitions) != n {
		return fmt.Errorf("zkboo: %w: expected %d repetitions, proof has %d", common.ErrInvalidParameter, n, len(proof.Repetitions))
	}
	if !wordsEqual(proof.Output, claimedOutput) {
		return fmt.Errorf("zkboo: %w", common.ErrOutputMismatch)
	}

	transcript := make([][]byte, 0, 3*n)
	for _, rep := range proof.Repetitions {
		transcript = append(transcript, rep.Commitments[0], rep.Commitments[1], rep.Commitments[2])
	}
	challenges, err := fiatshamir.Challenges(transcript, n)
	if err != nil {
		return err
	}

	workers := pool.New(v.MaxConcurrency)
	return workers.Run(n, func(i int) error {
		rep := proof.Repetitions[i]
		if rep.Hidden != challenges[i] {
			return fmt.Errorf("zkboo: repetition %d: %w", i, common.ErrChallengeMismatch)
		}
		if err := v.verifyRepetition(rep, claimedOutput); err != nil {
			return fmt.Errorf("zkboo: repetition %d: %w", i, err)
		}
		return nil
	})
}

func (v *Verifier[T]) verifyRepetition(rep Repetition[T], claimedOutput []word.Word[T]) error {
	pIdx, pNextIdx := rep.openedIndices()
	tapeLen := v.Circuit.NumOfMulGates()

	pNextTape, err := tape.New[T](rep.Seeds[1], tapeLen)
	if err != nil {
		return err
	}
	pNextView := rep.Views[1].toView()
	pNext := party.FromTapeAndView(pNextTape, pNextView)
	if !commitment.Verify(rep.Seeds[1], pNextView, rep.Commitments[pNextIdx]) {
		return common.ErrCommitmentMismatch
	}

	p, err := party.New[T](rep.Seeds[0], tapeLen, rep.Views[0].InputShare)
	if err != nil {
		return err
	}

	outP, outPNext, err := v.Circuit.SimulateTwoParties(p, pNext)
	if err != nil {
		return err
	}

	if !wordsEqual(p.View.Messages, rep.Views[0].Messages) {
		return common.ErrMpcMessageMismatch
	}
	if !commitment.Verify(rep.Seeds[0], p.View, rep.Commitments[pIdx]) {
		return common.ErrCommitmentMismatch
	}

	reconstructed := make([]word.Word[T], len(claimedOutput))
	for i := range reconstructed {
		reconstructed[i] = outP[i].Xor(outPNext[i]).Xor(rep.HiddenOutput[i])
	}
	if !wordsEqual(reconstructed, claimedOutput) {
		return common.ErrOutputReconstructionMismatch
	}

	return nil
}

func wordsEqual[T word.Unsigned](a, b []word.Word[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
