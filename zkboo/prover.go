package zkboo

import (
	"fmt"
	"io"

	"github.com/anupsv/zkboo/circuit"
	"github.com/anupsv/zkboo/commitment"
	"github.com/anupsv/zkboo/fiatshamir"
	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/internal/pool"
	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/word"
)

// fullRepetition is the prover's internal, unopened record of one
// repetition: all three parties' seeds, views and output shares. Only
// after every repetition's commitments feed the Fiat-Shamir challenge does
// the prover know which party in each repetition to hide.
type fullRepetition[T word.Unsigned] struct {
	seeds       [3]tape.Key
	views       [3]*party.Party[T]
	outputs     [3][]word.Word[T]
	commitments [3][]byte
}

// Prover builds proofs for a fixed circuit and soundness target.
type Prover[T word.Unsigned] struct {
	Circuit        circuit.Circuit[T]
	Sigma          float64
	MaxConcurrency int
	RNG            io.Reader
}

// NewProver constructs a Prover with the package's default concurrency.
func NewProver[T word.Unsigned](c circuit.Circuit[T], sigma float64, rng io.Reader) *Prover[T] {
	return &Prover[T]{Circuit: c, Sigma: sigma, MaxConcurrency: common.DefaultMaxConcurrency, RNG: rng}
}

// Prove produces a non-interactive proof that the prover knows an input
// for which p.Circuit evaluates to the proof's Output, which Prove sets to
// p.Circuit.Compute(input). It takes no claimed output to check against.
func (p *Prover[T]) Prove(input []word.Word[T]) (*Proof[T], error) {
	n := ComputeN(p.Sigma)
	claimedOutput := p.Circuit.Compute(input)

	full := make([]fullRepetition[T], n)
	workers := pool.New(p.MaxConcurrency)
	err := workers.Run(n, func(i int) error {
		rep, err := p.runRepetition(input)
		if err != nil {
			return fmt.Errorf("zkboo: repetition %d: %w", i, err)
		}
		full[i] = rep
		return nil
	})
	if err != nil {
		return nil, err
	}

	challenges, err := fiatshamir.Challenges(commitmentTranscript(full), n)
	if err != nil {
		return nil, err
	}

	repetitions := make([]Repetition[T], n)
	for i, hidden := range challenges {
		repetitions[i] = openRepetition(full[i], hidden)
	}

	return &Proof[T]{N: n, Output: claimedOutput, Repetitions: repetitions}, nil
}

func (p *Prover[T]) runRepetition(input []word.Word[T]) (fullRepetition[T], error) {
	inputLen := p.Circuit.PartyInputLen()
	tapeLen := p.Circuit.NumOfMulGates()

	var seeds [3]tape.Key
	for i := range seeds {
		key, err := tape.GenerateKey(p.RNG)
		if err != nil {
			return fullRepetition[T]{}, err
		}
		seeds[i] = key
	}

	share1 := make([]word.Word[T], inputLen)
	share2 := make([]word.Word[T], inputLen)
	share3 := make([]word.Word[T], inputLen)
	for i := 0; i < inputLen; i++ {
		w1, err := word.Random[T](p.RNG)
		if err != nil {
			return fullRepetition[T]{}, err
		}
		w2, err := word.Random[T](p.RNG)
		if err != nil {
			return fullRepetition[T]{}, err
		}
		share1[i] = w1
		share2[i] = w2
		share3[i] = input[i].Xor(w1).Xor(w2)
	}
	shares := [3][]word.Word[T]{share1, share2, share3}

	var parties [3]*party.Party[T]
	for i := range parties {
		pt, err := party.New[T](seeds[i], tapeLen, shares[i])
		if err != nil {
			return fullRepetition[T]{}, err
		}
		parties[i] = pt
	}

	out1, out2, out3, err := p.Circuit.ComputeDecomposition(parties[0], parties[1], parties[2])
	if err != nil {
		return fullRepetition[T]{}, err
	}
	outputs := [3][]word.Word[T]{out1, out2, out3}

	var commitments [3][]byte
	for i := range commitments {
		commitments[i] = commitment.Commit(seeds[i], parties[i].View)
	}

	return fullRepetition[T]{seeds: seeds, views: parties, outputs: outputs, commitments: commitments}, nil
}

func openRepetition[T word.Unsigned](full fullRepetition[T], hidden int) Repetition[T] {
	pIdx := (hidden + 1) % 3
	pNextIdx := (hidden + 2) % 3

	return Repetition[T]{
		Commitments: full.commitments,
		Hidden:      hidden,
		Seeds:       [2]tape.Key{full.seeds[pIdx], full.seeds[pNextIdx]},
		Views: [2]OpenedView[T]{
			{InputShare: full.views[pIdx].View.InputShare, Messages: full.views[pIdx].View.Messages},
			{InputShare: full.views[pNextIdx].View.InputShare, Messages: full.views[pNextIdx].View.Messages},
		},
		HiddenOutput: full.outputs[hidden],
	}
}
