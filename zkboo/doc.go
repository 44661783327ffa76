// Package zkboo assembles the gadget, circuit, commitment and fiatshamir
// packages into the end-to-end non-interactive proof system of spec
// sections 4.8-4.9: Prover.Prove builds N parallel repetitions of the
// (2,3)-decomposition and opens two of three parties per repetition under a
// Fiat-Shamir-derived challenge; Verifier.Verify replays those openings and
// checks every commitment, message and output-reconstruction invariant.
//
// Grounded on the teacher's bbs/proof_manager.go (bounded-concurrency
// repetition orchestration via a worker pool) and original_source/src/{
// prover.rs, verifier.rs} (not present in the retrieved source, reconstructed
// from circuit.rs's test harness calls to Prover::prove_repetition,
// Prover::prove and Verifier::verify/reconstruct).
package zkboo
