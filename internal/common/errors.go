package common

import "errors"

// Verification-time errors. Every one of these causes Verify to reject; they
// are kept distinct for debuggability even though the caller-visible result
// is a binary accept/reject.
var (
	// ErrCommitmentMismatch is returned when a recomputed commitment
	// disagrees with the one carried in the proof.
	ErrCommitmentMismatch = errors.New("zkboo: commitment mismatch")

	// ErrChallengeMismatch is returned when the Fiat-Shamir challenge
	// recomputed from the proof's commitments disagrees with the revealed
	// opening pattern.
	ErrChallengeMismatch = errors.New("zkboo: challenge mismatch")

	// ErrOutputReconstructionMismatch is returned when the three
	// per-repetition party outputs do not XOR to the declared output.
	ErrOutputReconstructionMismatch = errors.New("zkboo: output reconstruction mismatch")

	// ErrMpcMessageMismatch is returned when a verify-side gadget replay
	// produces a broadcast inconsistent with the opened view. It is
	// subsumed by ErrCommitmentMismatch but is checked before the
	// commitment because the comparison is cheap.
	ErrMpcMessageMismatch = errors.New("zkboo: mpc message mismatch")

	// ErrMalformedProof is returned when structural validation of a proof
	// blob fails before any cryptographic check runs.
	ErrMalformedProof = errors.New("zkboo: malformed proof")
)

// Caller-side errors.
var (
	// ErrOutputMismatch is returned by Verify when the output recorded in
	// the proof does not equal the claimed output passed to Verify. Prove
	// does not return it: Prove records the circuit's plaintext evaluation
	// of its input as the proof's output and compares it against no
	// caller-supplied value.
	ErrOutputMismatch = errors.New("zkboo: circuit output does not match claimed y")

	// ErrInvalidParameter is returned by Verify when the proof's repetition
	// count differs from the count the verifier's soundness target gives.
	// Nothing else (circuit, input length, security parameter) is
	// validated against it.
	ErrInvalidParameter = errors.New("zkboo: invalid parameter")

	// ErrMismatchedLengths flags inputs whose lengths should agree but
	// don't (e.g. an input share shorter than the circuit expects).
	ErrMismatchedLengths = errors.New("zkboo: mismatched lengths")
)

// Tape/view invariant violations. On honest inputs these never trigger; they
// exist to catch protocol bugs (a gadget over-reading a tape or view) rather
// than to handle expected runtime conditions.
var (
	// ErrTapeExhausted is returned when a read is attempted past the end
	// of a party's pre-expanded random tape.
	ErrTapeExhausted = errors.New("zkboo: tape exhausted")

	// ErrViewExhausted is returned when a read is attempted past the end
	// of an opened view's message sequence.
	ErrViewExhausted = errors.New("zkboo: view exhausted")
)
