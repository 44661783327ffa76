package common

// Domain separation tags. Every hash invocation in the protocol is tagged so
// that a commitment digest can never collide in purpose with a Fiat-Shamir
// digest, even if both happen to hash the same bytes.
const (
	// DSTCommitment tags the hash of a party's key and view.
	DSTCommitment = "ZKBOO_COMMITMENT_V1"

	// DSTFiatShamir tags the hash of the vector of repetition commitments
	// that seeds the non-interactive challenge.
	DSTFiatShamir = "ZKBOO_FIAT_SHAMIR_V1"

	// DSTTape tags the CSPRNG expansion of a party's key into its tape.
	DSTTape = "ZKBOO_TAPE_V1"
)

// SoundnessErrorBits is -log2(2/3), the bit-security contributed by a single
// cut-and-choose repetition. Used by the repetition-count calculator.
const SoundnessErrorBits = 0.584962500721156181 // -log2(2.0/3.0)

// DefaultMaxConcurrency bounds the worker pool used to fan repetitions out
// across goroutines when the caller does not specify one.
const DefaultMaxConcurrency = 8
