// Package fiatshamir collapses the interactive cut-and-choose challenge of
// spec section 4.7 into a single hash of the prover's first message: the 3N
// view commitments. It expands that hash into N independent values in
// {0,1,2} using ChaCha20 as a keystream, rejecting biased byte values so
// each challenge is exactly uniform over three outcomes.
//
// Grounded on the teacher's bbs/utils.go ComputeProofChallenge (hashing a
// transcript prefix into a challenge scalar) and on tape's reuse of
// ChaCha20 as a deterministic expansion primitive.
package fiatshamir
