// Package tape implements the per-party random tape of spec section 4.2: a
// pre-expanded, deterministic stream of pseudorandom Words derived from a
// seed (Key) via a CSPRNG.
//
// The CSPRNG is ChaCha20 (golang.org/x/crypto/chacha20), the concrete
// instance spec section 6 suggests and the same stream cipher two sibling
// packages in the example pack (tuneinsight-lattigo, luxfi-adx) depend on
// directly. The tape is filled eagerly at construction rather than streamed
// lazily: both are valid per spec 4.2 provided prover and verifier see
// identical order, and eager filling draws the whole keystream once, at
// construction. ReadNext advances a cursor, so a Tape is not safe for
// concurrent readers.
package tape
