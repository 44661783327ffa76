// Package view implements the per-party transcript of spec section 4.3: an
// input share plus the ordered sequence of broadcast messages a party
// produces (prover side) or consumes (verifier replay side).
//
// View ordering is the specification: every gadget must read and write
// messages in the identical sequence on the prover and verifier sides, so
// that commit(key, view) binds the same bytes regardless of which side
// produced them. This package only enforces the append-only / bounded-read
// invariants; it is gadgets (package gadget) that are responsible for
// calling SendMsg and ReadNext in matching order.
package view
