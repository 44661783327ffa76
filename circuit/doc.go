// Package circuit defines the Circuit interface of spec section 4.5 and a
// handful of concrete circuits exercising the gadget package: a toy boolean
// circuit, a modular-addition circuit, and the SHA-256 Ch, Maj and
// final-digest compression gates.
//
// Grounded on original_source/src/circuit.rs's Circuit trait (compute,
// compute_23_decomposition, simulate_two_parties, party_output_len,
// num_of_mul_gates) and its SimpleCircuit1 test circuit, plus the
// gadgets/sha256/compression/{ch,maj}.rs and gadgets/sha256/final_digest.rs
// test circuits for the SHA-256 gates.
package circuit
