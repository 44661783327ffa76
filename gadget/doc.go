// Package gadget implements the MPC gate protocols of spec section 4.4: the
// per-gate operations a circuit composes to realize its (2,3)-decomposition,
// and the matching two-party verification replay.
//
// Linear gates (Xor, rotations, shifts) touch no tape or view: every party
// can compute its output share from its own inputs alone. Non-linear gates
// (And, AddMod) consume one tape word per party and broadcast exactly one
// message per gate into the view — AddMod included, since it folds its
// whole ripple-carry chain into a single end-of-gate broadcast rather than
// one message per bit.
//
// Grounded on original_source/src/gadgets/add_mod.rs (the ripple-carry
// adder and its masked-AND-share bit_and helper) and
// original_source/src/gadgets/sha256/compression/{ch,maj,temp2}.rs (the
// composite SHA-256 gates built from And and AddMod).
package gadget
