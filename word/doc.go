// Package word implements the Word and Bit primitives of spec section 4.1:
// machine words viewed as elements of GF(2)^n, with XOR as addition and AND
// as multiplication, plus rotation, bit access and byte encoding.
//
// Word is generic over the four concrete widths the protocol supports
// (uint8, uint16, uint32, uint64) via the Unsigned constraint, monomorphized
// by the compiler rather than dispatched at runtime — the hot per-bit loop
// of the modular adder (package gadget) never pays for an interface call.
// All operations here are pure: no Word method allocates shared state or
// depends on anything but its receiver and arguments.
package word
