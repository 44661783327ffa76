// Package commitment implements the binding, hiding commitment of spec
// section 4.6: commit(key, view) = H(domain || key || encode(view)), using
// gnark-crypto's hash registry so the concrete hash function is pluggable
// the same way the teacher's proof pipeline parameterizes its digest
// algorithm.
package commitment
