// Package common holds sentinel errors and domain-separation constants
// shared by every package in the zkboo module.
//
// It is the single place where protocol-level failure modes are named:
// tape, view and zkboo report these error values, and commitment,
// fiatshamir and tape take their domain-separation tags from here.
package common
