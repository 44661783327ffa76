// Package party implements the per-player execution context of spec section
// 4.1: a Tape of pre-drawn randomness and a View recording input share and
// broadcast messages, bound together under a single Key.
//
// Grounded on original_source/src/party.rs (Party<T>{tape, view}), adapted
// to Go's explicit error returns and to this module's generic Word type.
package party
