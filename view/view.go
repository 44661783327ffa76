package view

import (
	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/word"
)

// View is a single party's public transcript: its input share plus the
// ordered sequence of messages it broadcast during circuit evaluation.
//
// During prover-side evaluation, Messages is append-only (SendMsg). During
// verifier-side replay of an opened view, a read cursor advances over
// Messages and never exceeds its length (ReadNext).
type View[T word.Unsigned] struct {
	InputShare []word.Word[T]
	Messages   []word.Word[T]
	readCursor int
}

// New creates an empty-message View over the given input share.
func New[T word.Unsigned](inputShare []word.Word[T]) *View[T] {
	return &View[T]{InputShare: append([]word.Word[T](nil), inputShare...)}
}

// FromTranscript reconstructs a View carrying a full prior transcript (used
// by the verifier to load the opened third party's view from a proof).
func FromTranscript[T word.Unsigned](inputShare, messages []word.Word[T]) *View[T] {
	return &View[T]{
		InputShare: append([]word.Word[T](nil), inputShare...),
		Messages:   append([]word.Word[T](nil), messages...),
	}
}

// SendMsg appends a broadcast message to the view. Called once per
// multiplicative gate (spec: "the only gate type that writes to the view").
func (v *View[T]) SendMsg(w word.Word[T]) {
	v.Messages = append(v.Messages, w)
}

// ReadNext consumes the next message in order, advancing the read cursor.
// Used only during verifier-side replay, to read the messages of an opened
// view whose messages were populated from the proof rather than produced
// live.
func (v *View[T]) ReadNext() (word.Word[T], error) {
	if v.readCursor >= len(v.Messages) {
		return word.Word[T]{}, common.ErrViewExhausted
	}
	w := v.Messages[v.readCursor]
	v.readCursor++
	return w, nil
}

// Len returns the number of messages recorded so far.
func (v *View[T]) Len() int { return len(v.Messages) }

// Equal reports whether two views carry the same input share and message
// sequence (spec: "two views with the same input-share and same message
// sequence are equal").
func (v *View[T]) Equal(other *View[T]) bool {
	if len(v.InputShare) != len(other.InputShare) || len(v.Messages) != len(other.Messages) {
		return false
	}
	for i := range v.InputShare {
		if !v.InputShare[i].Equal(other.InputShare[i]) {
			return false
		}
	}
	for i := range v.Messages {
		if !v.Messages[i].Equal(other.Messages[i]) {
			return false
		}
	}
	return true
}

// EncodeSize returns the exact byte length EncodeInto writes, so a caller
// can size a reused buffer (e.g. from pool.BufferPool) without guessing.
func (v *View[T]) EncodeSize() int {
	return (len(v.InputShare) + len(v.Messages)) * word.ByteLen[T]()
}

// EncodeInto writes the canonical encoding into buf, which must have length
// at least EncodeSize(), and returns the written prefix.
func (v *View[T]) EncodeInto(buf []byte) []byte {
	wordLen := word.ByteLen[T]()
	off := 0
	for _, w := range v.InputShare {
		w.PutBytes(buf[off : off+wordLen])
		off += wordLen
	}
	for _, w := range v.Messages {
		w.PutBytes(buf[off : off+wordLen])
		off += wordLen
	}
	return buf[:off]
}

// Encode produces the canonical byte encoding used by commitment and proof
// serialization: input share words followed by messages, each fixed-width
// little-endian (spec section 4.6 / External Interfaces).
func (v *View[T]) Encode() []byte {
	return v.EncodeInto(make([]byte, v.EncodeSize()))
}
