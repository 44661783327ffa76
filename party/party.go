package party

import (
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/view"
	"github.com/anupsv/zkboo/word"
)

// Party couples one player's Tape (pre-expanded multiplication-gate
// randomness) with its View (input share plus broadcast messages). Gadgets
// operate on a Party to read tape randomness and to publish or replay
// messages, never touching Tape or View directly.
type Party[T word.Unsigned] struct {
	Tape *tape.Tape[T]
	View *view.View[T]
}

// New derives a fresh Tape of the given length from key and pairs it with a
// new View over inputShare. Used on the prover side, where the tape is
// consumed live as gates are evaluated.
func New[T word.Unsigned](key tape.Key, tapeLength int, inputShare []word.Word[T]) (*Party[T], error) {
	tp, err := tape.New[T](key, tapeLength)
	if err != nil {
		return nil, err
	}
	return &Party[T]{Tape: tp, View: view.New[T](inputShare)}, nil
}

// FromTapeAndView builds a Party directly from an existing tape and view.
// Used on the verifier side to replay two of the three parties from an
// opened proof: one party's tape and view are both reconstructed from the
// seed and transcript revealed by the proof.
func FromTapeAndView[T word.Unsigned](t *tape.Tape[T], v *view.View[T]) *Party[T] {
	return &Party[T]{Tape: t, View: v}
}

// ReadTape draws the next tape word, consumed once per multiplicative gate
// this party evaluates.
func (p *Party[T]) ReadTape() (word.Word[T], error) {
	return p.Tape.ReadNext()
}

// ReadView replays the next message previously recorded in this party's
// view. Used only when this Party stands in for a verifier-side replay of a
// party whose messages came from the proof rather than live evaluation.
func (p *Party[T]) ReadView() (word.Word[T], error) {
	return p.View.ReadNext()
}

// SendMsg records a broadcast message in this party's view.
func (p *Party[T]) SendMsg(w word.Word[T]) {
	p.View.SendMsg(w)
}
