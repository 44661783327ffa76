package party

import (
	"testing"

	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/view"
	"github.com/anupsv/zkboo/word"
)

func TestNewDerivesIndependentTapeAndView(t *testing.T) {
	key := tape.Key{1, 2, 3}
	share := []word.Word[uint32]{word.New[uint32](5), word.New[uint32](9)}
	p, err := New[uint32](key, 4, share)
	if err != nil {
		t.Fatal(err)
	}
	if p.Tape.Len() != 4 {
		t.Fatalf("tape length: got %d want 4", p.Tape.Len())
	}
	if len(p.View.InputShare) != 2 {
		t.Fatalf("input share length: got %d want 2", len(p.View.InputShare))
	}
}

func TestReadTapeAdvances(t *testing.T) {
	p, err := New[uint8](tape.Key{7}, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ReadTape(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ReadTape(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ReadTape(); err == nil {
		t.Fatalf("expected tape exhausted")
	}
}

func TestSendMsgThenReplayViaFromTapeAndView(t *testing.T) {
	p, err := New[uint16](tape.Key{3}, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	p.SendMsg(word.New[uint16](42))

	replay := FromTapeAndView[uint16](p.Tape, view.FromTranscript[uint16](nil, p.View.Messages))
	got, err := replay.ReadView()
	if err != nil {
		t.Fatal(err)
	}
	if got.Value != 42 {
		t.Fatalf("replayed message: got %d want 42", got.Value)
	}
}
