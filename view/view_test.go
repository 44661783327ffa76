package view

import (
	"testing"

	"github.com/anupsv/zkboo/word"
)

func TestSendMsgAppends(t *testing.T) {
	v := New[uint32](nil)
	v.SendMsg(word.New[uint32](1))
	v.SendMsg(word.New[uint32](2))
	if v.Len() != 2 {
		t.Fatalf("Len: got %d want 2", v.Len())
	}
}

func TestReadNextOrderAndExhaustion(t *testing.T) {
	v := FromTranscript[uint32](nil, []word.Word[uint32]{word.New[uint32](7), word.New[uint32](8)})
	w1, err := v.ReadNext()
	if err != nil || w1.Value != 7 {
		t.Fatalf("first read: %v %v", w1, err)
	}
	w2, err := v.ReadNext()
	if err != nil || w2.Value != 8 {
		t.Fatalf("second read: %v %v", w2, err)
	}
	if _, err := v.ReadNext(); err == nil {
		t.Fatalf("expected view-exhausted error")
	}
}

func TestEqual(t *testing.T) {
	share := []word.Word[uint16]{word.New[uint16](1), word.New[uint16](2)}
	a := New[uint16](share)
	b := New[uint16](share)
	a.SendMsg(word.New[uint16](9))
	b.SendMsg(word.New[uint16](9))
	if !a.Equal(b) {
		t.Fatalf("expected equal views")
	}
	b.SendMsg(word.New[uint16](10))
	if a.Equal(b) {
		t.Fatalf("expected unequal views after divergent message")
	}
}

func TestEncodeDeterministicAndOrdered(t *testing.T) {
	share := []word.Word[uint8]{word.New[uint8](0xAB)}
	v := New[uint8](share)
	v.SendMsg(word.New[uint8](0xCD))
	v.SendMsg(word.New[uint8](0xEF))

	got := v.Encode()
	want := []byte{0xAB, 0xCD, 0xEF}
	if len(got) != len(want) {
		t.Fatalf("Encode length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Encode[%d]: got %x want %x", i, got[i], want[i])
		}
	}
}

func TestEncodeIndependentOfReadCursor(t *testing.T) {
	v := FromTranscript[uint32](nil, []word.Word[uint32]{word.New[uint32](1), word.New[uint32](2)})
	before := v.Encode()
	_, _ = v.ReadNext()
	after := v.Encode()
	if len(before) != len(after) {
		t.Fatalf("encoding should not depend on read cursor")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("encoding changed after read at byte %d", i)
		}
	}
}
