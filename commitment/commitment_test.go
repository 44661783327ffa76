package commitment

import (
	"testing"

	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/view"
	"github.com/anupsv/zkboo/word"
)

func TestCommitDeterministic(t *testing.T) {
	key := tape.Key{1, 2, 3}
	v := view.New[uint32]([]word.Word[uint32]{word.New[uint32](5)})
	v.SendMsg(word.New[uint32](9))

	a := Commit(key, v)
	b := Commit(key, v)
	if len(a) != len(b) {
		t.Fatalf("commitment lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("commitment not deterministic")
		}
	}
}

func TestCommitBindsKey(t *testing.T) {
	v := view.New[uint32]([]word.Word[uint32]{word.New[uint32](5)})
	a := Commit(tape.Key{1}, v)
	b := Commit(tape.Key{2}, v)
	if bytesEqual(a, b) {
		t.Fatalf("distinct keys should not collide")
	}
}

func TestCommitBindsView(t *testing.T) {
	key := tape.Key{1}
	v1 := view.New[uint32]([]word.Word[uint32]{word.New[uint32](5)})
	v2 := view.New[uint32]([]word.Word[uint32]{word.New[uint32](6)})
	if bytesEqual(Commit(key, v1), Commit(key, v2)) {
		t.Fatalf("distinct views should not collide")
	}
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	key := tape.Key{7}
	v := view.New[uint32]([]word.Word[uint32]{word.New[uint32](1)})
	claimed := Commit(key, v)
	claimed[0] ^= 0xFF
	if Verify(key, v, claimed) {
		t.Fatalf("tampered commitment should fail verification")
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
