package gadget

import (
	"testing"

	"github.com/anupsv/zkboo/party"
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/word"
)

func newParties(t *testing.T, tapeLen int) (*party.Party[uint32], *party.Party[uint32], *party.Party[uint32]) {
	t.Helper()
	p1, err := party.New[uint32](tape.Key{1}, tapeLen, nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := party.New[uint32](tape.Key{2}, tapeLen, nil)
	if err != nil {
		t.Fatal(err)
	}
	p3, err := party.New[uint32](tape.Key{3}, tapeLen, nil)
	if err != nil {
		t.Fatal(err)
	}
	return p1, p2, p3
}

func reconstruct(t Triple[uint32]) word.Word[uint32] {
	return t.P1.Xor(t.P2).Xor(t.P3)
}

func TestXorShareCorrectness(t *testing.T) {
	x := Triple[uint32]{P1: word.New[uint32](1), P2: word.New[uint32](2), P3: word.New[uint32](3)}
	y := Triple[uint32]{P1: word.New[uint32](4), P2: word.New[uint32](5), P3: word.New[uint32](6)}

	got := reconstruct(Xor(x, y))
	want := reconstruct(x).Xor(reconstruct(y))
	if !got.Equal(want) {
		t.Fatalf("xor share mismatch: got %x want %x", got.Value, want.Value)
	}
}

func TestAndShareCorrectness(t *testing.T) {
	p1, p2, p3 := newParties(t, 1)
	x := Triple[uint32]{P1: word.New[uint32](0xAAAAAAAA), P2: word.New[uint32](0x0F0F0F0F), P3: word.New[uint32](0x11111111)}
	y := Triple[uint32]{P1: word.New[uint32](0x55555555), P2: word.New[uint32](0xF0F0F0F0), P3: word.New[uint32](0x22222222)}

	out, err := And(x, y, p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}

	got := reconstruct(out)
	want := reconstruct(x).And(reconstruct(y))
	if !got.Equal(want) {
		t.Fatalf("and share mismatch: got %08x want %08x", got.Value, want.Value)
	}
}

func TestAddModShareCorrectness(t *testing.T) {
	p1, p2, p3 := newParties(t, 1)
	x := Triple[uint32]{P1: word.New[uint32](111), P2: word.New[uint32](222), P3: word.New[uint32](333)}
	y := Triple[uint32]{P1: word.New[uint32](4000000000), P2: word.New[uint32](10), P3: word.New[uint32](20)}

	out, err := AddMod(x, y, p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}

	got := reconstruct(out)
	want := Adder(reconstruct(x), reconstruct(y))
	if !got.Equal(want) {
		t.Fatalf("add_mod share mismatch: got %d want %d", got.Value, want.Value)
	}
}

func TestAdderMatchesNativeOverflow(t *testing.T) {
	x := word.New[uint32](4294967290)
	y := word.New[uint32](10)
	got := Adder(x, y)
	want := word.New[uint32](uint32(4294967290) + uint32(10))
	if !got.Equal(want) {
		t.Fatalf("adder: got %d want %d", got.Value, want.Value)
	}
}

func TestChShareCorrectness(t *testing.T) {
	p1, p2, p3 := newParties(t, 1)
	e := Triple[uint32]{P1: word.New[uint32](0x1), P2: word.New[uint32](0x2), P3: word.New[uint32](0x4)}
	f := Triple[uint32]{P1: word.New[uint32](0xF), P2: word.New[uint32](0), P3: word.New[uint32](0)}
	g := Triple[uint32]{P1: word.New[uint32](0), P2: word.New[uint32](0xFF), P3: word.New[uint32](0)}

	out, err := Ch(e, f, g, p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}

	eVal, fVal, gVal := reconstruct(e), reconstruct(f), reconstruct(g)
	want := eVal.And(fVal).Xor(eVal.Not().And(gVal))
	if !reconstruct(out).Equal(want) {
		t.Fatalf("ch share mismatch: got %x want %x", reconstruct(out).Value, want.Value)
	}
}

func TestMajShareCorrectness(t *testing.T) {
	p1, p2, p3 := newParties(t, 1)
	a := Triple[uint32]{P1: word.New[uint32](0x1), P2: word.New[uint32](0x2), P3: word.New[uint32](0x4)}
	b := Triple[uint32]{P1: word.New[uint32](0xF), P2: word.New[uint32](0), P3: word.New[uint32](0)}
	c := Triple[uint32]{P1: word.New[uint32](0), P2: word.New[uint32](0xFF), P3: word.New[uint32](0)}

	out, err := Maj(a, b, c, p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}

	aVal, bVal, cVal := reconstruct(a), reconstruct(b), reconstruct(c)
	want := aVal.And(bVal).Xor(aVal.And(cVal)).Xor(bVal.And(cVal))
	if !reconstruct(out).Equal(want) {
		t.Fatalf("maj share mismatch: got %x want %x", reconstruct(out).Value, want.Value)
	}
}

func TestFinalDigestAddsIV(t *testing.T) {
	p1, p2, p3 := newParties(t, 8)
	var compression [8]Triple[uint32]
	for i := range compression {
		compression[i] = Triple[uint32]{
			P1: word.New[uint32](uint32(i)),
			P2: word.New[uint32](uint32(i * 2)),
			P3: word.New[uint32](uint32(i * 3)),
		}
	}

	out, err := FinalDigest(compression, p1, p2, p3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		got := reconstruct(out[i])
		want := Adder(SHA256IV[i], reconstruct(compression[i]))
		if !got.Equal(want) {
			t.Fatalf("digest word %d mismatch: got %x want %x", i, got.Value, want.Value)
		}
	}
}
