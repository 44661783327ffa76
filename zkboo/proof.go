package zkboo

import (
	"encoding/binary"
	"fmt"

	"github.com/anupsv/zkboo/internal/common"
	"github.com/anupsv/zkboo/tape"
	"github.com/anupsv/zkboo/view"
	"github.com/anupsv/zkboo/word"
)

// OpenedView is the serializable form of one opened party's view: the
// input share plus the full message transcript recorded during evaluation.
type OpenedView[T word.Unsigned] struct {
	InputShare []word.Word[T]
	Messages   []word.Word[T]
}

func (v OpenedView[T]) toView() *view.View[T] {
	return view.FromTranscript(v.InputShare, v.Messages)
}

// Repetition is one run of the (2,3)-decomposition with two of its three
// parties opened. Hidden names the party index (0,1,2) never revealed;
// Seeds and Views describe the two opened parties in consecutive ring
// order (hidden+1)%3, (hidden+2)%3 — the pairing AndVerify/AddModVerify
// require.
type Repetition[T word.Unsigned] struct {
	Commitments  [3][]byte
	Hidden       int
	Seeds        [2]tape.Key
	Views        [2]OpenedView[T]
	HiddenOutput []word.Word[T]
}

// openedIndices returns the party indices (p, pNext) this repetition
// reveals, in the consecutive ring order gadget verification requires.
func (r Repetition[T]) openedIndices() (int, int) {
	p := (r.Hidden + 1) % 3
	pNext := (r.Hidden + 2) % 3
	return p, pNext
}

// Proof is the complete non-interactive proof of spec section 4.9: N
// repetitions plus the claimed circuit output they attest to.
type Proof[T word.Unsigned] struct {
	N           int
	Output      []word.Word[T]
	Repetitions []Repetition[T]
}

// commitmentTranscript flattens every repetition's three commitments, in
// repetition order then party order, into the byte sequence the
// Fiat-Shamir challenge is derived from.
func commitmentTranscript[T word.Unsigned](reps []fullRepetition[T]) [][]byte {
	out := make([][]byte, 0, 3*len(reps))
	for _, r := range reps {
		out = append(out, r.commitments[0], r.commitments[1], r.commitments[2])
	}
	return out
}

// Encode serializes the proof to the canonical wire format of spec section
// 6: a fixed-width header, then per-repetition commitments, hidden-party
// index, opened seeds, opened views and hidden output share, each
// length-prefixed where variable.
func (p *Proof[T]) Encode() []byte {
	wordLen := word.ByteLen[T]()
	buf := make([]byte, 0, 1024)
	buf = appendUint32(buf, uint32(p.N))
	buf = appendUint32(buf, uint32(len(p.Output)))
	for _, w := range p.Output {
		b := make([]byte, wordLen)
		w.PutBytes(b)
		buf = append(buf, b...)
	}
	buf = appendUint32(buf, uint32(len(p.Repetitions)))
	for _, rep := range p.Repetitions {
		for _, c := range rep.Commitments {
			buf = appendUint32(buf, uint32(len(c)))
			buf = append(buf, c...)
		}
		buf = appendUint32(buf, uint32(rep.Hidden))
		for _, seed := range rep.Seeds {
			buf = append(buf, seed.Bytes()...)
		}
		for _, v := range rep.Views {
			buf = appendUint32(buf, uint32(len(v.InputShare)))
			for _, w := range v.InputShare {
				b := make([]byte, wordLen)
				w.PutBytes(b)
				buf = append(buf, b...)
			}
			buf = appendUint32(buf, uint32(len(v.Messages)))
			for _, w := range v.Messages {
				b := make([]byte, wordLen)
				w.PutBytes(b)
				buf = append(buf, b...)
			}
		}
		buf = appendUint32(buf, uint32(len(rep.HiddenOutput)))
		for _, w := range rep.HiddenOutput {
			b := make([]byte, wordLen)
			w.PutBytes(b)
			buf = append(buf, b...)
		}
	}
	return buf
}

// Decode parses a proof from its canonical wire format.
func Decode[T word.Unsigned](buf []byte) (*Proof[T], error) {
	wordLen := word.ByteLen[T]()
	r := &byteReader{buf: buf}

	n, err := r.uint32()
	if err != nil {
		return nil, err
	}
	outputLen, err := r.uint32()
	if err != nil {
		return nil, err
	}
	output, err := words[T](r, int(outputLen), wordLen)
	if err != nil {
		return nil, err
	}
	repCount, err := r.uint32()
	if err != nil {
		return nil, err
	}

	reps := make([]Repetition[T], repCount)
	for i := range reps {
		var rep Repetition[T]
		for c := 0; c < 3; c++ {
			commLen, err := r.uint32()
			if err != nil {
				return nil, err
			}
			comm, err := r.bytes(int(commLen))
			if err != nil {
				return nil, err
			}
			rep.Commitments[c] = comm
		}
		hidden, err := r.uint32()
		if err != nil {
			return nil, err
		}
		rep.Hidden = int(hidden)

		for s := 0; s < 2; s++ {
			seedBytes, err := r.bytes(tape.KeySize)
			if err != nil {
				return nil, err
			}
			key, err := tape.KeyFromBytes(seedBytes)
			if err != nil {
				return nil, err
			}
			rep.Seeds[s] = key
		}

		for v := 0; v < 2; v++ {
			shareLen, err := r.uint32()
			if err != nil {
				return nil, err
			}
			share, err := words[T](r, int(shareLen), wordLen)
			if err != nil {
				return nil, err
			}
			msgLen, err := r.uint32()
			if err != nil {
				return nil, err
			}
			msgs, err := words[T](r, int(msgLen), wordLen)
			if err != nil {
				return nil, err
			}
			rep.Views[v] = OpenedView[T]{InputShare: share, Messages: msgs}
		}

		hiddenOutLen, err := r.uint32()
		if err != nil {
			return nil, err
		}
		hiddenOut, err := words[T](r, int(hiddenOutLen), wordLen)
		if err != nil {
			return nil, err
		}
		rep.HiddenOutput = hiddenOut

		reps[i] = rep
	}

	return &Proof[T]{N: int(n), Output: output, Repetitions: reps}, nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) uint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, fmt.Errorf("zkboo: %w: truncated length prefix", common.ErrMalformedProof)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("zkboo: %w: truncated field of length %d", common.ErrMalformedProof, n)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func words[T word.Unsigned](r *byteReader, count, wordLen int) ([]word.Word[T], error) {
	out := make([]word.Word[T], count)
	for i := range out {
		b, err := r.bytes(wordLen)
		if err != nil {
			return nil, err
		}
		w, err := word.FromBytes[T](b)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
