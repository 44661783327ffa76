package fiatshamir

import "testing"

func TestChallengesDeterministic(t *testing.T) {
	transcript := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	a, err := Challenges(transcript, 69)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Challenges(transcript, 69)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("challenge %d diverged: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestChallengesInRange(t *testing.T) {
	transcript := [][]byte{[]byte("seed")}
	challenges, err := Challenges(transcript, 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(challenges) != 200 {
		t.Fatalf("got %d challenges want 200", len(challenges))
	}
	for _, c := range challenges {
		if c < 0 || c > 2 {
			t.Fatalf("challenge out of range: %d", c)
		}
	}
}

func TestChallengesDivergeOnDistinctTranscripts(t *testing.T) {
	a, err := Challenges([][]byte{[]byte("a")}, 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Challenges([][]byte{[]byte("b")}, 50)
	if err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("distinct transcripts should not yield identical challenges")
	}
}

func TestChallengesRoughlyUniform(t *testing.T) {
	challenges, err := Challenges([][]byte{[]byte("uniformity-check")}, 3000)
	if err != nil {
		t.Fatal(err)
	}
	var counts [3]int
	for _, c := range challenges {
		counts[c]++
	}
	for _, count := range counts {
		// With 3000 draws, each bucket should land near 1000; a generous
		// tolerance avoids test flakiness while still catching a badly
		// biased sampler.
		if count < 800 || count > 1200 {
			t.Fatalf("challenge distribution looks biased: %v", counts)
		}
	}
}
