package ensemble

import (
	"errors"
	"testing"
)

func TestMajorityVote_OddEnsemble(t *testing.T) {
	classifiers := []Labels{
		{true, true, false},
		{true, false, false},
		{false, true, false},
	}

	got, err := MajorityVote(classifiers)
	if err != nil {
		t.Fatalf("majority vote: %v", err)
	}
	want := Labels{true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMajorityVote_EvenMajority(t *testing.T) {
	classifiers := []Labels{
		{true}, {true}, {true}, {false},
	}

	got, err := MajorityVote(classifiers)
	if err != nil {
		t.Fatalf("majority vote: %v", err)
	}
	if !got[0] {
		t.Fatalf("3 of 4 true votes produced false")
	}
}

// An exact 0.5 vote fraction rounds half-to-even, so ties always resolve to
// false, every time.
func TestMajorityVote_TieDeterminism(t *testing.T) {
	classifiers := []Labels{
		{true, false},
		{false, true},
	}

	for run := 0; run < 100; run++ {
		got, err := MajorityVote(classifiers)
		if err != nil {
			t.Fatalf("majority vote: %v", err)
		}
		if got[0] || got[1] {
			t.Fatalf("run %d: tie resolved to true, want false", run)
		}
	}
}

func TestMajorityVote_Errors(t *testing.T) {
	if _, err := MajorityVote(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("empty ensemble returned %v, want ErrInvalidParameter", err)
	}

	mismatched := []Labels{{true, false}, {true}}
	if _, err := MajorityVote(mismatched); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatched lengths returned %v, want ErrLengthMismatch", err)
	}
}

func TestSoftVote_MeanThenRound(t *testing.T) {
	fuzzy := []SoftLabels{
		{0.8, 0.2},
		{0.6, 0.4},
		{0.9, 0.1},
	}

	got, err := SoftVote(fuzzy)
	if err != nil {
		t.Fatalf("soft vote: %v", err)
	}
	if !got[0] || got[1] {
		t.Fatalf("got %v, want [true false]", got)
	}
}

func TestSoftVote_ExactHalfMeanIsFalse(t *testing.T) {
	fuzzy := []SoftLabels{{0.25}, {0.75}}

	got, err := SoftVote(fuzzy)
	if err != nil {
		t.Fatalf("soft vote: %v", err)
	}
	if got[0] {
		t.Fatalf("mean of exactly 0.5 resolved to true, want false")
	}
}

func TestSoftVote_Errors(t *testing.T) {
	if _, err := SoftVote(nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("empty ensemble returned %v, want ErrInvalidParameter", err)
	}

	mismatched := []SoftLabels{{0.1, 0.9}, {0.5}}
	if _, err := SoftVote(mismatched); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("mismatched lengths returned %v, want ErrLengthMismatch", err)
	}
}

// Agreement with ground truth under hard voting matches what the votes say
// position by position, independent of classifier order.
func TestMajorityVote_OrderInvariant(t *testing.T) {
	s := NewStream(9)
	truth, _ := GenerateGroundTruth(s, 2000)
	classifiers, _ := Synthesize(s, truth, 5, 0.3)

	forward, err := MajorityVote(classifiers)
	if err != nil {
		t.Fatalf("majority vote: %v", err)
	}

	reversed := make([]Labels, len(classifiers))
	for i := range classifiers {
		reversed[i] = classifiers[len(classifiers)-1-i]
	}
	backward, err := MajorityVote(reversed)
	if err != nil {
		t.Fatalf("majority vote: %v", err)
	}

	for i := range forward {
		if forward[i] != backward[i] {
			t.Fatalf("position %d differs across classifier orderings", i)
		}
	}
}

func BenchmarkMajorityVote(b *testing.B) {
	s := NewStream(1)
	truth, _ := GenerateGroundTruth(s, 100000)
	classifiers, _ := Synthesize(s, truth, 9, 0.4)

	b.ResetTimer()
	for b.Loop() {
		if _, err := MajorityVote(classifiers); err != nil {
			b.Fatal(err)
		}
	}
}
