package ensemble

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MajorityVote combines classifiers positionwise by hard vote: the fraction
// of true votes decides each output label. A fraction of exactly 0.5, which
// only an even ensemble can produce, rounds half-to-even and therefore yields
// false; odd ensemble sizes avoid ties entirely.
func MajorityVote(classifiers []Labels) (Labels, error) {
	n, err := ensembleWidth(len(classifiers))
	if err != nil {
		return nil, err
	}

	votes := make([]float64, len(classifiers[0]))
	for i, c := range classifiers {
		if len(c) != len(votes) {
			return nil, fmt.Errorf("%w: classifier %d has length %d, want %d", ErrLengthMismatch, i, len(c), len(votes))
		}
		for j, v := range c {
			if v {
				votes[j]++
			}
		}
	}
	floats.Scale(1/n, votes)
	return roundLabels(votes), nil
}

// SoftVote averages continuous classifier outputs positionwise, then rounds
// the mean with the same half-to-even rule as MajorityVote.
func SoftVote(fuzzy []SoftLabels) (Labels, error) {
	n, err := ensembleWidth(len(fuzzy))
	if err != nil {
		return nil, err
	}

	sums := make([]float64, len(fuzzy[0]))
	for i, c := range fuzzy {
		if len(c) != len(sums) {
			return nil, fmt.Errorf("%w: fuzzy classifier %d has length %d, want %d", ErrLengthMismatch, i, len(c), len(sums))
		}
		floats.Add(sums, c)
	}
	floats.Scale(1/n, sums)
	return roundLabels(sums), nil
}

func ensembleWidth(size int) (float64, error) {
	if size == 0 {
		return 0, fmt.Errorf("%w: vote needs a non-empty ensemble", ErrInvalidParameter)
	}
	return float64(size), nil
}

func roundLabels(fractions []float64) Labels {
	labels := make(Labels, len(fractions))
	for i, f := range fractions {
		labels[i] = math.RoundToEven(f) == 1
	}
	return labels
}
