package ensemble

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// AgreementRate returns the fraction of positions where a and b carry the
// same label.
func AgreementRate(a, b Labels) (float64, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: agreement rate over empty sequences", ErrInvalidParameter)
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	return float64(same) / float64(len(a)), nil
}

// PairwiseAgreement builds the symmetric classifier-vs-classifier agreement
// matrix; entry (i, j) is the agreement rate between classifiers i and j and
// the diagonal is 1. High off-diagonal mass at equal marginal accuracy is the
// signature of correlated errors.
func PairwiseAgreement(classifiers []Labels) (*mat.SymDense, error) {
	if len(classifiers) == 0 {
		return nil, fmt.Errorf("%w: pairwise agreement of an empty ensemble", ErrInvalidParameter)
	}

	m := mat.NewSymDense(len(classifiers), nil)
	for i := range classifiers {
		m.SetSym(i, i, 1)
		for j := i + 1; j < len(classifiers); j++ {
			rate, err := AgreementRate(classifiers[i], classifiers[j])
			if err != nil {
				return nil, err
			}
			m.SetSym(i, j, rate)
		}
	}
	return m, nil
}

// MeanPairwiseAgreement averages the strict upper triangle of the pairwise
// agreement matrix, a single-number summary of how correlated the ensemble's
// outputs are.
func MeanPairwiseAgreement(classifiers []Labels) (float64, error) {
	if len(classifiers) < 2 {
		return 0, fmt.Errorf("%w: mean pairwise agreement needs at least two classifiers", ErrInvalidParameter)
	}

	m, err := PairwiseAgreement(classifiers)
	if err != nil {
		return 0, err
	}

	dim, _ := m.Dims()
	rates := make([]float64, 0, dim*(dim-1)/2)
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			rates = append(rates, m.At(i, j))
		}
	}
	return stat.Mean(rates, nil), nil
}
