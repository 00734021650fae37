package ensemble

import "fmt"

// Synthesize builds count noisy copies of truth. Every position of every copy
// is negated independently with probability flipRatio, so errors are
// independent across positions and across classifiers. flipRatio 0 yields
// exact copies, 1 yields the exact complement, and 0.5 yields classifiers
// with coin-flip accuracy.
func Synthesize(s *Stream, truth Labels, count int, flipRatio float64) ([]Labels, error) {
	if err := checkSynthesisParams(count, flipRatio, "flip_ratio"); err != nil {
		return nil, err
	}
	return noisyCopies(s, truth, count, flipRatio), nil
}

// SynthesizeCorrelated builds count copies derived from the one shared base
// sequence, negating each position independently with probability flip. The
// copies disagree with each other at roughly 2*flip*(1-flip) while each
// inherits the base sequence's disagreement with ground truth, which models
// systemic error. This is deliberately a separate mode from Synthesize rather
// than a parameterized correlation coefficient: the two limiting cases are
// the point of the contrast.
func SynthesizeCorrelated(s *Stream, base Labels, count int, flip float64) ([]Labels, error) {
	if err := checkSynthesisParams(count, flip, "flip"); err != nil {
		return nil, err
	}
	return noisyCopies(s, base, count, flip), nil
}

func noisyCopies(s *Stream, reference Labels, count int, p float64) []Labels {
	flip := s.bernoulli(p)

	classifiers := make([]Labels, count)
	for c := range classifiers {
		labels := make(Labels, len(reference))
		for i, v := range reference {
			labels[i] = v != (flip.Rand() == 1)
		}
		classifiers[c] = labels
	}
	return classifiers
}

func checkSynthesisParams(count int, p float64, name string) error {
	if count < 0 {
		return fmt.Errorf("%w: classifier count %d is negative", ErrInvalidParameter, count)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s %v is outside [0,1]", ErrInvalidParameter, name, p)
	}
	return nil
}
