package ensemble

import "fmt"

type confusion struct {
	tp, fp, fn, tn int
}

func confusionCounts(truth, pred Labels) (confusion, error) {
	if len(truth) == 0 {
		return confusion{}, fmt.Errorf("%w: empty input sequences", ErrInvalidParameter)
	}
	if len(truth) != len(pred) {
		return confusion{}, fmt.Errorf("%w: ground truth %d vs predictions %d", ErrLengthMismatch, len(truth), len(pred))
	}

	var c confusion
	for i := range truth {
		switch {
		case truth[i] && pred[i]:
			c.tp++
		case !truth[i] && pred[i]:
			c.fp++
		case truth[i] && !pred[i]:
			c.fn++
		default:
			c.tn++
		}
	}
	return c, nil
}

func (c confusion) total() int {
	return c.tp + c.fp + c.fn + c.tn
}

// F1 is the harmonic mean of precision and recall with true as the positive
// class. It fails with ErrDegenerateMetric when precision or recall is
// undefined, so callers can tell "no data for the class" apart from a score
// of zero.
func F1(truth, pred Labels) (float64, error) {
	c, err := confusionCounts(truth, pred)
	if err != nil {
		return 0, err
	}

	m, err := classMetrics(c.tp, c.fp, c.fn, "true")
	if err != nil {
		return 0, err
	}
	return m.F1, nil
}

// CohenKappa is the chance-corrected agreement between two label sequences,
// in [-1,1]. 0 means chance-level agreement, 1 perfect agreement.
func CohenKappa(a, b Labels) (float64, error) {
	c, err := confusionCounts(a, b)
	if err != nil {
		return 0, err
	}

	n := float64(c.total())
	observed := float64(c.tp+c.tn) / n
	pTrueA := float64(c.tp+c.fn) / n
	pTrueB := float64(c.tp+c.fp) / n
	expected := pTrueA*pTrueB + (1-pTrueA)*(1-pTrueB)

	if expected == 1 {
		return 0, fmt.Errorf("%w: expected agreement is 1, kappa undefined", ErrDegenerateMetric)
	}
	return (observed - expected) / (1 - expected), nil
}
