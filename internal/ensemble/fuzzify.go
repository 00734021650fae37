package ensemble

// Fuzzify maps each boolean label to a continuous confidence value: true
// draws uniformly from (0.5, 1.0], false from [0.0, 0.5). Rounding any output
// half-to-even, the same rule SoftVote applies, recovers the input labels
// exactly.
func Fuzzify(s *Stream, c Labels) SoftLabels {
	u := s.uniform(0, 0.5)

	soft := make(SoftLabels, len(c))
	for i, v := range c {
		r := u.Rand()
		if v {
			soft[i] = 1 - r
		} else {
			soft[i] = r
		}
	}
	return soft
}

// FuzzifyMany applies Fuzzify to each classifier of an ensemble.
func FuzzifyMany(s *Stream, classifiers []Labels) []SoftLabels {
	fuzzy := make([]SoftLabels, len(classifiers))
	for i, c := range classifiers {
		fuzzy[i] = Fuzzify(s, c)
	}
	return fuzzy
}
