package ensemble

import "fmt"

// GenerateGroundTruth draws n independent fair-coin labels from the stream.
// n of zero yields an empty sequence; a negative n is an error.
func GenerateGroundTruth(s *Stream, n int) (Labels, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sequence length %d is negative", ErrInvalidParameter, n)
	}

	coin := s.bernoulli(0.5)
	truth := make(Labels, n)
	for i := range truth {
		truth[i] = coin.Rand() == 1
	}
	return truth, nil
}
