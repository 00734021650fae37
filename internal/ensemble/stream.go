// Package ensemble contains the simulation core: synthetic ground truth,
// noisy classifier synthesis, hard and soft vote aggregation, and the
// evaluation metrics that compare predictions against ground truth.
package ensemble

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is the seeded pseudo-random stream shared by every generator within
// one experiment. All draws consume the single underlying source, so results
// are reproducible only when the call order is preserved. A Stream must not
// be used from multiple goroutines.
type Stream struct {
	src rand.Source
}

// NewStream returns a stream backed by a PCG source seeded from seed.
func NewStream(seed uint64) *Stream {
	return &Stream{src: rand.NewPCG(seed, seed+1)}
}

func (s *Stream) bernoulli(p float64) distuv.Bernoulli {
	return distuv.Bernoulli{P: p, Src: s.src}
}

func (s *Stream) uniform(min, max float64) distuv.Uniform {
	return distuv.Uniform{Min: min, Max: max, Src: s.src}
}
