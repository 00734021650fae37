// Package experiment orchestrates full simulation runs: generate ground
// truth, synthesize an ensemble, vote, and evaluate.
package experiment

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/csdurfee/ensemble-learning/internal/ensemble"
	"github.com/csdurfee/ensemble-learning/internal/utils/logger"
)

// Params configures one experiment run.
type Params struct {
	NumBits          int     // length of the ground-truth sequence
	NumClassifiers   int     // ensemble size
	FlipRatio        float64 // independent-mode flip probability
	CorrelatedFlip   float64 // correlated-mode secondary flip probability
	Seed             uint64
	SoftVoting       bool // mean-then-round instead of majority vote
	CorrelatedErrors bool // derive all classifiers from one shared noisy base
}

// DefaultParams mirrors the environment defaults: an odd, small ensemble so
// hard votes never tie, and classifiers individually better than random.
func DefaultParams() Params {
	return Params{
		NumBits:        100000,
		NumClassifiers: 3,
		FlipRatio:      0.4,
		CorrelatedFlip: 0.1,
		Seed:           42,
	}
}

type Pipeline struct {
	Params Params
}

type Option func(*Pipeline)

func WithParams(p Params) Option {
	return func(pl *Pipeline) {
		pl.Params = p
	}
}

func WithNumBits(n int) Option {
	return func(pl *Pipeline) {
		pl.Params.NumBits = n
	}
}

func WithNumClassifiers(n int) Option {
	return func(pl *Pipeline) {
		pl.Params.NumClassifiers = n
	}
}

func WithFlipRatio(r float64) Option {
	return func(pl *Pipeline) {
		pl.Params.FlipRatio = r
	}
}

func WithCorrelatedFlip(f float64) Option {
	return func(pl *Pipeline) {
		pl.Params.CorrelatedFlip = f
	}
}

func WithSeed(seed uint64) Option {
	return func(pl *Pipeline) {
		pl.Params.Seed = seed
	}
}

func WithSoftVoting(enabled bool) Option {
	return func(pl *Pipeline) {
		pl.Params.SoftVoting = enabled
	}
}

func WithCorrelatedErrors(enabled bool) Option {
	return func(pl *Pipeline) {
		pl.Params.CorrelatedErrors = enabled
	}
}

func New(opts ...Option) *Pipeline {
	pl := &Pipeline{Params: DefaultParams()}
	for _, opt := range opts {
		opt(pl)
	}
	return pl
}

// Result carries the evaluation of one run.
type Result struct {
	Params        Params
	Report        *ensemble.ClassificationReport
	F1            float64
	Kappa         float64
	AgreementRate float64

	// PairwiseAgreement is the mean agreement between ensemble members.
	// It is NaN for single-classifier runs, where no pair exists.
	PairwiseAgreement float64
}

// Run executes generate, synthesize, (fuzzify,) vote and evaluate with a
// fresh stream seeded from the run's parameters.
func (p *Pipeline) Run() (*Result, error) {
	logger.Sugar().Infow("running experiment", "params", p.Params)

	stream := ensemble.NewStream(p.Params.Seed)
	truth, err := ensemble.GenerateGroundTruth(stream, p.Params.NumBits)
	if err != nil {
		return nil, fmt.Errorf("generate ground truth: %w", err)
	}

	classifiers, err := p.synthesize(stream, truth)
	if err != nil {
		return nil, err
	}

	predictions, err := p.vote(stream, classifiers)
	if err != nil {
		return nil, fmt.Errorf("aggregate votes: %w", err)
	}

	return p.evaluate(truth, classifiers, predictions)
}

func (p *Pipeline) synthesize(stream *ensemble.Stream, truth ensemble.Labels) ([]ensemble.Labels, error) {
	if !p.Params.CorrelatedErrors {
		classifiers, err := ensemble.Synthesize(stream, truth, p.Params.NumClassifiers, p.Params.FlipRatio)
		if err != nil {
			return nil, fmt.Errorf("synthesize classifiers: %w", err)
		}
		return classifiers, nil
	}

	base, err := ensemble.Synthesize(stream, truth, 1, p.Params.FlipRatio)
	if err != nil {
		return nil, fmt.Errorf("synthesize base classifier: %w", err)
	}
	classifiers, err := ensemble.SynthesizeCorrelated(stream, base[0], p.Params.NumClassifiers, p.Params.CorrelatedFlip)
	if err != nil {
		return nil, fmt.Errorf("synthesize correlated classifiers: %w", err)
	}
	return classifiers, nil
}

func (p *Pipeline) vote(stream *ensemble.Stream, classifiers []ensemble.Labels) (ensemble.Labels, error) {
	if p.Params.SoftVoting {
		return ensemble.SoftVote(ensemble.FuzzifyMany(stream, classifiers))
	}
	return ensemble.MajorityVote(classifiers)
}

func (p *Pipeline) evaluate(truth ensemble.Labels, classifiers []ensemble.Labels, predictions ensemble.Labels) (*Result, error) {
	report, err := ensemble.Report(truth, predictions)
	if err != nil {
		return nil, fmt.Errorf("classification report: %w", err)
	}
	f1, err := ensemble.F1(truth, predictions)
	if err != nil {
		return nil, fmt.Errorf("f1: %w", err)
	}
	kappa, err := ensemble.CohenKappa(truth, predictions)
	if err != nil {
		return nil, fmt.Errorf("kappa: %w", err)
	}
	agreement, err := ensemble.AgreementRate(truth, predictions)
	if err != nil {
		return nil, fmt.Errorf("agreement rate: %w", err)
	}

	pairwise := math.NaN()
	if len(classifiers) > 1 {
		pairwise, err = ensemble.MeanPairwiseAgreement(classifiers)
		if err != nil {
			return nil, fmt.Errorf("pairwise agreement: %w", err)
		}
	}

	log.Debug().
		Float64("f1", f1).
		Float64("kappa", kappa).
		Float64("agreement", agreement).
		Float64("pairwise", pairwise).
		Int("ensembleSize", len(classifiers)).
		Msg("experiment evaluated")

	return &Result{
		Params:            p.Params,
		Report:            report,
		F1:                f1,
		Kappa:             kappa,
		AgreementRate:     agreement,
		PairwiseAgreement: pairwise,
	}, nil
}

// SweepSizes reruns the pipeline across ensemble sizes with otherwise
// identical parameters. Each size gets a fresh stream, so runs stay
// reproducible independently of the sweep order.
func (p *Pipeline) SweepSizes(sizes []int) ([]*Result, error) {
	results := make([]*Result, 0, len(sizes))
	for _, size := range sizes {
		res, err := New(WithParams(p.Params), WithNumClassifiers(size)).Run()
		if err != nil {
			return nil, fmt.Errorf("sweep size %d: %w", size, err)
		}
		results = append(results, res)
	}
	return results, nil
}
