package ensemble

// Labels is an ordered sequence of binary labels. It represents the ground
// truth, a single synthesized classifier, or an ensemble prediction; index i
// always refers to the same sample across all sequences of one experiment.
type Labels []bool

// SoftLabels is the continuous counterpart of Labels, holding per-sample
// confidence values in [0,1]. Rounding each value half-to-even recovers the
// underlying boolean labels.
type SoftLabels []float64
