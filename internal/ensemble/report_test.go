package ensemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	truth := Labels{true, true, true, false, false}
	pred := Labels{true, true, false, false, false}

	r, err := Report(truth, pred)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, r.True.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, r.True.Recall, 1e-12)
	assert.InDelta(t, 0.8, r.True.F1, 1e-12)
	assert.Equal(t, 3, r.True.Support)

	assert.InDelta(t, 2.0/3.0, r.False.Precision, 1e-12)
	assert.InDelta(t, 1.0, r.False.Recall, 1e-12)
	assert.InDelta(t, 0.8, r.False.F1, 1e-12)
	assert.Equal(t, 2, r.False.Support)

	assert.InDelta(t, 0.8, r.Accuracy, 1e-12)
	assert.Equal(t, 5, r.Total)

	assert.InDelta(t, 5.0/6.0, r.MacroAvg.Precision, 1e-12)
	assert.InDelta(t, 5.0/6.0, r.MacroAvg.Recall, 1e-12)
	assert.InDelta(t, 0.8, r.MacroAvg.F1, 1e-12)

	assert.InDelta(t, 13.0/15.0, r.WeightedAvg.Precision, 1e-12)
	assert.InDelta(t, 0.8, r.WeightedAvg.Recall, 1e-12)
	assert.InDelta(t, 0.8, r.WeightedAvg.F1, 1e-12)
}

func TestReport_DegenerateClasses(t *testing.T) {
	// Predictions never say true.
	_, err := Report(Labels{true, false}, Labels{false, false})
	assert.ErrorIs(t, err, ErrDegenerateMetric)

	// Ground truth contains only one class.
	_, err = Report(Labels{true, true}, Labels{true, false})
	assert.ErrorIs(t, err, ErrDegenerateMetric)
}

func TestReport_InputErrors(t *testing.T) {
	_, err := Report(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Report(Labels{true, false}, Labels{true})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReport_String(t *testing.T) {
	truth := Labels{true, true, true, false, false}
	pred := Labels{true, true, false, false, false}

	r, err := Report(truth, pred)
	require.NoError(t, err)

	text := r.String()
	for _, want := range []string{"precision", "recall", "f1-score", "support", "accuracy", "macro avg", "weighted avg", "false", "true"} {
		assert.True(t, strings.Contains(text, want), "report text missing %q:\n%s", want, text)
	}
}
