package ensemble

import (
	"fmt"
	"strings"
)

// ClassMetrics holds precision, recall, F1 and support for one class.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// ClassificationReport summarises prediction quality against ground truth for
// both binary classes, in the shape of the usual per-class text report.
type ClassificationReport struct {
	False       ClassMetrics
	True        ClassMetrics
	Accuracy    float64
	MacroAvg    ClassMetrics
	WeightedAvg ClassMetrics
	Total       int
}

// Report computes the full per-class summary. It fails with
// ErrDegenerateMetric when either class is absent from the ground truth or
// from the predictions, since precision or recall for that class would be
// undefined.
func Report(truth, pred Labels) (*ClassificationReport, error) {
	c, err := confusionCounts(truth, pred)
	if err != nil {
		return nil, err
	}

	trueClass, err := classMetrics(c.tp, c.fp, c.fn, "true")
	if err != nil {
		return nil, err
	}
	// With false as the positive class the counts swap roles.
	falseClass, err := classMetrics(c.tn, c.fn, c.fp, "false")
	if err != nil {
		return nil, err
	}

	total := c.total()
	fw := float64(falseClass.Support) / float64(total)
	tw := float64(trueClass.Support) / float64(total)

	return &ClassificationReport{
		False:    falseClass,
		True:     trueClass,
		Accuracy: float64(c.tp+c.tn) / float64(total),
		MacroAvg: ClassMetrics{
			Precision: (falseClass.Precision + trueClass.Precision) / 2,
			Recall:    (falseClass.Recall + trueClass.Recall) / 2,
			F1:        (falseClass.F1 + trueClass.F1) / 2,
			Support:   total,
		},
		WeightedAvg: ClassMetrics{
			Precision: fw*falseClass.Precision + tw*trueClass.Precision,
			Recall:    fw*falseClass.Recall + tw*trueClass.Recall,
			F1:        fw*falseClass.F1 + tw*trueClass.F1,
			Support:   total,
		},
		Total: total,
	}, nil
}

func classMetrics(tp, fp, fn int, class string) (ClassMetrics, error) {
	if tp+fp == 0 {
		return ClassMetrics{}, fmt.Errorf("%w: class %s never predicted, precision undefined", ErrDegenerateMetric, class)
	}
	if tp+fn == 0 {
		return ClassMetrics{}, fmt.Errorf("%w: class %s absent from ground truth, recall undefined", ErrDegenerateMetric, class)
	}

	precision := float64(tp) / float64(tp+fp)
	recall := float64(tp) / float64(tp+fn)
	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return ClassMetrics{Precision: precision, Recall: recall, F1: f1, Support: tp + fn}, nil
}

// String renders the report as a fixed-width text table.
func (r *ClassificationReport) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%12s %10s %10s %10s %10s\n\n", "", "precision", "recall", "f1-score", "support")
	writeClassRow(&b, "false", r.False)
	writeClassRow(&b, "true", r.True)
	fmt.Fprintf(&b, "\n%12s %10s %10s %10.3f %10d\n", "accuracy", "", "", r.Accuracy, r.Total)
	writeClassRow(&b, "macro avg", r.MacroAvg)
	writeClassRow(&b, "weighted avg", r.WeightedAvg)

	return b.String()
}

func writeClassRow(b *strings.Builder, name string, m ClassMetrics) {
	fmt.Fprintf(b, "%12s %10.3f %10.3f %10.3f %10d\n", name, m.Precision, m.Recall, m.F1, m.Support)
}
