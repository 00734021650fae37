package experiment

import (
	"fmt"
	"strings"
)

// PlotResultsTerminal renders sweep results as a horizontal bar chart of
// ensemble F1 by ensemble size, in sweep order.
func PlotResultsTerminal(results []*Result, title string) {
	if len(results) == 0 {
		return
	}

	minF1 := results[0].F1
	maxF1 := results[0].F1
	for _, res := range results[1:] {
		if res.F1 < minF1 {
			minF1 = res.F1
		}
		if res.F1 > maxF1 {
			maxF1 = res.F1
		}
	}

	fmt.Printf("\n%s:\n", title)
	fmt.Println("Ensemble | F1       | Bar Chart")
	fmt.Println("---------|----------|" + strings.Repeat("-", 50))

	maxBarWidth := 50
	for _, res := range results {
		var barWidth int
		if maxF1 != minF1 {
			barWidth = int((res.F1 - minF1) / (maxF1 - minF1) * float64(maxBarWidth))
		} else {
			barWidth = maxBarWidth / 2
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Printf("%8d | %.6f | %s (%.4f)\n", res.Params.NumClassifiers, res.F1, bar, res.F1)
	}

	fmt.Printf("\nScale: Min=%.6f, Max=%.6f\n", minF1, maxF1)
}
