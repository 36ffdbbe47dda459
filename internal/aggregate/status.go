package aggregate

import (
	"github.com/VascoSch92/bench-lab/internal/bench"
)

// StatusCounts reports counts and proportions of each attempt status
// across the execution, plus a 95% Wilson interval on the success rate.
type StatusCounts struct{}

func (StatusCounts) Name() string { return "status" }

func (StatusCounts) Aggregate(ev *bench.Evaluation) (map[string]float64, error) {
	results := ev.Execution.Results

	counts := map[bench.Status]int{}
	for _, r := range results {
		counts[r.Status]++
	}

	values := map[string]float64{
		"count":         float64(len(results)),
		"success_count": float64(counts[bench.StatusSuccess]),
		"error_count":   float64(counts[bench.StatusError]),
		"timeout_count": float64(counts[bench.StatusTimeout]),
	}

	if len(results) > 0 {
		n := float64(len(results))
		values["success_rate"] = float64(counts[bench.StatusSuccess]) / n
		values["error_rate"] = float64(counts[bench.StatusError]) / n
		values["timeout_rate"] = float64(counts[bench.StatusTimeout]) / n
	}

	low, high := wilson(counts[bench.StatusSuccess], len(results))
	values["success_rate_ci_low"] = low
	values["success_rate_ci_high"] = high

	return values, nil
}
