package aggregate

import (
	"fmt"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// Score summarizes one metric's valid scores across all instances. A nil
// score (failed attempt or unscorable output) counts toward "count" but
// not toward "valid" or the statistics.
type Score struct {
	Metric string
}

func (a Score) Name() string { return "score:" + a.Metric }

func (a Score) Aggregate(ev *bench.Evaluation) (map[string]float64, error) {
	if a.Metric == "" {
		return nil, fmt.Errorf("score aggregator needs a metric name")
	}

	var valid []float64
	for _, sr := range ev.Results {
		if s := sr.Scores[a.Metric]; s != nil {
			valid = append(valid, *s)
		}
	}

	values := map[string]float64{
		"count": float64(len(ev.Results)),
		"valid": float64(len(valid)),
	}
	if len(valid) > 0 {
		values["mean"] = mean(valid)
		values["min"] = percentile(valid, 0)
		values["max"] = percentile(valid, 100)
	}
	return values, nil
}
