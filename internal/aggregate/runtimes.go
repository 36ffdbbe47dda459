package aggregate

import (
	"github.com/VascoSch92/bench-lab/internal/bench"
)

// Runtimes computes distribution statistics over the elapsed durations of
// the selected attempts, failed and timed-out ones included. Durations
// are reported in seconds.
type Runtimes struct{}

func (Runtimes) Name() string { return "runtimes" }

func (Runtimes) Aggregate(ev *bench.Evaluation) (map[string]float64, error) {
	results := ev.Execution.Results
	if len(results) == 0 {
		return map[string]float64{"count": 0}, nil
	}

	secs := make([]float64, len(results))
	for i, r := range results {
		secs[i] = r.Elapsed.Seconds()
	}

	return map[string]float64{
		"count":   float64(len(secs)),
		"min":     percentile(secs, 0),
		"mean":    mean(secs),
		"median":  median(secs),
		"p90":     percentile(secs, 90),
		"p99":     percentile(secs, 99),
		"max":     percentile(secs, 100),
		"geomean": geoMean(secs),
	}, nil
}
