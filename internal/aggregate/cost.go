package aggregate

import (
	"fmt"

	"github.com/VascoSch92/bench-lab/internal/bench"
	"github.com/VascoSch92/bench-lab/internal/pricing"
)

// Cost estimates the run's token spend from a pricing table. Attempts
// that reported no usage contribute zero.
type Cost struct {
	Table *pricing.Table
	Model string
}

func (Cost) Name() string { return "cost" }

func (a Cost) Aggregate(ev *bench.Evaluation) (map[string]float64, error) {
	if a.Table == nil {
		return nil, fmt.Errorf("no pricing table configured")
	}

	var inTokens, outTokens int
	var usd float64
	for _, r := range ev.Execution.Results {
		inTokens += r.InputTokens
		outTokens += r.OutputTokens
		usd += a.Table.Cost(a.Model, r.InputTokens, r.OutputTokens)
	}

	return map[string]float64{
		"input_tokens":  float64(inTokens),
		"output_tokens": float64(outTokens),
		"total_tokens":  float64(inTokens + outTokens),
		"usd":           usd,
	}, nil
}
