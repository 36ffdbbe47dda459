// Package artifact persists the pipeline's immutable artifacts as JSON
// files inside timestamped run directories, so a stored execution can be
// re-evaluated and re-aggregated later.
package artifact

import (
	"fmt"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

type ParamsRecord struct {
	TimeoutS  float64 `json:"timeout_s,omitempty"`
	NInstance int     `json:"n_instance,omitempty"`
	NAttempts int     `json:"n_attempts"`
	Parallel  int     `json:"parallel"`
}

type ExecutionRecord struct {
	Benchmark string                `json:"benchmark"`
	Params    ParamsRecord          `json:"params"`
	Status    bench.RunStatus       `json:"status"`
	Results   []bench.AttemptResult `json:"results"`
}

type EvaluationRecord struct {
	Benchmark string               `json:"benchmark"`
	Metrics   []string             `json:"metrics"`
	Results   []bench.ScoredResult `json:"results"`
}

type ReportRecord struct {
	Benchmark string                 `json:"benchmark"`
	Status    bench.RunStatus        `json:"status"`
	Values    []bench.AggregateValue `json:"values"`
}

func NewExecutionRecord(e *bench.Execution) *ExecutionRecord {
	d := e.Definition
	return &ExecutionRecord{
		Benchmark: d.Name,
		Params: ParamsRecord{
			TimeoutS:  d.Params.Timeout.Seconds(),
			NInstance: d.Params.NInstance,
			NAttempts: d.Params.NAttempts,
			Parallel:  d.Params.Parallel,
		},
		Status:  e.Status,
		Results: e.Results,
	}
}

func NewEvaluationRecord(ev *bench.Evaluation) *EvaluationRecord {
	return &EvaluationRecord{
		Benchmark: ev.Execution.Definition.Name,
		Metrics:   ev.Execution.Definition.MetricNames,
		Results:   ev.Results,
	}
}

func NewReportRecord(r *bench.Report) *ReportRecord {
	return &ReportRecord{
		Benchmark: r.Evaluation.Execution.Definition.Name,
		Status:    r.Evaluation.Execution.Status,
		Values:    r.Values,
	}
}

// Execution rebinds a stored record to a definition so the pipeline can
// resume from the evaluation stage. The definition must describe the same
// instance sequence the execution was produced from.
func (r *ExecutionRecord) Execution(d *bench.Definition) (*bench.Execution, error) {
	if len(r.Results) != len(d.Instances) {
		return nil, fmt.Errorf("stored execution has %d results but definition %q has %d instances",
			len(r.Results), d.Name, len(d.Instances))
	}
	for i, res := range r.Results {
		if res.InstanceID != d.Instances[i].ID {
			return nil, fmt.Errorf("stored result %d is for instance %q, definition has %q",
				i, res.InstanceID, d.Instances[i].ID)
		}
	}
	return &bench.Execution{
		Definition: d,
		Results:    r.Results,
		Status:     r.Status,
	}, nil
}
