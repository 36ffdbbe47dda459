package bench

import (
	"context"
	"fmt"
	"time"
)

// Args is the open key-value configuration passed through to every model
// invocation unchanged. Recognized keys are documented per benchmark.
type Args map[string]string

// Output is what a model invocation produces for one instance. Token
// counts are optional; adapters that know their usage fill them in.
type Output struct {
	Text         string `json:"text"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
}

// Model is the callable under evaluation. Implementations must be safe to
// invoke repeatedly and from concurrent goroutines; any error or panic they
// produce is captured into the attempt result, never propagated.
type Model interface {
	Invoke(ctx context.Context, inst Instance, args Args) (Output, error)
}

// ModelFunc adapts a plain function returning text to the Model interface.
type ModelFunc func(ctx context.Context, inst Instance, args Args) (string, error)

func (f ModelFunc) Invoke(ctx context.Context, inst Instance, args Args) (Output, error) {
	text, err := f(ctx, inst, args)
	return Output{Text: text}, err
}

// MetricFunc scores one raw output against one instance. A non-nil error
// means the output could not be scored; the evaluator records a nil score
// and moves on.
type MetricFunc func(output string, inst Instance) (float64, error)

// MetricResolver maps metric names to scoring functions. Resolution
// failures must wrap ErrUnknownMetric.
type MetricResolver interface {
	Resolve(name string) (MetricFunc, error)
}

// Aggregator reduces an Evaluation to a named statistic. Implementations
// must tolerate empty evaluations; errors and panics are captured into an
// error-kind AggregateValue and never abort other aggregators.
type Aggregator interface {
	Name() string
	Aggregate(ev *Evaluation) (map[string]float64, error)
}

// Params are the execution parameters of a definition.
type Params struct {
	// Timeout bounds a single model invocation. Zero means unbounded.
	Timeout time.Duration
	// NInstance limits how many instances are drawn, first-N in
	// definition order. Zero means all.
	NInstance int
	// NAttempts is the retry budget per instance. Defaults to 1.
	NAttempts int
	// Parallel is the maximum number of concurrently evaluated
	// instances. Defaults to 1.
	Parallel int
}

// Definition is the immutable configuration of a benchmark run: instances,
// resolved metrics, aggregators and execution parameters. Construct via
// New; a Definition is read-only afterwards and safe to share.
type Definition struct {
	Name        string
	Instances   []Instance
	MetricNames []string
	Aggregators []Aggregator
	Params      Params

	metrics []MetricFunc
}

// New builds a Definition. Metric names must resolve in reg; this is the
// only point where the pipeline fails with an error. nil aggregators are
// allowed and produce an empty report.
func New(name string, instances []Instance, metricNames []string, reg MetricResolver, aggs []Aggregator, params Params) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf("benchmark name is required")
	}
	if params.NInstance < 0 {
		return nil, fmt.Errorf("n_instance must be positive, got %d", params.NInstance)
	}
	if params.NAttempts < 0 {
		return nil, fmt.Errorf("n_attempts must be positive, got %d", params.NAttempts)
	}
	if params.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", params.Timeout)
	}
	if params.NAttempts == 0 {
		params.NAttempts = 1
	}
	if params.Parallel < 1 {
		params.Parallel = 1
	}

	store, err := NewStore(instances)
	if err != nil {
		return nil, err
	}
	selected := store.Select(nil, params.NInstance)

	seen := make(map[string]bool, len(metricNames))
	metrics := make([]MetricFunc, 0, len(metricNames))
	for _, mn := range metricNames {
		if seen[mn] {
			return nil, fmt.Errorf("duplicate metric %q: metric names must be unique", mn)
		}
		seen[mn] = true
		fn, err := reg.Resolve(mn)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", name, err)
		}
		metrics = append(metrics, fn)
	}

	return &Definition{
		Name:        name,
		Instances:   selected,
		MetricNames: metricNames,
		Aggregators: aggs,
		Params:      params,
		metrics:     metrics,
	}, nil
}
