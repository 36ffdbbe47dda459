// Package metric resolves metric names to scoring functions and carries
// the built-in metrics. A Registry is stateless after construction and
// safe for concurrent use.
package metric

import (
	"fmt"
	"sort"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

type Registry struct {
	funcs map[string]bench.MetricFunc
}

// NewRegistry returns a registry preloaded with the built-in metrics.
func NewRegistry() *Registry {
	r := &Registry{funcs: map[string]bench.MetricFunc{}}
	r.funcs["exact_match"] = ExactMatch
	r.funcs["contains"] = Contains
	r.funcs["numeric_diff"] = NumericDiff
	return r
}

// Register adds a custom metric. Names must be unique.
func (r *Registry) Register(name string, fn bench.MetricFunc) error {
	if name == "" {
		return fmt.Errorf("metric name is required")
	}
	if fn == nil {
		return fmt.Errorf("metric %q: function is required", name)
	}
	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("metric %q already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

func (r *Registry) Resolve(name string) (bench.MetricFunc, error) {
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", bench.ErrUnknownMetric, name, r.Names())
	}
	return fn, nil
}

// Names lists registered metrics in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
