// Package library is the catalog of named benchmark definitions shipped
// with bench-lab. Datasets are embedded so a library benchmark needs no
// external files.
package library

import (
	"embed"
	"errors"
	"fmt"
	"sort"

	"github.com/VascoSch92/bench-lab/internal/aggregate"
	"github.com/VascoSch92/bench-lab/internal/bench"
	"github.com/VascoSch92/bench-lab/internal/metric"
)

//go:embed datasets/*.yaml
var datasets embed.FS

// ErrUnknownBenchmark is returned by FromLibrary for names not in the
// catalog.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

var catalog = map[string]string{
	"mathqa":         "datasets/mathqa.yaml",
	"gpqa":           "datasets/gpqa.yaml",
	"jailbreak-llms": "datasets/jailbreak_llms.yaml",
}

// Options tune a library benchmark. Zero values fall back to the
// benchmark's defaults: its own metric list, the built-in metric registry
// and the runtimes/status/score aggregators.
type Options struct {
	Metrics     []string
	Aggregators []bench.Aggregator
	Registry    bench.MetricResolver
	InstanceIDs []string
	Params      bench.Params
}

// Get returns the named catalog dataset.
func Get(name string) (*Dataset, error) {
	file, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownBenchmark, name, Names())
	}

	data, err := datasets.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading embedded dataset for %q: %w", name, err)
	}
	ds, err := parseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q: %w", name, err)
	}
	return ds, nil
}

// FromLibrary builds the named benchmark definition from the catalog.
func FromLibrary(name string, opts Options) (*bench.Definition, error) {
	ds, err := Get(name)
	if err != nil {
		return nil, err
	}
	return Build(ds, opts)
}

// Build turns a dataset into a definition, applying the option defaults.
// Used by FromLibrary and by custom dataset files.
func Build(ds *Dataset, opts Options) (*bench.Definition, error) {
	metrics := opts.Metrics
	if metrics == nil {
		metrics = ds.Metrics
	}
	reg := opts.Registry
	if reg == nil {
		reg = metric.NewRegistry()
	}
	aggs := opts.Aggregators
	if aggs == nil {
		aggs = DefaultAggregators(metrics)
	}

	store, err := bench.NewStore(ds.Instances)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q: %w", ds.Name, err)
	}
	instances := store.Select(opts.InstanceIDs, 0)

	return bench.New(ds.Name, instances, metrics, reg, aggs, opts.Params)
}

// DefaultAggregators returns runtimes and status plus one score
// aggregator per metric.
func DefaultAggregators(metrics []string) []bench.Aggregator {
	aggs := []bench.Aggregator{aggregate.Runtimes{}, aggregate.StatusCounts{}}
	for _, m := range metrics {
		aggs = append(aggs, aggregate.Score{Metric: m})
	}
	return aggs
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the description of a catalog benchmark.
func Describe(name string) (string, error) {
	file, ok := catalog[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
	}
	data, err := datasets.ReadFile(file)
	if err != nil {
		return "", err
	}
	ds, err := parseDataset(data)
	if err != nil {
		return "", err
	}
	return ds.Description, nil
}
