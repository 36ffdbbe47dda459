// Package aggregate holds the built-in statistical reducers applied to an
// Evaluation when building a Report. Every aggregator here returns a
// well-defined zero statistic for empty evaluations.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// byName maps aggregator names accepted in run configs to constructors.
// Score and cost aggregators take parameters and are attached separately.
var byName = map[string]func() bench.Aggregator{
	"runtimes": func() bench.Aggregator { return Runtimes{} },
	"status":   func() bench.Aggregator { return StatusCounts{} },
}

// ByName builds an aggregator from its config name.
func ByName(name string) (bench.Aggregator, error) {
	ctor, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown aggregator %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names lists the parameterless aggregators in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
