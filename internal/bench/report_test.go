package bench_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

type stubAggregator struct {
	name   string
	values map[string]float64
	err    error
	panics bool
}

func (a stubAggregator) Name() string { return a.name }

func (a stubAggregator) Aggregate(ev *bench.Evaluation) (map[string]float64, error) {
	if a.panics {
		panic("aggregator bug")
	}
	return a.values, a.err
}

func runWithAggregators(t *testing.T, aggs []bench.Aggregator) *bench.Report {
	t.Helper()
	d, err := bench.New("demo", makeInstances(2), nil, mapResolver{}, aggs, bench.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exec := d.Run(context.Background(), bench.ModelFunc(func(ctx context.Context, inst bench.Instance, args bench.Args) (string, error) {
		return "out", nil
	}), nil)
	return exec.Evaluate().Report()
}

func TestReportRunsAggregatorsInOrder(t *testing.T) {
	rep := runWithAggregators(t, []bench.Aggregator{
		stubAggregator{name: "second", values: map[string]float64{"v": 2}},
		stubAggregator{name: "first", values: map[string]float64{"v": 1}},
	})
	if len(rep.Values) != 2 {
		t.Fatalf("values: got %d, want 2", len(rep.Values))
	}
	if rep.Values[0].Name != "second" || rep.Values[1].Name != "first" {
		t.Errorf("aggregators not in definition order: %q, %q", rep.Values[0].Name, rep.Values[1].Name)
	}
}

func TestReportIsolatesAggregatorFailures(t *testing.T) {
	rep := runWithAggregators(t, []bench.Aggregator{
		stubAggregator{name: "erroring", err: fmt.Errorf("no data")},
		stubAggregator{name: "panicking", panics: true},
		stubAggregator{name: "healthy", values: map[string]float64{"mean": 0.5}},
	})
	if len(rep.Values) != 3 {
		t.Fatalf("values: got %d, want 3", len(rep.Values))
	}
	if !rep.Values[0].Failed() || rep.Values[0].Error != "no data" {
		t.Errorf("erroring aggregator: got %+v", rep.Values[0])
	}
	if !rep.Values[1].Failed() || !strings.Contains(rep.Values[1].Error, "aggregator bug") {
		t.Errorf("panicking aggregator: got %+v", rep.Values[1])
	}
	if rep.Values[2].Failed() || rep.Values[2].Values["mean"] != 0.5 {
		t.Errorf("healthy aggregator: got %+v", rep.Values[2])
	}
}

func TestSummaryShowsFailureCounts(t *testing.T) {
	d, err := bench.New("demo", makeInstances(3), nil, mapResolver{}, []bench.Aggregator{
		stubAggregator{name: "stats", values: map[string]float64{"mean": 1}},
	}, bench.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exec := d.Run(context.Background(), bench.ModelFunc(func(ctx context.Context, inst bench.Instance, args bench.Args) (string, error) {
		if inst.ID == "inst-3" {
			return "", fmt.Errorf("boom")
		}
		return "out", nil
	}), nil)

	summary := exec.Evaluate().Report().Summary()
	for _, want := range []string{"demo", "degraded", "2 success", "1 error", "stats", "mean"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestSummaryErrorKindValue(t *testing.T) {
	rep := runWithAggregators(t, []bench.Aggregator{
		stubAggregator{name: "broken", err: fmt.Errorf("nothing to aggregate")},
	})
	summary := rep.Summary()
	if !strings.Contains(summary, "broken") || !strings.Contains(summary, "nothing to aggregate") {
		t.Errorf("summary must surface aggregator failures:\n%s", summary)
	}
}
