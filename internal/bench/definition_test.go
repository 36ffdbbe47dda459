package bench_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// mapResolver is a minimal metric resolver for tests.
type mapResolver map[string]bench.MetricFunc

func (m mapResolver) Resolve(name string) (bench.MetricFunc, error) {
	fn, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", name, bench.ErrUnknownMetric)
	}
	return fn, nil
}

func alwaysOne(output string, inst bench.Instance) (float64, error) {
	return 1.0, nil
}

func makeInstances(n int) []bench.Instance {
	instances := make([]bench.Instance, n)
	for i := range instances {
		instances[i] = bench.Instance{
			ID:       "inst-" + strconv.Itoa(i+1),
			Input:    "question " + strconv.Itoa(i+1),
			Expected: "42",
		}
	}
	return instances
}

func TestNewUnknownMetric(t *testing.T) {
	reg := mapResolver{"exact_match": alwaysOne}
	_, err := bench.New("demo", makeInstances(3), []string{"no_such_metric"}, reg, nil, bench.Params{})
	if !errors.Is(err, bench.ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestNewDuplicateMetric(t *testing.T) {
	reg := mapResolver{"exact_match": alwaysOne}
	_, err := bench.New("demo", makeInstances(3), []string{"exact_match", "exact_match"}, reg, nil, bench.Params{})
	if err == nil {
		t.Fatal("expected error for duplicate metric names")
	}
}

func TestNewInvalidParams(t *testing.T) {
	reg := mapResolver{}
	tests := []struct {
		name   string
		params bench.Params
	}{
		{"negative n_instance", bench.Params{NInstance: -1}},
		{"negative n_attempts", bench.Params{NAttempts: -2}},
		{"negative timeout", bench.Params{Timeout: -time.Second}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := bench.New("demo", makeInstances(1), nil, reg, nil, tt.params); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	reg := mapResolver{}
	d, err := bench.New("demo", makeInstances(2), nil, reg, nil, bench.Params{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Params.NAttempts != 1 {
		t.Errorf("n_attempts: got %d, want 1", d.Params.NAttempts)
	}
	if d.Params.Parallel != 1 {
		t.Errorf("parallel: got %d, want 1", d.Params.Parallel)
	}
}

func TestNewTruncatesInstances(t *testing.T) {
	reg := mapResolver{}
	d, err := bench.New("demo", makeInstances(10), nil, reg, nil, bench.Params{NInstance: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(d.Instances) != 3 {
		t.Fatalf("instances: got %d, want 3", len(d.Instances))
	}
	for i, inst := range d.Instances {
		want := "inst-" + strconv.Itoa(i+1)
		if inst.ID != want {
			t.Errorf("instance %d: got %q, want %q", i, inst.ID, want)
		}
	}
}
