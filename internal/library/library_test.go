package library_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VascoSch92/bench-lab/internal/bench"
	"github.com/VascoSch92/bench-lab/internal/library"
)

func TestFromLibraryKnownBenchmarks(t *testing.T) {
	for _, name := range library.Names() {
		t.Run(name, func(t *testing.T) {
			d, err := library.FromLibrary(name, library.Options{})
			if err != nil {
				t.Fatalf("FromLibrary(%q): %v", name, err)
			}
			if d.Name != name {
				t.Errorf("name: got %q, want %q", d.Name, name)
			}
			if len(d.Instances) == 0 {
				t.Error("expected instances")
			}
			if len(d.MetricNames) == 0 {
				t.Error("expected default metrics")
			}
			if len(d.Aggregators) < 2 {
				t.Error("expected default aggregators")
			}
		})
	}
}

func TestFromLibraryUnknown(t *testing.T) {
	_, err := library.FromLibrary("no-such-benchmark", library.Options{})
	if !errors.Is(err, library.ErrUnknownBenchmark) {
		t.Fatalf("expected ErrUnknownBenchmark, got %v", err)
	}
}

func TestFromLibraryUnknownMetric(t *testing.T) {
	_, err := library.FromLibrary("mathqa", library.Options{Metrics: []string{"bogus"}})
	if !errors.Is(err, bench.ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestFromLibraryTruncationIsDeterministic(t *testing.T) {
	opts := library.Options{Params: bench.Params{NInstance: 3}}
	first, err := library.FromLibrary("mathqa", opts)
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}
	second, err := library.FromLibrary("mathqa", opts)
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}
	if len(first.Instances) != 3 || len(second.Instances) != 3 {
		t.Fatalf("instances: got %d and %d, want 3", len(first.Instances), len(second.Instances))
	}
	for i := range first.Instances {
		if first.Instances[i].ID != second.Instances[i].ID {
			t.Errorf("instance %d differs between lookups: %q vs %q",
				i, first.Instances[i].ID, second.Instances[i].ID)
		}
	}
}

func TestFromLibraryInstanceIDs(t *testing.T) {
	d, err := library.FromLibrary("mathqa", library.Options{
		InstanceIDs: []string{"mathqa-0005", "mathqa-0002"},
	})
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}
	if len(d.Instances) != 2 {
		t.Fatalf("instances: got %d, want 2", len(d.Instances))
	}
	// Definition order, not request order.
	if d.Instances[0].ID != "mathqa-0002" || d.Instances[1].ID != "mathqa-0005" {
		t.Errorf("got %q, %q", d.Instances[0].ID, d.Instances[1].ID)
	}
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
name: custom
metrics: [exact_match]
instances:
  - id: c-1
    input: "what is 1+1?"
    expected: "2"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := library.LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if ds.Name != "custom" || len(ds.Instances) != 1 {
		t.Errorf("dataset: %+v", ds)
	}
}

func TestLoadDatasetInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "instances:\n  - id: a\n    input: x\n"},
		{"missing instance id", "name: d\ninstances:\n  - input: x\n"},
		{"missing instance input", "name: d\ninstances:\n  - id: a\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := library.LoadDataset(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// End-to-end: a model answering a fixed string scores zero exact matches
// but the run itself is a success.
func TestEndToEndFixedAnswer(t *testing.T) {
	d, err := library.FromLibrary("mathqa", library.Options{
		Metrics: []string{"exact_match"},
		Params:  bench.Params{NInstance: 5, NAttempts: 1},
	})
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}

	model := bench.ModelFunc(func(ctx context.Context, inst bench.Instance, args bench.Args) (string, error) {
		return "I don't know what to do!", nil
	})

	exec := d.Run(context.Background(), model, nil)
	if exec.Status != bench.RunSuccess {
		t.Errorf("execution status: got %q, want success", exec.Status)
	}
	ev := exec.Evaluate()
	if len(ev.Results) != 5 {
		t.Fatalf("scored results: got %d, want 5", len(ev.Results))
	}
	for i, sr := range ev.Results {
		s := sr.Scores["exact_match"]
		if s == nil || *s != 0 {
			t.Errorf("result %d: exact_match = %v, want 0", i, s)
		}
	}

	rep := ev.Report()
	for _, v := range rep.Values {
		if v.Name == "score:exact_match" {
			if v.Values["mean"] != 0 || v.Values["valid"] != 5 {
				t.Errorf("score aggregate: %v", v.Values)
			}
		}
	}
}

// End-to-end: one erroring instance degrades the run and shows up in the
// status aggregate.
func TestEndToEndOneError(t *testing.T) {
	d, err := library.FromLibrary("mathqa", library.Options{
		Metrics: []string{"exact_match"},
		Params:  bench.Params{NInstance: 5},
	})
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}

	model := bench.ModelFunc(func(ctx context.Context, inst bench.Instance, args bench.Args) (string, error) {
		if inst.ID == "mathqa-0003" {
			return "", fmt.Errorf("model refused")
		}
		return inst.Expected, nil
	})

	exec := d.Run(context.Background(), model, nil)
	if exec.Status != bench.RunDegraded {
		t.Errorf("execution status: got %q, want degraded", exec.Status)
	}
	if exec.Results[2].Status != bench.StatusError {
		t.Errorf("instance 3 status: got %q, want error", exec.Results[2].Status)
	}

	ev := exec.Evaluate()
	if ev.Results[2].Scores["exact_match"] != nil {
		t.Error("errored instance must score nil")
	}

	rep := ev.Report()
	for _, v := range rep.Values {
		if v.Name == "status" {
			if v.Values["error_count"] != 1 || v.Values["success_count"] != 4 {
				t.Errorf("status aggregate: %v", v.Values)
			}
		}
	}
}

// End-to-end: a timeout below the model's latency fails every instance
// and the runtime aggregate reflects the bound.
func TestEndToEndAllTimeout(t *testing.T) {
	const bound = 20 * time.Millisecond
	d, err := library.FromLibrary("mathqa", library.Options{
		Metrics: []string{"exact_match"},
		Params:  bench.Params{NInstance: 3, Timeout: bound, Parallel: 3},
	})
	if err != nil {
		t.Fatalf("FromLibrary: %v", err)
	}

	model := bench.ModelFunc(func(ctx context.Context, inst bench.Instance, args bench.Args) (string, error) {
		time.Sleep(time.Second)
		return "too late", nil
	})

	exec := d.Run(context.Background(), model, nil)
	if exec.Status != bench.RunFailed {
		t.Errorf("execution status: got %q, want failed", exec.Status)
	}
	for i, r := range exec.Results {
		if r.Status != bench.StatusTimeout {
			t.Errorf("result %d: got %q, want timeout", i, r.Status)
		}
	}

	rep := exec.Evaluate().Report()
	for _, v := range rep.Values {
		if v.Name == "runtimes" {
			want := bound.Seconds()
			if v.Values["min"] != want || v.Values["max"] != want {
				t.Errorf("runtimes: got min %v max %v, want %v", v.Values["min"], v.Values["max"], want)
			}
		}
	}
}
