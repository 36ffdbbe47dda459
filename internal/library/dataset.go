package library

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// Dataset is the on-disk form of a benchmark's instances, either embedded
// in the library or supplied by the user as a YAML file.
type Dataset struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Metrics     []string         `yaml:"metrics"`
	Instances   []bench.Instance `yaml:"instances"`
}

func parseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if ds.Name == "" {
		return nil, fmt.Errorf("invalid dataset: name is required")
	}
	for i, inst := range ds.Instances {
		if inst.ID == "" {
			return nil, fmt.Errorf("invalid dataset %q: instance %d has no id", ds.Name, i)
		}
		if inst.Input == "" {
			return nil, fmt.Errorf("invalid dataset %q: instance %q has no input", ds.Name, inst.ID)
		}
	}
	return &ds, nil
}

// LoadDataset reads a user-supplied dataset file for custom benchmarks.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := parseDataset(data)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}
