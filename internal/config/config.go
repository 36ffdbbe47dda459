// Package config loads and validates the benchlab run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Benchmark names a catalog entry; InstancesFile points at a dataset
	// file instead. Exactly one of the two must be set.
	Benchmark     string `yaml:"benchmark"`
	InstancesFile string `yaml:"instances_file"`

	// Metrics and Aggregators override the benchmark's defaults when set.
	Metrics     []string `yaml:"metrics"`
	Aggregators []string `yaml:"aggregators"`

	// InstanceIDs restricts the run to the named instances.
	InstanceIDs []string `yaml:"instance_ids"`

	TimeoutSeconds float64 `yaml:"timeout_seconds"`
	NInstance      int     `yaml:"n_instance"`
	NAttempts      int     `yaml:"n_attempts"`
	Parallel       int     `yaml:"parallel"`

	Args map[string]string `yaml:"args"`

	Model   Model   `yaml:"model"`
	Results Results `yaml:"results"`
	Pricing Pricing `yaml:"pricing"`
}

// Model selects the adapter for the callable under evaluation: a local
// command or a docker image. Exactly one of the two must be set.
type Model struct {
	Command []string          `yaml:"command"`
	Image   string            `yaml:"image"`
	Cmd     []string          `yaml:"cmd"`
	Env     map[string]string `yaml:"env"`
	EnvFile string            `yaml:"env_file"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

// Pricing enables the cost aggregator: a price table file plus the model
// name to look up in it.
type Pricing struct {
	File  string `yaml:"file"`
	Model string `yaml:"model"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Benchmark == "" && cfg.InstancesFile == "" {
		return fmt.Errorf("one of benchmark or instances_file is required")
	}
	if cfg.Benchmark != "" && cfg.InstancesFile != "" {
		return fmt.Errorf("benchmark and instances_file are mutually exclusive")
	}
	if len(cfg.Model.Command) == 0 && cfg.Model.Image == "" {
		return fmt.Errorf("model: one of command or image is required")
	}
	if len(cfg.Model.Command) > 0 && cfg.Model.Image != "" {
		return fmt.Errorf("model: command and image are mutually exclusive")
	}
	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	if cfg.NInstance < 0 {
		return fmt.Errorf("n_instance must be positive")
	}
	if cfg.NAttempts < 0 {
		return fmt.Errorf("n_attempts must be positive")
	}
	if cfg.Parallel < 0 {
		return fmt.Errorf("parallel must be positive")
	}
	if cfg.NAttempts == 0 {
		cfg.NAttempts = 1
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = 1
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	if cfg.Pricing.File != "" && cfg.Pricing.Model == "" {
		return fmt.Errorf("pricing: model is required when file is set")
	}
	return nil
}
