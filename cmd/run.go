package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/VascoSch92/bench-lab/internal/aggregate"
	"github.com/VascoSch92/bench-lab/internal/artifact"
	"github.com/VascoSch92/bench-lab/internal/bench"
	"github.com/VascoSch92/bench-lab/internal/config"
	"github.com/VascoSch92/bench-lab/internal/library"
	"github.com/VascoSch92/bench-lab/internal/model"
	"github.com/VascoSch92/bench-lab/internal/pricing"
)

var (
	flagBenchmark string
	flagNInstance int
	flagAttempts  int
	flagTimeout   float64
	flagParallel  int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a benchmark run",
		RunE:  runBenchmark,
	}
	cmd.Flags().StringVar(&flagBenchmark, "benchmark", "", "override the configured benchmark")
	cmd.Flags().IntVar(&flagNInstance, "n-instance", 0, "limit to the first N instances")
	cmd.Flags().IntVar(&flagAttempts, "attempts", 0, "override the retry budget per instance")
	cmd.Flags().Float64Var(&flagTimeout, "timeout", 0, "per-invocation timeout in seconds")
	cmd.Flags().IntVar(&flagParallel, "parallel", 0, "max concurrent instances")
	return cmd
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if flagBenchmark != "" {
		cfg.Benchmark = flagBenchmark
		cfg.InstancesFile = ""
	}
	if flagNInstance > 0 {
		cfg.NInstance = flagNInstance
	}
	if flagAttempts > 0 {
		cfg.NAttempts = flagAttempts
	}
	if flagTimeout > 0 {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flagParallel > 0 {
		cfg.Parallel = flagParallel
	}

	def, err := buildDefinition(cfg)
	if err != nil {
		return err
	}
	m, closeModel, err := buildModel(&cfg.Model)
	if err != nil {
		return err
	}
	defer closeModel()

	runDir, err := artifact.CreateRunDir(cfg.Results.Dir)
	if err != nil {
		return err
	}
	fmt.Printf("Run directory: %s\n", runDir)
	fmt.Printf("Running %s (%d instances, %d attempts, parallel %d)...\n",
		def.Name, len(def.Instances), def.Params.NAttempts, def.Params.Parallel)

	ctx := context.Background()
	exec := def.Run(ctx, m, bench.Args(cfg.Args))
	if err := artifact.WriteExecution(runDir, artifact.NewExecutionRecord(exec)); err != nil {
		return err
	}

	ev := exec.Evaluate()
	if err := artifact.WriteEvaluation(runDir, artifact.NewEvaluationRecord(ev)); err != nil {
		return err
	}

	rep := ev.Report()
	if err := artifact.WriteReport(runDir, artifact.NewReportRecord(rep)); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(rep.Summary())
	return nil
}

// buildDefinition assembles the benchmark from config: a catalog entry or
// a user dataset file, with metric and aggregator overrides applied.
func buildDefinition(cfg *config.Config) (*bench.Definition, error) {
	var ds *library.Dataset
	var err error
	if cfg.Benchmark != "" {
		ds, err = library.Get(cfg.Benchmark)
	} else {
		ds, err = library.LoadDataset(cfg.InstancesFile)
	}
	if err != nil {
		return nil, err
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ds.Metrics
	}
	aggs, err := buildAggregators(cfg, metrics)
	if err != nil {
		return nil, err
	}

	return library.Build(ds, library.Options{
		Metrics:     metrics,
		Aggregators: aggs,
		InstanceIDs: cfg.InstanceIDs,
		Params: bench.Params{
			Timeout:   time.Duration(cfg.TimeoutSeconds * float64(time.Second)),
			NInstance: cfg.NInstance,
			NAttempts: cfg.NAttempts,
			Parallel:  cfg.Parallel,
		},
	})
}

func buildAggregators(cfg *config.Config, metrics []string) ([]bench.Aggregator, error) {
	var aggs []bench.Aggregator
	if len(cfg.Aggregators) > 0 {
		for _, name := range cfg.Aggregators {
			a, err := aggregate.ByName(name)
			if err != nil {
				return nil, err
			}
			aggs = append(aggs, a)
		}
		for _, m := range metrics {
			aggs = append(aggs, aggregate.Score{Metric: m})
		}
	} else {
		aggs = library.DefaultAggregators(metrics)
	}

	if cfg.Pricing.File != "" {
		table, err := pricing.Load(cfg.Pricing.File)
		if err != nil {
			return nil, err
		}
		aggs = append(aggs, aggregate.Cost{Table: table, Model: cfg.Pricing.Model})
	}
	return aggs, nil
}

// buildModel picks the adapter for the configured callable. The returned
// cleanup closes the docker client when one was opened.
func buildModel(mc *config.Model) (bench.Model, func(), error) {
	env := map[string]string{}
	if mc.EnvFile != "" {
		fileEnv, err := model.ParseEnvFile(mc.EnvFile)
		if err != nil {
			return nil, nil, fmt.Errorf("reading model env file: %w", err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for k, v := range mc.Env {
		env[k] = v
	}

	if mc.Image != "" {
		c, err := model.NewContainer(mc.Image, mc.Cmd, env)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	}
	c, err := model.NewCommand(mc.Command, env)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {}, nil
}
