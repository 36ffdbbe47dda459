package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VascoSch92/bench-lab/internal/artifact"
	"github.com/VascoSch92/bench-lab/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [run-dir]",
		Short: "Re-score a stored execution",
		Long: "Read a run directory's execution artifact, re-apply the configured " +
			"metrics and aggregators, and rewrite the evaluation and report artifacts. " +
			"The model is not invoked.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			runDir, err := filepath.EvalSymlinks(args[0])
			if err != nil {
				return fmt.Errorf("resolving run dir: %w", err)
			}

			rec, err := artifact.ReadExecution(runDir)
			if err != nil {
				return err
			}
			if cfg.Benchmark == "" && cfg.InstancesFile == "" {
				cfg.Benchmark = rec.Benchmark
			}
			if cfg.NInstance == 0 {
				cfg.NInstance = rec.Params.NInstance
			}

			def, err := buildDefinition(cfg)
			if err != nil {
				return err
			}
			exec, err := rec.Execution(def)
			if err != nil {
				return fmt.Errorf("stored execution does not match %q: %w", def.Name, err)
			}

			ev := exec.Evaluate()
			if err := artifact.WriteEvaluation(runDir, artifact.NewEvaluationRecord(ev)); err != nil {
				return err
			}
			rep := ev.Report()
			if err := artifact.WriteReport(runDir, artifact.NewReportRecord(rep)); err != nil {
				return err
			}

			fmt.Printf("Re-scored %s\n\n", runDir)
			fmt.Print(rep.Summary())
			return nil
		},
	}
}
