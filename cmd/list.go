package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VascoSch92/bench-lab/internal/aggregate"
	"github.com/VascoSch92/bench-lab/internal/library"
	"github.com/VascoSch92/bench-lab/internal/metric"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List library benchmarks, metrics and aggregators",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Benchmarks:")
			for _, name := range library.Names() {
				desc, err := library.Describe(name)
				if err != nil {
					return err
				}
				fmt.Printf("  - %s: %s\n", name, desc)
			}
			fmt.Println("\nMetrics:")
			for _, name := range metric.NewRegistry().Names() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Println("\nAggregators:")
			for _, name := range aggregate.Names() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Println("  - score:<metric> (attached per configured metric)")
			fmt.Println("  - cost (attached when pricing is configured)")
			return nil
		},
	}
}
