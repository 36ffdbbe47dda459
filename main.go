package main

import (
	"os"

	"github.com/VascoSch92/bench-lab/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
