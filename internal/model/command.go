package model

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// Command invokes a subprocess once per instance. The instance input is
// written to stdin and stdout is the model output.
type Command struct {
	Argv []string
	Env  map[string]string
}

// NewCommand builds a subprocess model from an argv vector.
func NewCommand(argv []string, env map[string]string) (*Command, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("model command is empty")
	}
	return &Command{Argv: argv, Env: env}, nil
}

func (c *Command) Invoke(ctx context.Context, inst bench.Instance, args bench.Args) (bench.Output, error) {
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdin = strings.NewReader(inst.Input)

	cmd.Env = append(os.Environ(), instanceEnv(inst, args)...)
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return bench.Output{}, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return bench.Output{}, fmt.Errorf("model command failed: %w: %s", err, msg)
		}
		return bench.Output{}, fmt.Errorf("model command failed: %w", err)
	}
	return parseOutput(stdout.Bytes()), nil
}
