package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/mount"
	"github.com/moby/moby/client"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// Container invokes a docker container once per instance. A scratch
// directory is bind-mounted at /bench: the instance input is written to
// /bench/input.txt before the container starts, and the program writes its
// answer to /bench/output.txt.
type Container struct {
	Image   string
	Command []string
	Env     map[string]string

	cli client.APIClient
}

// NewContainer builds a container model. The docker client is configured
// from the environment, matching the docker CLI.
func NewContainer(image string, command []string, env map[string]string) (*Container, error) {
	if image == "" {
		return nil, fmt.Errorf("model image is empty")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}
	return &Container{Image: image, Command: command, Env: env, cli: cli}, nil
}

func (c *Container) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}

func (c *Container) Invoke(ctx context.Context, inst bench.Instance, args bench.Args) (bench.Output, error) {
	workDir, err := os.MkdirTemp("", "benchlab-")
	if err != nil {
		return bench.Output{}, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input.txt")
	if err := os.WriteFile(inputPath, []byte(inst.Input), 0o644); err != nil {
		return bench.Output{}, fmt.Errorf("writing instance input: %w", err)
	}

	env := instanceEnv(inst, args)
	env = append(env,
		"BENCHLAB_INPUT_FILE=/bench/input.txt",
		"BENCHLAB_OUTPUT_FILE=/bench/output.txt",
	)
	for k, v := range c.Env {
		env = append(env, k+"="+v)
	}

	initTrue := true
	hostCfg := &container.HostConfig{
		Mounts: []mount.Mount{
			{Type: mount.TypeBind, Source: workDir, Target: "/bench"},
		},
		Init: &initTrue,
	}
	containerCfg := &container.Config{
		Image:  c.Image,
		Cmd:    c.Command,
		Env:    env,
		Labels: map[string]string{"benchlab": "true"},
	}

	createResp, err := c.cli.ContainerCreate(ctx, client.ContainerCreateOptions{
		Config:     containerCfg,
		HostConfig: hostCfg,
	})
	if err != nil {
		return bench.Output{}, fmt.Errorf("creating container: %w", err)
	}
	containerID := createResp.ID
	defer func() {
		c.cli.ContainerRemove(context.Background(), containerID, client.ContainerRemoveOptions{Force: true})
	}()

	if _, err := c.cli.ContainerStart(ctx, containerID, client.ContainerStartOptions{}); err != nil {
		return bench.Output{}, fmt.Errorf("starting container: %w", err)
	}

	waitResult := c.cli.ContainerWait(ctx, containerID, client.ContainerWaitOptions{
		Condition: container.WaitConditionNotRunning,
	})
	select {
	case err := <-waitResult.Error:
		c.cli.ContainerKill(context.Background(), containerID, client.ContainerKillOptions{Signal: "SIGKILL"})
		if ctx.Err() != nil {
			return bench.Output{}, ctx.Err()
		}
		return bench.Output{}, fmt.Errorf("waiting for container: %w", err)
	case status := <-waitResult.Result:
		if status.StatusCode != 0 {
			return bench.Output{}, fmt.Errorf("container exited with status %d", status.StatusCode)
		}
	}

	raw, err := os.ReadFile(filepath.Join(workDir, "output.txt"))
	if err != nil {
		return bench.Output{}, fmt.Errorf("container produced no output file: %w", err)
	}
	return parseOutput(raw), nil
}
