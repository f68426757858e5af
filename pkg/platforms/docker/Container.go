package docker

import (
	"bytes"
	"context"
	"fmt"

	TDTypes "github.com/docker/docker/api/types"
	TDContainer "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/fleetci/fleetci/pkg/platforms"
	"github.com/fleetci/fleetci/pkg/static"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// RunContainer creates and starts a detached container with a restart-always
// policy, the way runner members are deployed.
func (docker *Docker) RunContainer(ctx context.Context, run platforms.RunOptions) error {
	env := make([]string, 0, len(run.Env))

	for key, value := range run.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	var cmd []string

	if run.Command != "" {
		cmd = []string{static.COMMAND_ENTRYPOINT, "-c", run.Command}
	}

	resp, err := docker.client.ContainerCreate(ctx, &TDContainer.Config{
		Hostname: run.Name,
		Image:    run.Image,
		Env:      env,
		Cmd:      cmd,
		Tty:      false,
	}, &TDContainer.HostConfig{
		RestartPolicy: TDContainer.RestartPolicy{
			Name: TDContainer.RestartPolicyAlways,
		},
	}, nil, nil, run.Name)

	if err != nil {
		return err
	}

	return docker.client.ContainerStart(ctx, resp.ID, TDContainer.StartOptions{})
}

func (docker *Docker) StartContainer(ctx context.Context, name string) error {
	container, err := docker.get(ctx, name)

	if err != nil {
		return err
	}

	return docker.client.ContainerStart(ctx, container.ID, TDContainer.StartOptions{})
}

func (docker *Docker) StopContainer(ctx context.Context, name string) error {
	container, err := docker.get(ctx, name)

	if err != nil {
		return err
	}

	duration := 10

	return docker.client.ContainerStop(ctx, container.ID, TDContainer.StopOptions{
		Signal:  "SIGTERM",
		Timeout: &duration,
	})
}

func (docker *Docker) RemoveContainer(ctx context.Context, name string, force bool) error {
	container, err := docker.get(ctx, name)

	if err != nil {
		return err
	}

	return docker.client.ContainerRemove(ctx, container.ID, TDContainer.RemoveOptions{
		Force: force,
	})
}

// Exec runs a command inside a running container and waits for it to finish.
func (docker *Docker) Exec(ctx context.Context, name string, command string, privileged bool) error {
	argv, err := shellwords.Parse(command)

	if err != nil {
		return errors.Wrap(err, "invalid exec command")
	}

	exec, err := docker.client.ContainerExecCreate(ctx, name, TDTypes.ExecConfig{
		AttachStderr: true,
		AttachStdout: true,
		Privileged:   privileged,
		Cmd:          argv,
	})

	if err != nil {
		return err
	}

	resp, err := docker.client.ContainerExecAttach(ctx, exec.ID, TDTypes.ExecStartCheck{})

	if err != nil {
		return err
	}

	defer resp.Close()

	var stdoutBuffer, stderrBuffer bytes.Buffer
	outputDone := make(chan error)

	go func() {
		_, copyErr := stdcopy.StdCopy(&stdoutBuffer, &stderrBuffer, resp.Reader)
		outputDone <- copyErr
	}()

	select {
	case err = <-outputDone:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	inspect, err := docker.client.ContainerExecInspect(ctx, exec.ID)

	if err != nil {
		return err
	}

	if inspect.ExitCode != 0 {
		return errors.Errorf("exec exited with code %d: %s", inspect.ExitCode, stderrBuffer.String())
	}

	return nil
}
