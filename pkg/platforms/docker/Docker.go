package docker

import (
	"context"
	TDContainer "github.com/docker/docker/api/types/container"
	IDClient "github.com/docker/docker/client"
)

func New() (*Docker, error) {
	cli, err := IDClient.NewClientWithOpts(IDClient.FromEnv, IDClient.WithAPIVersionNegotiation())

	if err != nil {
		return nil, err
	}

	return &Docker{client: cli}, nil
}

func (docker *Docker) Close() error {
	return docker.client.Close()
}

// IsDaemonRunning reports whether the docker daemon answers at all. Used as
// the single fatal check before a reconciliation pass begins.
func (docker *Docker) IsDaemonRunning(ctx context.Context) bool {
	_, err := docker.client.ContainerList(ctx, TDContainer.ListOptions{})
	return err == nil
}
