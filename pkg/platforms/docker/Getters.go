package docker

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/docker/docker/api/types"
	TDContainer "github.com/docker/docker/api/types/container"
)

var errNotFound = errors.New("container not found")

func (docker *Docker) get(ctx context.Context, containerName string) (types.Container, error) {
	containers, err := docker.client.ContainerList(ctx, TDContainer.ListOptions{
		All: true,
	})

	if err != nil {
		return types.Container{}, err
	}

	for i, container := range containers {
		if container.ID == containerName {
			return containers[i], nil
		}

		for _, name := range container.Names {
			if name == "/"+containerName {
				return containers[i], nil
			}
		}
	}

	return types.Container{}, errNotFound
}

// ContainerExists resolves every runtime fault to false so the reconciliation
// loop keeps moving; errors surface at the action layer instead.
func (docker *Docker) ContainerExists(ctx context.Context, name string) bool {
	_, err := docker.get(ctx, name)
	return err == nil
}

func (docker *Docker) ContainerRunning(ctx context.Context, name string) bool {
	container, err := docker.get(ctx, name)

	if err != nil {
		return false
	}

	return container.State == "running"
}

func (docker *Docker) ContainerImage(ctx context.Context, name string) (string, bool) {
	container, err := docker.get(ctx, name)

	if err != nil {
		return "", false
	}

	return container.Image, true
}

func (docker *Docker) ListContainers(ctx context.Context, prefix string) ([]string, error) {
	containers, err := docker.client.ContainerList(ctx, TDContainer.ListOptions{
		All: true,
	})

	if err != nil {
		return nil, err
	}

	names := make([]string, 0)

	for _, container := range containers {
		for _, name := range container.Names {
			trimmed := strings.TrimPrefix(name, "/")

			if strings.HasPrefix(trimmed, prefix) {
				names = append(names, trimmed)
				break
			}
		}
	}

	sort.Strings(names)

	return names, nil
}
