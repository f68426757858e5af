package docker

import (
	IDClient "github.com/docker/docker/client"
)

type Docker struct {
	client *IDClient.Client
}
