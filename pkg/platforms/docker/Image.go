package docker

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	TDTypes "github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/archive"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/platforms"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

func (docker *Docker) ImageExists(ctx context.Context, tag string) bool {
	images, err := docker.client.ImageList(ctx, image.ListOptions{
		All: true,
	})

	if err != nil {
		return false
	}

	searchingFor := tag

	if !strings.Contains(searchingFor, ":") {
		searchingFor = fmt.Sprintf("%s:latest", searchingFor)
	}

	for _, img := range images {
		for _, repoTag := range img.RepoTags {
			if repoTag == searchingFor {
				return true
			}
		}
	}

	return false
}

// BuildImage builds an image from a dockerfile and tags it. The build context
// is the dockerfile's directory tarred up, and the daemon's JSON progress
// stream is drained so build errors surface as errors here.
func (docker *Docker) BuildImage(ctx context.Context, build platforms.BuildOptions) error {
	buildContext, err := archive.TarWithOptions(build.BuildDir, &archive.TarOptions{})

	if err != nil {
		return err
	}

	defer func() {
		buildContext.Close()
	}()

	dockerfile, err := filepath.Rel(build.BuildDir, build.Dockerfile)

	if err != nil {
		dockerfile = build.Dockerfile
	}

	resp, err := docker.client.ImageBuild(ctx, buildContext, TDTypes.ImageBuildOptions{
		Tags:       []string{build.Tag},
		Dockerfile: dockerfile,
		BuildArgs:  build.BuildArgs,
		Remove:     true,
	})

	if err != nil {
		return err
	}

	defer func() {
		resp.Body.Close()
	}()

	return drainBuildStream(resp.Body, build.Quiet)
}

type buildMessage struct {
	Stream   string `json:"stream"`
	Status   string `json:"status"`
	Progress string `json:"progress"`
	Error    string `json:"error"`
}

func drainBuildStream(body io.Reader, quiet bool) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	decoder := json.NewDecoder(body)

	for {
		var message buildMessage

		err := decoder.Decode(&message)

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if message.Error != "" {
			return errors.New(message.Error)
		}

		line := strings.TrimRight(message.Stream, "\n")

		if line == "" && message.Status != "" {
			line = strings.TrimSpace(fmt.Sprintf("%s %s", message.Status, message.Progress))
		}

		if line == "" {
			continue
		}

		if quiet {
			logger.Log.Debug(line)
		} else {
			logger.Log.Info(line)
		}
	}
}
