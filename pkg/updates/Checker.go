package updates

import (
	"context"
	"regexp"

	"github.com/fleetci/fleetci/pkg/configuration"
)

var versionSuffix = regexp.MustCompile(`:([\d.]+)$`)

func New(versions Versions, store Store) *Checker {
	return &Checker{
		versions: versions,
		store:    store,
	}
}

// Check compares the pinned base image version against the latest runner
// release and, when apply is set, rewrites the pin in the configuration file.
func (checker *Checker) Check(ctx context.Context, config *configuration.Configuration, apply bool) *Result {
	result := &Result{}

	baseImage := config.Defaults.BaseImage

	if baseImage == "" {
		result.Error = "no base_image configured under defaults"
		return result
	}

	match := versionSuffix.FindStringSubmatch(baseImage)

	if match != nil {
		result.CurrentVersion = match[1]
	}

	latest, err := checker.versions.LatestRunnerVersion(ctx)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.LatestVersion = latest

	if result.CurrentVersion == latest {
		return result
	}

	result.UpdateAvailable = true

	if !apply {
		return result
	}

	newImage := versionSuffix.ReplaceAllString(baseImage, ":"+latest)

	err = checker.store.RewriteBaseImage(newImage)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Updated = true
	result.NewImage = newImage

	return result
}
