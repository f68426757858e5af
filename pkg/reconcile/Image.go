package reconcile

import (
	"fmt"
	"regexp"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/pkg/errors"
)

var ErrConfiguration = errors.New("invalid runner group configuration")

var versionSuffix = regexp.MustCompile(`:([\d.]+)$`)

// BaseVersion extracts the trailing :<version> suffix from a base image
// reference. A reference without a parseable version pins to latest.
func BaseVersion(baseImage string) string {
	match := versionSuffix.FindStringSubmatch(baseImage)

	if match == nil {
		return "latest"
	}

	return match[1]
}

// ResolveImage derives the deployable image tag for a group. Deterministic:
// the same group and base version always resolve to the same tag.
func ResolveImage(group *configuration.RunnerGroup, baseVersion string) (string, error) {
	if !group.HasBuildSpec() {
		return fmt.Sprintf("%s:latest", group.NamePrefix), nil
	}

	if group.Technology == "" || group.TechnologyVersion == "" {
		return "", errors.Wrapf(ErrConfiguration, "group %s: build_image requires technology and technology_version", group.ID)
	}

	return fmt.Sprintf("%s:%s-%s", group.Technology, group.TechnologyVersion, baseVersion), nil
}
