package version

import "strings"

type Version struct {
	Client string
}

func New(version string) *Version {
	return &Version{
		Client: strings.TrimSpace(version),
	}
}

func (version *Version) ToString() string {
	return version.Client
}
