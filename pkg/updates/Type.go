package updates

import (
	"context"
)

// Store persists the desired-state file so a version bump survives restarts.
type Store interface {
	RewriteBaseImage(newImage string) error
}

// Versions resolves the latest published runner release.
type Versions interface {
	LatestRunnerVersion(ctx context.Context) (string, error)
}

type Checker struct {
	versions Versions
	store    Store
}

// Result never carries a Go error: failures land in the Error field so the
// caller can render them next to the version information.
type Result struct {
	CurrentVersion  string `json:"current_version"`
	LatestVersion   string `json:"latest_version"`
	UpdateAvailable bool   `json:"update_available"`
	Updated         bool   `json:"updated"`
	NewImage        string `json:"new_image,omitempty"`
	Error           string `json:"error,omitempty"`
}
