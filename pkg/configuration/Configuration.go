package configuration

import "strings"

func NewConfig() *Configuration {
	return &Configuration{
		Defaults: &Defaults{},
		Runners:  make([]*RunnerGroup, 0),
		Scheduler: &Scheduler{
			CheckInterval: "15s",
			TimeWindow:    "00:00-23:59",
			Days:          []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
			Actions:       []string{},
			MaxRetries:    3,
		},
		Webhooks: &Webhooks{
			Timeout:    10,
			RetryCount: 3,
			RetryDelay: 5,
		},
	}
}

// BaseImageFor resolves the base image for a group, falling back to the
// fleet-wide default when the group does not override it.
func (configuration *Configuration) BaseImageFor(group *RunnerGroup) string {
	if group.BaseImage != "" {
		return group.BaseImage
	}

	return configuration.Defaults.BaseImage
}

// OrgURLFor resolves the registration target for a group, falling back to the
// fleet-wide default when the group does not override it.
func (configuration *Configuration) OrgURLFor(group *RunnerGroup) string {
	if group.OrgURL != "" {
		return strings.TrimSuffix(group.OrgURL, "/")
	}

	return strings.TrimSuffix(configuration.Defaults.OrgURL, "/")
}

func (group *RunnerGroup) HasBuildSpec() bool {
	return group.BuildImage != ""
}

func (group *RunnerGroup) LabelsJoined() string {
	return strings.Join(group.Labels, ",")
}
