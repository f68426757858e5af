package reconcile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/fleetci/fleetci/pkg/logger"
	"github.com/fleetci/fleetci/pkg/platforms"
	"github.com/fleetci/fleetci/pkg/static"
	"go.uber.org/zap"
)

func New(platform platforms.Platform, tokens Tokens) *Reconciler {
	return &Reconciler{
		platform: platform,
		tokens:   tokens,
	}
}

// Start converges every runner group towards its configured replica count in
// a single finite pass. Per-member failures are isolated into the errors
// bucket and never abort sibling members or groups.
func (reconciler *Reconciler) Start(ctx context.Context, config *configuration.Configuration) *StartResult {
	result := NewStartResult()
	baseVersion := BaseVersion(config.Defaults.BaseImage)

	for _, group := range config.Runners {
		image, err := ResolveImage(group, baseVersion)

		if err != nil {
			result.Errors = append(result.Errors, Entry{Name: group.ID, Operation: static.OPERATION_START, Reason: err.Error()})
			continue
		}

		if group.HasBuildSpec() && !reconciler.platform.ImageExists(ctx, image) {
			err = reconciler.buildImage(ctx, config, group, image, true)

			if err != nil {
				// A group with no valid image cannot proceed at all.
				result.Errors = append(result.Errors, Entry{Name: group.ID, Operation: static.OPERATION_START, Reason: fmt.Sprintf("build failed: %s", err.Error())})
				continue
			}
		}

		reconciler.prune(ctx, group, result)

		for index := 1; index <= group.Replicas; index++ {
			name := NameMember(group.NamePrefix, index)

			err = reconciler.convergeMember(ctx, config, group, name, image, result)

			if err != nil {
				result.Errors = append(result.Errors, Entry{Name: name, Group: group.ID, Operation: static.OPERATION_START, Reason: err.Error()})
			}
		}
	}

	return result
}

func (reconciler *Reconciler) convergeMember(ctx context.Context, config *configuration.Configuration, group *configuration.RunnerGroup, name string, image string, result *StartResult) error {
	if !reconciler.platform.ContainerExists(ctx, name) {
		err := reconciler.deploy(ctx, config, group, name, image)

		if err != nil {
			return err
		}

		result.Started = append(result.Started, Entry{Name: name, Group: group.ID, Image: image})

		return nil
	}

	current, ok := reconciler.platform.ContainerImage(ctx, name)

	if ok && current == image {
		if reconciler.platform.ContainerRunning(ctx, name) {
			result.Running = append(result.Running, Entry{Name: name, Group: group.ID})
			return nil
		}

		err := reconciler.platform.StartContainer(ctx, name)

		if err != nil {
			return err
		}

		result.Restarted = append(result.Restarted, Entry{Name: name, Group: group.ID})

		return nil
	}

	// Image mismatch: replace the member in place with the resolved tag.
	if reconciler.platform.ContainerRunning(ctx, name) {
		err := reconciler.platform.StopContainer(ctx, name)

		if err != nil {
			return err
		}
	}

	reconciler.deregister(ctx, name)

	err := reconciler.platform.RemoveContainer(ctx, name, true)

	if err != nil {
		return err
	}

	err = reconciler.deploy(ctx, config, group, name, image)

	if err != nil {
		return err
	}

	result.Started = append(result.Started, Entry{Name: name, Group: group.ID, Image: image, Reason: "image updated"})

	return nil
}

// deploy obtains a fresh registration token and creates a new member. The
// token lives only for this single action.
func (reconciler *Reconciler) deploy(ctx context.Context, config *configuration.Configuration, group *configuration.RunnerGroup, name string, image string) error {
	target := config.OrgURLFor(group)

	token, err := reconciler.tokens.RegistrationToken(ctx, target)

	if err != nil {
		return err
	}

	command := fmt.Sprintf(
		"./config.sh --url %s --token %s --name %s --labels %s --unattended && ./run.sh",
		target, token, name, group.LabelsJoined(),
	)

	return reconciler.platform.RunContainer(ctx, platforms.RunOptions{
		Name:    name,
		Image:   image,
		Command: command,
		Env: map[string]string{
			static.ENV_RUNNER_NAME:   name,
			static.ENV_RUNNER_REPO:   target,
			static.ENV_RUNNER_TOKEN:  token,
			static.ENV_RUNNER_LABELS: group.LabelsJoined(),
		},
	})
}

// prune removes members whose trailing index exceeds the configured replica
// count. Members at or below the count are never touched here.
func (reconciler *Reconciler) prune(ctx context.Context, group *configuration.RunnerGroup, result *StartResult) {
	names, err := reconciler.platform.ListContainers(ctx, fmt.Sprintf("%s-", group.NamePrefix))

	if err != nil {
		result.Errors = append(result.Errors, Entry{Name: group.ID, Operation: "removal", Reason: err.Error()})
		return
	}

	for _, name := range names {
		index, ok := ParseIndex(name)

		if !ok {
			continue
		}

		if index <= group.Replicas {
			continue
		}

		err = reconciler.teardown(ctx, name, index)

		if err != nil {
			result.Errors = append(result.Errors, Entry{Name: name, Group: group.ID, Operation: "removal", Reason: err.Error()})
			continue
		}

		result.Removed = append(result.Removed, Entry{Name: name, Group: group.ID})
	}
}

// teardown deregisters and removes a single member: ensure it runs so the
// agent can be deregistered in-container, then force-remove it and clean its
// local working directory.
func (reconciler *Reconciler) teardown(ctx context.Context, name string, index int) error {
	if !reconciler.platform.ContainerRunning(ctx, name) {
		err := reconciler.platform.StartContainer(ctx, name)

		if err != nil {
			return err
		}
	}

	reconciler.deregister(ctx, name)

	err := reconciler.platform.RemoveContainer(ctx, name, true)

	if err != nil {
		return err
	}

	workdir := fmt.Sprintf("%s-%d", static.RUNNER_DIR_PREFIX, index)

	return os.RemoveAll(workdir)
}

// deregister is best-effort: the container is being destroyed regardless, so
// a failure is logged and otherwise dropped.
func (reconciler *Reconciler) deregister(ctx context.Context, name string) {
	err := reconciler.platform.Exec(ctx, name, static.COMMAND_DEREGISTER, true)

	if err != nil {
		logger.Log.Warn("runner deregistration failed", zap.String("container", name), zap.String("error", err.Error()))
	}
}

// Stop stops running members without deregistering them.
func (reconciler *Reconciler) Stop(ctx context.Context, config *configuration.Configuration) *StopResult {
	result := NewStopResult()

	for _, group := range config.Runners {
		for index := 1; index <= group.Replicas; index++ {
			name := NameMember(group.NamePrefix, index)

			if !reconciler.platform.ContainerRunning(ctx, name) {
				result.Skipped = append(result.Skipped, Entry{Name: name, Group: group.ID, Reason: "not running"})
				continue
			}

			err := reconciler.platform.StopContainer(ctx, name)

			if err != nil {
				result.Errors = append(result.Errors, Entry{Name: name, Group: group.ID, Operation: static.OPERATION_STOP, Reason: err.Error()})
				continue
			}

			result.Stopped = append(result.Stopped, Entry{Name: name, Group: group.ID})
		}
	}

	return result
}

// Remove deregisters and removes every configured member.
func (reconciler *Reconciler) Remove(ctx context.Context, config *configuration.Configuration) *RemoveResult {
	result := NewRemoveResult()

	for _, group := range config.Runners {
		for index := 1; index <= group.Replicas; index++ {
			name := NameMember(group.NamePrefix, index)

			if !reconciler.platform.ContainerExists(ctx, name) {
				result.Skipped = append(result.Skipped, Entry{Name: name, Group: group.ID, Reason: "container not found"})
				continue
			}

			err := reconciler.teardown(ctx, name, index)

			if err != nil {
				result.Errors = append(result.Errors, Entry{Name: name, Group: group.ID, Operation: static.OPERATION_REMOVE, Reason: err.Error()})
				continue
			}

			result.Removed = append(result.Removed, Entry{Name: name, Group: group.ID})
		}
	}

	return result
}

// List is a read-only snapshot: member statuses, per-group and fleet-wide
// tallies, and a preview of what a subsequent start would prune.
func (reconciler *Reconciler) List(ctx context.Context, config *configuration.Configuration) *ListResult {
	result := &ListResult{Groups: make([]GroupStatus, 0)}

	for _, group := range config.Runners {
		groupStatus := GroupStatus{
			ID:      group.ID,
			Prefix:  group.NamePrefix,
			Labels:  group.Labels,
			Total:   group.Replicas,
			Members: make([]MemberStatus, 0),
			Extra:   make([]MemberStatus, 0),
		}

		for index := 1; index <= group.Replicas; index++ {
			name := NameMember(group.NamePrefix, index)
			status := static.STATUS_ABSENT

			if reconciler.platform.ContainerExists(ctx, name) {
				if reconciler.platform.ContainerRunning(ctx, name) {
					status = static.STATUS_RUNNING
					groupStatus.Running++
					result.Total.Running++
				} else {
					status = static.STATUS_STOPPED
				}
			}

			groupStatus.Members = append(groupStatus.Members, MemberStatus{Index: index, Name: name, Status: status})
		}

		names, err := reconciler.platform.ListContainers(ctx, fmt.Sprintf("%s-", group.NamePrefix))

		if err == nil {
			for _, name := range names {
				index, ok := ParseIndex(name)

				if !ok || index <= group.Replicas {
					continue
				}

				status := static.STATUS_WILL_BE_REMOVED

				if reconciler.platform.ContainerRunning(ctx, name) {
					status = static.STATUS_RUNNING_WILL_BE_REMOVED
				}

				groupStatus.Extra = append(groupStatus.Extra, MemberStatus{Index: index, Name: name, Status: status})
			}
		}

		result.Groups = append(result.Groups, groupStatus)
		result.Total.Count += group.Replicas
	}

	return result
}

// Build builds the custom image for every group that configures one.
func (reconciler *Reconciler) Build(ctx context.Context, config *configuration.Configuration, quiet bool) *BuildResult {
	result := NewBuildResult()
	baseVersion := BaseVersion(config.Defaults.BaseImage)

	for _, group := range config.Runners {
		if !group.HasBuildSpec() {
			result.Skipped = append(result.Skipped, Entry{Name: group.ID, Reason: "no build image configured"})
			continue
		}

		image, err := ResolveImage(group, baseVersion)

		if err != nil {
			result.Errors = append(result.Errors, Entry{Name: group.ID, Operation: static.OPERATION_BUILD, Reason: err.Error()})
			continue
		}

		err = reconciler.buildImage(ctx, config, group, image, quiet)

		if err != nil {
			result.Errors = append(result.Errors, Entry{Name: group.ID, Operation: static.OPERATION_BUILD, Reason: err.Error()})
			continue
		}

		result.Built = append(result.Built, Entry{Name: group.ID, Image: image, Dockerfile: group.BuildImage})
	}

	return result
}

func (reconciler *Reconciler) buildImage(ctx context.Context, config *configuration.Configuration, group *configuration.RunnerGroup, image string, quiet bool) error {
	buildDir := filepath.Dir(group.BuildImage)
	baseImage := config.BaseImageFor(group)

	return reconciler.platform.BuildImage(ctx, platforms.BuildOptions{
		Tag:        image,
		Dockerfile: group.BuildImage,
		BuildDir:   buildDir,
		BuildArgs: map[string]*string{
			"BASE_IMAGE": &baseImage,
		},
		Quiet: quiet,
	})
}
