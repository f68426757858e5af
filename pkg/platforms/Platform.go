package platforms

import "context"

// Platform is the container runtime consumed by the reconciler. Existence and
// status queries are best-effort and resolve runtime faults to false/absent;
// actions return their errors so the caller can bucket them.
type Platform interface {
	IsDaemonRunning(ctx context.Context) bool
	ContainerExists(ctx context.Context, name string) bool
	ContainerRunning(ctx context.Context, name string) bool
	ContainerImage(ctx context.Context, name string) (string, bool)
	ListContainers(ctx context.Context, prefix string) ([]string, error)
	ImageExists(ctx context.Context, tag string) bool
	BuildImage(ctx context.Context, build BuildOptions) error
	RunContainer(ctx context.Context, run RunOptions) error
	StartContainer(ctx context.Context, name string) error
	StopContainer(ctx context.Context, name string) error
	RemoveContainer(ctx context.Context, name string, force bool) error
	Exec(ctx context.Context, name string, command string, privileged bool) error
}
