package static

// Project Constants
const (
	PROJECT = "fleetci"
)

// File Constants
const (
	DEFAULT_CONFIG_FILE = "runners.yaml"
	DEFAULT_ENV_FILE    = ".env"
	RUNNER_DIR_PREFIX   = "runner"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Platform Constants
const PLATFORM_DOCKER = "docker"

// Runner Environment Constants
const (
	ENV_RUNNER_NAME   = "RUNNER_NAME"
	ENV_RUNNER_REPO   = "RUNNER_REPO"
	ENV_RUNNER_TOKEN  = "RUNNER_TOKEN"
	ENV_RUNNER_LABELS = "RUNNER_LABELS"
	ENV_GITHUB_TOKEN  = "GITHUB_TOKEN"
)

// GitHub API Constants
const (
	GITHUB_API            = "https://api.github.com"
	GITHUB_RUNNER_RELEASE = "repos/actions/runner/releases/latest"
)

// Runner Agent Commands
const (
	COMMAND_DEREGISTER = `bash -c "./config.sh remove --token $RUNNER_TOKEN || true"`
	COMMAND_ENTRYPOINT = "/bin/bash"
)

// Operation Constants
const (
	OPERATION_BUILD  = "build"
	OPERATION_START  = "start"
	OPERATION_STOP   = "stop"
	OPERATION_REMOVE = "remove"
	OPERATION_LIST   = "list"
	OPERATION_UPDATE = "update"
)

// Member Status Constants
const (
	STATUS_RUNNING                 = "running"
	STATUS_STOPPED                 = "stopped"
	STATUS_ABSENT                  = "absent"
	STATUS_WILL_BE_REMOVED         = "will_be_removed"
	STATUS_RUNNING_WILL_BE_REMOVED = "running_will_be_removed"
)
