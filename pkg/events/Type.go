package events

import (
	"time"
)

type Event struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	Reason    string            `json:"reason,omitempty"`
	Data      map[string]string `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

const EVENT_RUNNER_STARTED = "runner_started"
const EVENT_RUNNER_STOPPED = "runner_stopped"
const EVENT_RUNNER_REMOVED = "runner_removed"
const EVENT_RUNNER_ERROR = "runner_error"
const EVENT_RUNNER_SKIPPED = "runner_skipped"
const EVENT_BUILD_COMPLETED = "build_completed"
const EVENT_BUILD_FAILED = "build_failed"
const EVENT_IMAGE_UPDATED = "image_updated"
const EVENT_UPDATE_AVAILABLE = "update_available"
const EVENT_UPDATE_ERROR = "update_error"
