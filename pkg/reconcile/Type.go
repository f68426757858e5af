package reconcile

import (
	"context"

	"github.com/fleetci/fleetci/pkg/platforms"
)

// Tokens issues short-lived registration credentials for new runner members.
type Tokens interface {
	RegistrationToken(ctx context.Context, target string) (string, error)
}

type Reconciler struct {
	platform platforms.Platform
	tokens   Tokens
}

// Entry is one member-level outcome. Every attempted action lands in exactly
// one bucket of exactly one result.
type Entry struct {
	Name       string `json:"name"`
	Group      string `json:"group,omitempty"`
	Image      string `json:"image,omitempty"`
	Dockerfile string `json:"dockerfile,omitempty"`
	Operation  string `json:"operation,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type StartResult struct {
	Started   []Entry `json:"started"`
	Restarted []Entry `json:"restarted"`
	Running   []Entry `json:"running"`
	Removed   []Entry `json:"removed"`
	Errors    []Entry `json:"errors"`
}

type StopResult struct {
	Stopped []Entry `json:"stopped"`
	Skipped []Entry `json:"skipped"`
	Errors  []Entry `json:"errors"`
}

type RemoveResult struct {
	Removed []Entry `json:"removed"`
	Skipped []Entry `json:"skipped"`
	Errors  []Entry `json:"errors"`
}

type BuildResult struct {
	Built   []Entry `json:"built"`
	Skipped []Entry `json:"skipped"`
	Errors  []Entry `json:"errors"`
}

type MemberStatus struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type GroupStatus struct {
	ID      string         `json:"id"`
	Prefix  string         `json:"prefix"`
	Labels  []string       `json:"labels"`
	Total   int            `json:"total"`
	Running int            `json:"running"`
	Members []MemberStatus `json:"members"`
	Extra   []MemberStatus `json:"extra"`
}

type Totals struct {
	Count   int `json:"count"`
	Running int `json:"running"`
}

type ListResult struct {
	Groups []GroupStatus `json:"groups"`
	Total  Totals        `json:"total"`
}

func NewStartResult() *StartResult {
	return &StartResult{
		Started:   make([]Entry, 0),
		Restarted: make([]Entry, 0),
		Running:   make([]Entry, 0),
		Removed:   make([]Entry, 0),
		Errors:    make([]Entry, 0),
	}
}

func NewStopResult() *StopResult {
	return &StopResult{
		Stopped: make([]Entry, 0),
		Skipped: make([]Entry, 0),
		Errors:  make([]Entry, 0),
	}
}

func NewRemoveResult() *RemoveResult {
	return &RemoveResult{
		Removed: make([]Entry, 0),
		Skipped: make([]Entry, 0),
		Errors:  make([]Entry, 0),
	}
}

func NewBuildResult() *BuildResult {
	return &BuildResult{
		Built:   make([]Entry, 0),
		Skipped: make([]Entry, 0),
		Errors:  make([]Entry, 0),
	}
}
