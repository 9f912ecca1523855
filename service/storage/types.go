package storage

import (
	"context"
	"time"
)

// Service defines persistence and query operations for release history.
type Service interface {
	SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error)
	GetRecentReleases(app string, limit int) ([]ReleaseRecord, error)
	ListTargets(releaseID int64) ([]TargetRecord, error)
	Vacuum(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveReleaseInput is the payload saved for a completed release run.
type SaveReleaseInput struct {
	App         string
	FromVersion string
	ToVersion   string
	Selector    string
	Bumped      bool
	Cancelled   bool
	DurationMS  int64
	CLIVersion  string
	FlagsJSON   string
	Files       []FileChange
	Targets     []TargetRecord
}

// FileChange is one rewritten file.
type FileChange struct {
	Path         string `json:"path"`
	Replacements int    `json:"replacements"`
}

// TargetRecord is the stored outcome of one build target.
type TargetRecord struct {
	Name       string `json:"name"`
	Command    string `json:"command"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	OutputDir  string `json:"output_dir"`
}

// ReleaseRecord provides compact release metadata.
type ReleaseRecord struct {
	ReleaseID        int64     `json:"release_id"`
	App              string    `json:"app"`
	FromVersion      string    `json:"from_version"`
	ToVersion        string    `json:"to_version"`
	Selector         string    `json:"selector"`
	Bumped           bool      `json:"bumped"`
	Cancelled        bool      `json:"cancelled"`
	ReleaseTimestamp time.Time `json:"release_timestamp"`
	DurationMS       int64     `json:"duration_ms"`
	SucceededTargets int       `json:"succeeded_targets"`
	FailedTargets    int       `json:"failed_targets"`
	FilesChanged     int       `json:"files_changed"`
	CLIVersion       string    `json:"cli_version"`
}
