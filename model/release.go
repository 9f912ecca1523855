package model

import "time"

// Target statuses reported by the build runner.
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusSkipped   = "skipped"
)

// TargetResult is the outcome of one build target.
type TargetResult struct {
	Name      string        `json:"name"`
	Command   string        `json:"command"`
	Status    string        `json:"status"`
	Duration  time.Duration `json:"duration_ns"`
	OutputDir string        `json:"output_dir"`
}

// SubstitutionResult records how many phrases were rewritten in a file.
type SubstitutionResult struct {
	Path         string `json:"path"`
	OldPhrase    string `json:"old_phrase"`
	NewPhrase    string `json:"new_phrase"`
	Replacements int    `json:"replacements"`
}

// ReleaseSummary describes a single run of the release flow.
type ReleaseSummary struct {
	App           string               `json:"app"`
	From          string               `json:"from"`
	To            string               `json:"to"`
	Selector      string               `json:"selector,omitempty"`
	Bumped        bool                 `json:"bumped"`
	Substitutions []SubstitutionResult `json:"substitutions,omitempty"`
	Targets       []TargetResult       `json:"targets,omitempty"`
	Cancelled     bool                 `json:"cancelled"`
	StartedAt     time.Time            `json:"started_at"`
	Duration      time.Duration        `json:"duration_ns"`
}

// FailedTargets returns the number of targets that did not succeed.
func (s ReleaseSummary) FailedTargets() int {
	n := 0
	for _, t := range s.Targets {
		if t.Status == StatusFailed {
			n++
		}
	}
	return n
}
