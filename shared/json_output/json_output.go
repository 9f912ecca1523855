package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/storage"
)

// SummaryReportJSON is the JSON form of a release run.
type SummaryReportJSON struct {
	GeneratedAt string `json:"generated_at"`
	model.ReleaseSummary
	FailedTargets int `json:"failed_targets"`
}

// HistoryReportJSON is the JSON form of the release history.
type HistoryReportJSON struct {
	GeneratedAt string                  `json:"generated_at"`
	Releases    []storage.ReleaseRecord `json:"releases"`
}

// TargetsReportJSON is the JSON form of one release's targets.
type TargetsReportJSON struct {
	ReleaseID int64                  `json:"release_id"`
	Targets   []storage.TargetRecord `json:"targets"`
}

// OutputSummaryJSON writes a release summary as JSON.
func OutputSummaryJSON(w io.Writer, s model.ReleaseSummary) error {
	return printJSON(w, SummaryReportJSON{
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		ReleaseSummary: s,
		FailedTargets:  s.FailedTargets(),
	})
}

// OutputHistoryJSON writes stored releases as JSON.
func OutputHistoryJSON(w io.Writer, records []storage.ReleaseRecord) error {
	if records == nil {
		records = []storage.ReleaseRecord{}
	}
	return printJSON(w, HistoryReportJSON{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Releases:    records,
	})
}

// OutputTargetsJSON writes the targets of one release as JSON.
func OutputTargetsJSON(w io.Writer, releaseID int64, targets []storage.TargetRecord) error {
	if targets == nil {
		targets = []storage.TargetRecord{}
	}
	return printJSON(w, TargetsReportJSON{ReleaseID: releaseID, Targets: targets})
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
