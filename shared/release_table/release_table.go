package releasetable

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/storage"
)

// DrawSummaryTable prints the outcome of a release run.
func DrawSummaryTable(w io.Writer, s model.ReleaseSummary) {
	version := s.From
	if s.Bumped {
		version = fmt.Sprintf("%s -> %s", s.From, s.To)
	}
	fmt.Fprintf(w, "\n%s %s\n", s.App, version)

	if len(s.Substitutions) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"File", "Replaced", "Phrase"})
		for _, r := range s.Substitutions {
			t.AppendRow(table.Row{r.Path, r.Replacements, r.NewPhrase})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	if len(s.Targets) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Target", "Status", "Duration", "Output"})
		for _, r := range s.Targets {
			t.AppendRow(table.Row{r.Name, colorStatus(r.Status), r.Duration.Round(time.Second), r.OutputDir})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}
}

// DrawHistoryTable prints stored releases, newest first.
func DrawHistoryTable(w io.Writer, records []storage.ReleaseRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No releases recorded")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Date", "App", "From", "To", "Files", "OK", "Failed", "Duration"})
	for _, r := range records {
		to := r.ToVersion
		if r.Cancelled {
			to += " (cancelled)"
		}
		t.AppendRow(table.Row{
			r.ReleaseID,
			r.ReleaseTimestamp.Format("2006-01-02 15:04:05"),
			r.App,
			r.FromVersion,
			to,
			r.FilesChanged,
			r.SucceededTargets,
			r.FailedTargets,
			(time.Duration(r.DurationMS) * time.Millisecond).Round(time.Second),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawTargetsTable prints the build targets of one stored release.
func DrawTargetsTable(w io.Writer, releaseID int64, targets []storage.TargetRecord) {
	if len(targets) == 0 {
		fmt.Fprintf(w, "No targets recorded for release %d\n", releaseID)
		return
	}
	fmt.Fprintf(w, "\nRelease %d\n", releaseID)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Target", "Command", "Status", "Duration", "Output"})
	for _, r := range targets {
		t.AppendRow(table.Row{r.Name, r.Command, colorStatus(r.Status), (time.Duration(r.DurationMS) * time.Millisecond).Round(time.Second), r.OutputDir})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func colorStatus(status string) string {
	switch status {
	case model.StatusSuccess:
		return text.FgGreen.Sprint(status)
	case model.StatusFailed:
		return text.FgRed.Sprint(status)
	case model.StatusCancelled:
		return text.FgYellow.Sprint(status)
	default:
		return text.FgHiBlack.Sprint(status)
	}
}
