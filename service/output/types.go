package output

import (
	"io"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/storage"
	jsonoutput "github.com/nokutoka/nokubuild/shared/json_output"
	releasetable "github.com/nokutoka/nokubuild/shared/release_table"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing tables and JSON documents
type Renderer interface {
	DrawSummaryTable(w io.Writer, summary model.ReleaseSummary)
	DrawHistoryTable(w io.Writer, records []storage.ReleaseRecord)
	DrawTargetsTable(w io.Writer, releaseID int64, targets []storage.TargetRecord)
	OutputSummaryJSON(w io.Writer, summary model.ReleaseSummary) error
	OutputHistoryJSON(w io.Writer, records []storage.ReleaseRecord) error
	OutputTargetsJSON(w io.Writer, releaseID int64, targets []storage.TargetRecord) error
}

type realRenderer struct{}

func (r *realRenderer) DrawSummaryTable(w io.Writer, summary model.ReleaseSummary) {
	releasetable.DrawSummaryTable(w, summary)
}

func (r *realRenderer) DrawHistoryTable(w io.Writer, records []storage.ReleaseRecord) {
	releasetable.DrawHistoryTable(w, records)
}

func (r *realRenderer) DrawTargetsTable(w io.Writer, releaseID int64, targets []storage.TargetRecord) {
	releasetable.DrawTargetsTable(w, releaseID, targets)
}

func (r *realRenderer) OutputSummaryJSON(w io.Writer, summary model.ReleaseSummary) error {
	return jsonoutput.OutputSummaryJSON(w, summary)
}

func (r *realRenderer) OutputHistoryJSON(w io.Writer, records []storage.ReleaseRecord) error {
	return jsonoutput.OutputHistoryJSON(w, records)
}

func (r *realRenderer) OutputTargetsJSON(w io.Writer, releaseID int64, targets []storage.TargetRecord) error {
	return jsonoutput.OutputTargetsJSON(w, releaseID, targets)
}

type service struct {
	format   Format
	writer   io.Writer
	renderer Renderer
}

// Service is the interface for output service.
type Service interface {
	Format() Format
	RenderSummary(summary model.ReleaseSummary) error
	RenderHistory(records []storage.ReleaseRecord) error
	RenderTargets(releaseID int64, targets []storage.TargetRecord) error
}
