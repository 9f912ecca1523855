// Package output provides a service for rendering results to the console.
package output

import (
	"io"
	"os"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/storage"
)

// NewService creates a new output service with the specified format writing
// to stdout.
func NewService(format string) Service {
	return NewServiceTo(format, os.Stdout)
}

// NewServiceTo creates an output service writing to w.
func NewServiceTo(format string, w io.Writer) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		writer:   w,
		renderer: &realRenderer{},
	}
}

func (s *service) Format() Format {
	return s.format
}

func (s *service) RenderSummary(summary model.ReleaseSummary) error {
	if s.format == FormatJSON {
		return s.renderer.OutputSummaryJSON(s.writer, summary)
	}
	s.renderer.DrawSummaryTable(s.writer, summary)
	return nil
}

func (s *service) RenderHistory(records []storage.ReleaseRecord) error {
	if s.format == FormatJSON {
		return s.renderer.OutputHistoryJSON(s.writer, records)
	}
	s.renderer.DrawHistoryTable(s.writer, records)
	return nil
}

func (s *service) RenderTargets(releaseID int64, targets []storage.TargetRecord) error {
	if s.format == FormatJSON {
		return s.renderer.OutputTargetsJSON(s.writer, releaseID, targets)
	}
	s.renderer.DrawTargetsTable(s.writer, releaseID, targets)
	return nil
}
