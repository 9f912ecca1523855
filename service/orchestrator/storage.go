package orchestrator

import (
	"context"
	"encoding/json"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/storage"
)

func (s *service) persistIfEnabled(ctx context.Context, flags model.Flags, summary model.ReleaseSummary) error {
	if s.storageService == nil || !flags.Store {
		return nil
	}

	files := make([]storage.FileChange, 0, len(summary.Substitutions))
	for _, r := range summary.Substitutions {
		files = append(files, storage.FileChange{Path: r.Path, Replacements: r.Replacements})
	}
	targets := make([]storage.TargetRecord, 0, len(summary.Targets))
	for _, t := range summary.Targets {
		targets = append(targets, storage.TargetRecord{
			Name:       t.Name,
			Command:    t.Command,
			Status:     t.Status,
			DurationMS: t.Duration.Milliseconds(),
			OutputDir:  t.OutputDir,
		})
	}

	flagsJSON, _ := json.Marshal(flags)
	_, err := s.storageService.SaveRelease(ctx, storage.SaveReleaseInput{
		App:         summary.App,
		FromVersion: summary.From,
		ToVersion:   summary.To,
		Selector:    summary.Selector,
		Bumped:      summary.Bumped,
		Cancelled:   summary.Cancelled,
		DurationMS:  summary.Duration.Milliseconds(),
		CLIVersion:  s.versionInfo.Version,
		FlagsJSON:   string(flagsJSON),
		Files:       files,
		Targets:     targets,
	})
	return err
}
