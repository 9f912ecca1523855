// Package orchestrator coordinates a release: version bump, file rewrites
// and builds.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/build"
	"github.com/nokutoka/nokubuild/service/config"
	"github.com/nokutoka/nokubuild/service/manifest"
	"github.com/nokutoka/nokubuild/service/output"
	"github.com/nokutoka/nokubuild/service/storage"
	"github.com/nokutoka/nokubuild/service/substitute"
	"github.com/nokutoka/nokubuild/service/version"
	"github.com/nokutoka/nokubuild/utils/logger"
)

// NewService creates a new orchestrator service. storageService may be nil.
func NewService(
	cfg *config.Config,
	buildService build.Service,
	outputService output.Service,
	storageService storage.Service,
	versionInfo model.VersionInfo,
	buildOutput io.Writer,
) Service {
	return &service{
		cfg:            cfg,
		buildService:   buildService,
		outputService:  outputService,
		storageService: storageService,
		versionInfo:    versionInfo,
		buildOutput:    buildOutput,
	}
}

// Orchestrate runs the release flow once. Interrupts are caught only while
// the build runs: one there returns build.ErrCancelled and keeps the version
// edits made before it.
func (s *service) Orchestrate(ctx context.Context, flags model.Flags) (model.ReleaseSummary, error) {
	started := time.Now()
	summary := model.ReleaseSummary{App: s.cfg.AppName, StartedAt: started}

	var selector version.Selector
	if !flags.NoBump {
		var err error
		if selector, err = version.ParseSelector(flags.Selector); err != nil {
			return summary, err
		}
	}

	current, err := s.currentVersion(flags)
	if err != nil {
		return summary, err
	}
	summary.From, summary.To = current, current

	if flags.NoBump {
		logger.Info("%s %s", s.cfg.AppName, logger.Current(current))
	} else {
		if err := s.bump(selector, &summary); err != nil {
			return summary, err
		}
	}

	var buildErr error
	if !flags.NoBuild {
		buildCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		summary.Targets, buildErr = s.buildService.Run(buildCtx, s.cfg.Targets, build.Options{
			NoOpen:        flags.NoOpen,
			Quiet:         flags.Quiet,
			KillProcesses: s.cfg.KillProcesses,
			Output:        s.buildOutput,
		})
		stop()
		summary.Cancelled = errors.Is(buildErr, build.ErrCancelled)
	}
	summary.Duration = time.Since(started)

	// The build context is cancelled after an interrupt; the record must
	// still be written.
	if err := s.persistIfEnabled(context.WithoutCancel(ctx), flags, summary); err != nil {
		logger.Warn("Failed to record release history: %v", err)
	}

	if buildErr != nil {
		return summary, buildErr
	}
	if err := s.outputService.RenderSummary(summary); err != nil {
		return summary, fmt.Errorf("failed to render summary: %w", err)
	}
	return summary, nil
}

func (s *service) currentVersion(flags model.Flags) (string, error) {
	if flags.From != "" {
		return version.Core(flags.From), nil
	}
	v, err := manifest.Current(s.cfg.Manifest, s.cfg.VersionFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current version: %w", err)
	}
	return version.Core(v), nil
}

func (s *service) bump(selector version.Selector, summary *model.ReleaseSummary) error {
	next, err := version.Bump(summary.From, selector)
	if err != nil {
		return err
	}
	summary.Selector = string(selector)
	summary.To = next

	logger.Info("%s %s -> %s", s.cfg.AppName, logger.Old(summary.From), logger.New(next))

	results, err := substitute.ApplyAll(s.cfg.Substitutions, summary.From, next)
	summary.Substitutions = results
	if err != nil {
		return fmt.Errorf("failed to update version in project files: %w", err)
	}
	summary.Bumped = true
	return nil
}
