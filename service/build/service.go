// Package build runs the external build tool for each release target.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/config"
	"github.com/nokutoka/nokubuild/shared/spinner"
	"github.com/nokutoka/nokubuild/utils/logger"
)

// NewService creates a build runner for the host operating system.
func NewService(executor Executor) Service {
	return newServiceForOS(executor, runtime.GOOS)
}

func newServiceForOS(executor Executor, goos string) Service {
	if executor == nil {
		executor = NewExecExecutor()
	}
	return &service{exec: executor, goos: goos}
}

// Run builds targets one after another. A target whose tool exits non-zero
// is recorded as failed and the next one still runs. Once every target has
// been attempted the configured processes are terminated. An interrupt
// stops the run immediately and returns ErrCancelled without terminating
// anything.
func (s *service) Run(ctx context.Context, targets []config.Target, opts Options) ([]model.TargetResult, error) {
	results := make([]model.TargetResult, 0, len(targets))

	for i, t := range targets {
		if ctx.Err() != nil {
			return s.cancelled(results, targets[i:]), ErrCancelled
		}

		logger.Info("Building %s.", t.Name)
		start := time.Now()
		err := s.build(ctx, t, opts)
		res := model.TargetResult{
			Name:      t.Name,
			Command:   t.Command,
			Duration:  time.Since(start),
			OutputDir: t.OutputDir,
		}

		if ctx.Err() != nil {
			res.Status = model.StatusCancelled
			results = append(results, res)
			return s.cancelled(results, targets[i+1:]), ErrCancelled
		}

		if err != nil {
			res.Status = model.StatusFailed
			logger.Warn("%s failed after %s: %v", t.Name, res.Duration.Round(time.Second), err)
			results = append(results, res)
			continue
		}

		res.Status = model.StatusSuccess
		results = append(results, res)
		if !opts.NoOpen && t.OutputDir != "" {
			s.open(ctx, t.OutputDir)
		}
	}

	s.kill(ctx, opts.KillProcesses)
	return results, nil
}

func (s *service) build(ctx context.Context, t config.Target, opts Options) error {
	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.Quiet {
		out = io.Discard
		spinner.StartSpinnerTo(os.Stderr, fmt.Sprintf("Building %s...", t.Name))
		defer spinner.StopSpinner()
	}

	name, args := shellCommand(s.goos, t.Command)
	return s.exec.Run(ctx, Command{Name: name, Args: args, Stdout: out, Stderr: out})
}

// open shows dir in the file browser. Launchers such as explorer exit
// non-zero even when they succeed, so the result is ignored.
func (s *service) open(ctx context.Context, dir string) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	logger.Info("Opening %s", logger.Path(dir))
	name, args := openerCommand(s.goos, dir)
	_ = s.exec.Run(ctx, Command{Name: name, Args: args, Stdout: io.Discard, Stderr: io.Discard})
}

// kill terminates leftover tool daemons. Missing processes are not an error.
func (s *service) kill(ctx context.Context, processes []string) {
	for _, p := range processes {
		logger.Info("Terminating %s", logger.Path(p))
		name, args := killCommand(s.goos, p)
		_ = s.exec.Run(ctx, Command{Name: name, Args: args, Stdout: io.Discard, Stderr: io.Discard})
	}
}

func (s *service) cancelled(results []model.TargetResult, remaining []config.Target) []model.TargetResult {
	for _, t := range remaining {
		results = append(results, model.TargetResult{
			Name:      t.Name,
			Command:   t.Command,
			Status:    model.StatusSkipped,
			OutputDir: t.OutputDir,
		})
	}
	logger.Info("User cancelled the build process. Exiting...")
	return results
}
