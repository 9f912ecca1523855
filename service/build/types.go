package build

import (
	"context"
	"errors"
	"io"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/config"
)

// ErrCancelled is returned when the user interrupts the build phase.
var ErrCancelled = errors.New("build cancelled by user")

// Command is a single external process invocation.
type Command struct {
	Name   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs external processes.
type Executor interface {
	Run(ctx context.Context, cmd Command) error
}

// Options tunes a build run.
type Options struct {
	NoOpen        bool
	Quiet         bool
	KillProcesses []string
	// Output receives the build tool's stdout and stderr; nil means os.Stdout.
	Output io.Writer
}

type service struct {
	exec Executor
	goos string
}

// Service is the interface for the build runner.
type Service interface {
	Run(ctx context.Context, targets []config.Target, opts Options) ([]model.TargetResult, error)
}
