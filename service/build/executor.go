package build

import (
	"context"
	"os/exec"
)

type execExecutor struct{}

// NewExecExecutor returns an Executor backed by os/exec.
func NewExecExecutor() Executor {
	return execExecutor{}
}

func (execExecutor) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}
