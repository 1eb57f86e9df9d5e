package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	res, err := e.Run(ctx, Command{Name: name, Args: args})
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// Run executes cmd, feeding Stdin when set, and captures stdout, stderr and the exit code.
func (e *implExecutor) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		res.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		}
		return res, &ExitError{
			Name:     cmd.Name,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      err,
		}
	}

	return res, nil
}

// LookPath resolves name against the process search path.
func (e *implExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
