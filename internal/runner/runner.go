// Package runner executes external validation commands and decorates them
// with retry behavior.
package runner

import (
	"context"
	"errors"
	"os/exec"
)

// Runner is the interface for anything that can execute a pipeline command.
type Runner interface {
	Run(ctx context.Context) error
}

// ExitCode extracts the process exit code from a command error.
// Returns 0 for nil and -1 when the error carries no exit status
// (command not found, killed by signal, and so on).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
