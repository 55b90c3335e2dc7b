package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner implements Runner for an external command.
//
// The child process inherits the parent environment; Env entries are
// appended on top so pipeline variables (branch name, test resource
// identifiers) reach the invoked command. When OutputPath is set, stdout
// and stderr are teed to that file in addition to the parent's streams.
type ExecRunner struct {
	Name string
	Args []string
	Dir  string
	Env  []string // extra KEY=VALUE entries appended to os.Environ()

	OutputPath string

	// InactivityTimeout kills the command after this many seconds without
	// new output. Requires OutputPath. Zero disables monitoring.
	InactivityTimeout int
}

// Run executes the command and blocks until it exits.
// A non-zero exit status is the only failure signal: the returned error
// wraps the *exec.ExitError so callers can recover the exit code.
func (r *ExecRunner) Run(ctx context.Context) error {
	if r.InactivityTimeout > 0 && r.OutputPath != "" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go MonitorOutput(ctx, cancel, MonitorConfig{
			InactivityTimeout: r.InactivityTimeout,
			OutputPath:        r.OutputPath,
		})
	}

	cmd := exec.CommandContext(ctx, r.Name, r.Args...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	stdout := io.Writer(os.Stdout)
	stderr := io.Writer(os.Stderr)
	if r.OutputPath != "" {
		outFile, err := os.Create(r.OutputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer outFile.Close()
		stdout = io.MultiWriter(os.Stdout, outFile)
		stderr = io.MultiWriter(os.Stderr, outFile)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", r.Name, err)
	}

	return nil
}

// String returns the command line for logging.
func (r *ExecRunner) String() string {
	line := r.Name
	for _, a := range r.Args {
		line += " " + a
	}
	return line
}
