package runner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell")
	}
}

func TestExecRunner_Success(t *testing.T) {
	skipOnWindows(t)

	r := &ExecRunner{Name: "true"}
	err := r.Run(context.Background())

	require.NoError(t, err)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	r := &ExecRunner{Name: "false"}
	err := r.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err), "should preserve the child exit code")
}

func TestExecRunner_CommandNotFound(t *testing.T) {
	r := &ExecRunner{Name: "this-command-does-not-exist-12345"}
	err := r.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, -1, ExitCode(err), "no exit status for a missing command")
}

func TestExecRunner_OutputTeedToFile(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "run.log")

	r := &ExecRunner{
		Name:       "sh",
		Args:       []string{"-c", "echo validation output"},
		OutputPath: outputPath,
	}
	err := r.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "validation output")
}

func TestExecRunner_ExtraEnvReachesChild(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "run.log")

	r := &ExecRunner{
		Name:       "sh",
		Args:       []string{"-c", "echo branch=$VALIDATION_BRANCH"},
		Env:        []string{"VALIDATION_BRANCH=feature-x"},
		OutputPath: outputPath,
	}
	err := r.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "branch=feature-x")
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "run.log")

	r := &ExecRunner{
		Name:       "pwd",
		Dir:        tmpDir,
		OutputPath: outputPath,
	}
	err := r.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	// Resolve symlinks: on macOS t.TempDir lives under /var -> /private/var.
	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Base(resolved))
}

func TestExecRunner_String(t *testing.T) {
	r := &ExecRunner{Name: "tox", Args: []string{"-e", "examples"}}
	assert.Equal(t, "tox -e examples", r.String())
}

func TestExitCode_Nil(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
}
