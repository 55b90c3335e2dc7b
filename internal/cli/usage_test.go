package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestHelpTemplate_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, helpTemplate)
}

func TestHelpTemplate_ContainsKeyFlags(t *testing.T) {
	requiredFlags := []string{
		"--branch",
		"--package",
		"--repo-url",
		"--requirements",
		"--pipeline-file",
		"--project-dir",
		"--config",
		"--max-attempts",
		"--retry-delay",
		"--inactivity-timeout",
		"--verbose",
		"--dry-run",
		"--start-at",
		"--at",
		"--notify-webhook",
		"--notify-channel",
		"--notify-chat-id",
		"--clean",
		"--status",
		"--help",
		"--version",
	}

	for _, flag := range requiredFlags {
		assert.Contains(t, helpTemplate, flag, "Help template should contain flag: %s", flag)
	}
}

func TestHelpTemplate_ContainsExitCodes(t *testing.T) {
	exitCodes := []string{
		"Success",
		"Error",
		"ValidationFailed",
		"InstallFailed",
		"Interrupted",
	}

	for _, code := range exitCodes {
		assert.Contains(t, helpTemplate, code, "Help template should contain exit code: %s", code)
	}
}

func TestHelpTemplate_ContainsSections(t *testing.T) {
	sections := []string{
		"USAGE",
		"FLAGS",
		"EXIT CODES",
		"EXAMPLES",
	}

	for _, section := range sections {
		assert.Contains(t, helpTemplate, section, "Help template should contain section: %s", section)
	}
}

func TestSetCustomHelp(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	SetCustomHelp(cmd)

	assert.NotNil(t, cmd)
}
