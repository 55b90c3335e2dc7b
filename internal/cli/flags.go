// Package cli provides flag binding and validation for the examples-check CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/examples-check/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Branch & Pin
	flags.StringVarP(&cfg.Branch, "branch", "b", "", "Branch to validate against")
	flags.StringVar(&cfg.PackageName, "package", "", "Package name to re-pin (overrides pipeline file)")
	flags.StringVar(&cfg.RepoURL, "repo-url", "", "Git repository URL for the pin (overrides pipeline file)")
	flags.StringVar(&cfg.RequirementsFile, "requirements", "", "Requirements file to rewrite (overrides pipeline file)")

	// Input Files
	flags.StringVarP(&cfg.PipelineFile, "pipeline-file", "f", "validate.yml", "Path to pipeline definition")
	flags.StringVar(&cfg.ProjectDir, "project-dir", "", "Directory to run the validation command in")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Retry Budget
	flags.IntVar(&cfg.MaxAttempts, "max-attempts", 0, "Validation attempts before giving up (0 = pipeline file value)")
	flags.IntVar(&cfg.RetryDelay, "retry-delay", 0, "Seconds between validation attempts (0 = pipeline file value)")

	// Timeouts
	flags.IntVar(&cfg.InactivityTimeout, "inactivity-timeout", 0, "Seconds of output inactivity before kill (0 = disabled)")

	// Feature Toggles
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "Print what would run without executing anything")

	// Scheduling
	flags.StringVar(&cfg.StartAt, "start-at", "", "Schedule start time (ISO 8601, HH:MM, YYYY-MM-DD HH:MM)")
	// Alias --at for --start-at
	flags.StringVar(&cfg.StartAt, "at", "", "Alias for --start-at")

	// Notifications
	flags.StringVar(&cfg.NotifyWebhook, "notify-webhook", "http://127.0.0.1:18789/webhook", "OpenClaw webhook URL")
	flags.StringVar(&cfg.NotifyChannel, "notify-channel", "telegram", "Notification channel")
	flags.StringVar(&cfg.NotifyChatID, "notify-chat-id", "", "Recipient chat ID")

	// Run Management
	flags.BoolVar(&cfg.Clean, "clean", false, "Delete state directory and start fresh")
	flags.BoolVar(&cfg.Status, "status", false, "Show last run status and exit")
}

// ValidateFlags checks for invalid flag combinations after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cfg.MaxAttempts < 0 {
		return fmt.Errorf("--max-attempts must not be negative, got: %d", cfg.MaxAttempts)
	}
	if cfg.RetryDelay < 0 {
		return fmt.Errorf("--retry-delay must not be negative, got: %d", cfg.RetryDelay)
	}
	if cfg.InactivityTimeout < 0 {
		return fmt.Errorf("--inactivity-timeout must not be negative, got: %d", cfg.InactivityTimeout)
	}

	// --status and --clean make no sense together: one reads state, the
	// other deletes it.
	if cfg.Status && cfg.Clean {
		return fmt.Errorf("--status and --clean are mutually exclusive")
	}

	return nil
}
