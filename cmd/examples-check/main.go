package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/examples-check/internal/cli"
	"github.com/CodexForgeBR/examples-check/internal/config"
	"github.com/CodexForgeBR/examples-check/internal/logging"
	"github.com/CodexForgeBR/examples-check/internal/phases"
	sighandler "github.com/CodexForgeBR/examples-check/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "examples-check",
		Short:   "Branch validation runner with a bounded retry gate",
		Long:    "examples-check pins a project's dependency to a branch under review and runs the validation suite with a bounded fixed-interval retry.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runPipeline(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	// String flags: only include if explicitly set via CLI
	stringFlags := map[string]struct {
		key string
		val string
	}{
		"branch":         {"BRANCH", cfg.Branch},
		"repo-url":       {"REPO_URL", cfg.RepoURL},
		"package":        {"PACKAGE_NAME", cfg.PackageName},
		"requirements":   {"REQUIREMENTS_FILE", cfg.RequirementsFile},
		"project-dir":    {"PROJECT_DIR", cfg.ProjectDir},
		"pipeline-file":  {"PIPELINE_FILE", cfg.PipelineFile},
		"notify-webhook": {"NOTIFY_WEBHOOK", cfg.NotifyWebhook},
		"notify-channel": {"NOTIFY_CHANNEL", cfg.NotifyChannel},
		"notify-chat-id": {"NOTIFY_CHAT_ID", cfg.NotifyChatID},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	// Int flags
	intFlags := map[string]struct {
		key string
		val int
	}{
		"max-attempts":       {"MAX_ATTEMPTS", cfg.MaxAttempts},
		"retry-delay":        {"RETRY_DELAY", cfg.RetryDelay},
		"inactivity-timeout": {"INACTIVITY_TIMEOUT", cfg.InactivityTimeout},
	}
	for flag, mapping := range intFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = fmt.Sprintf("%d", mapping.val)
		}
	}

	// Bool flags
	if cmd.Flags().Changed("verbose") {
		if cfg.Verbose {
			overrides["VERBOSE"] = "true"
		} else {
			overrides["VERBOSE"] = "false"
		}
	}

	return overrides
}

// globalConfigPath returns the user-level config file path, or empty when the
// home directory cannot be resolved.
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".examples-check.conf")
}

func runPipeline(cmd *cobra.Command, cfg *config.Config) error {
	// Load config with full precedence chain.
	// CLI flags are already bound to cfg, now load file-based configs.
	projectConfigPath := ".examples-check.conf"
	explicitConfigPath := cfg.ConfigFile

	// Build CLI overrides map using Changed() for accurate detection
	cliOverrides := buildCLIOverrides(cmd, cfg)

	finalCfg, err := config.LoadWithPrecedence(globalConfigPath(), projectConfigPath, explicitConfigPath, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.StartAt = cfg.StartAt
	finalCfg.Status = cfg.Status
	finalCfg.Clean = cfg.Clean
	finalCfg.DryRun = cfg.DryRun

	cfg = finalCfg

	logging.SetVerbose(cfg.Verbose)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Save state and report on interrupt
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted — stopping run...")
	})

	orch := phases.NewOrchestrator(cfg)
	exitCode := orch.Run(ctx)
	os.Exit(exitCode)
	return nil // unreachable
}
