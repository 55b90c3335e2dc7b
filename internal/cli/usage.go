// Package cli provides help text and usage formatting for the examples-check CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `examples-check - Branch validation runner with a bounded retry gate

USAGE
  examples-check [flags]

FLAGS
  Branch & Pin:
    -b, --branch <name>                    Branch to validate against
    --package <name>                       Package name to re-pin (overrides pipeline file)
    --repo-url <url>                       Git repository URL for the pin (overrides pipeline file)
    --requirements <path>                  Requirements file to rewrite (overrides pipeline file)

  Input Files:
    -f, --pipeline-file <path>             Path to pipeline definition (default: validate.yml)
    --project-dir <path>                   Directory to run the validation command in
    --config <path>                        Path to additional config file

  Retry Budget:
    --max-attempts <int>                   Validation attempts before giving up (default: pipeline file, 3)
    --retry-delay <int>                    Seconds between validation attempts (default: pipeline file, 60)

  Timeouts:
    --inactivity-timeout <int>             Seconds of output inactivity before kill (default: disabled)

  Feature Toggles:
    -v, --verbose                          Verbose logging
    --dry-run                              Print what would run without executing anything

  Scheduling:
    --start-at <time>                      Schedule start time (ISO 8601, HH:MM, YYYY-MM-DD HH:MM)
    --at <time>                            Alias for --start-at

  Notifications:
    --notify-webhook <url>                 OpenClaw webhook URL (default: http://127.0.0.1:18789/webhook)
    --notify-channel <channel>             Notification channel (default: telegram)
    --notify-chat-id <id>                  Recipient chat ID (required to enable notifications)

  Run Management:
    --clean                                Delete state directory and start fresh
    --status                               Show last run status and exit

  Help & Version:
    -h, --help                             Show this help text
    --version                              Show version, commit, build date

EXIT CODES
  0   Success              Validation passed
  1   Error                Invalid arguments, file not found, misconfiguration
  2   ValidationFailed     All validation attempts exhausted
  3   InstallFailed        A tooling install command failed
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Validate the examples against a branch
  examples-check --branch fix-123

  # Use a custom pipeline definition
  examples-check --branch fix-123 --pipeline-file ci/validate.yml

  # Tighten the retry budget
  examples-check --branch fix-123 --max-attempts 2 --retry-delay 30

  # See what would run without touching anything
  examples-check --branch fix-123 --dry-run

  # Check the last run
  examples-check --status

For more information, see: https://github.com/CodexForgeBR/examples-check
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
