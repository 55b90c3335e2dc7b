// Package config defines the examples-check configuration model and defaults.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides. The pipeline file (validate.yml)
// is a separate input: it defines what to run, while this package holds the
// knobs for how a particular invocation runs it.
package config

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [13]string{
	"BRANCH",
	"REPO_URL",
	"PACKAGE_NAME",
	"REQUIREMENTS_FILE",
	"PROJECT_DIR",
	"PIPELINE_FILE",
	"MAX_ATTEMPTS",
	"RETRY_DELAY",
	"INACTIVITY_TIMEOUT",
	"VERBOSE",
	"NOTIFY_WEBHOOK",
	"NOTIFY_CHANNEL",
	"NOTIFY_CHAT_ID",
}

// Config holds every configuration field for the examples-check CLI.
type Config struct {
	// Branch under validation and pin overrides. Empty values defer to the
	// pipeline file's pin block.
	Branch           string
	RepoURL          string
	PackageName      string
	RequirementsFile string

	// Paths.
	ProjectDir   string
	PipelineFile string

	// Retry budget overrides. Zero defers to the pipeline file.
	MaxAttempts int
	RetryDelay  int

	// Timeouts.
	InactivityTimeout int

	// Runtime flags.
	Verbose bool

	// Notification settings.
	NotifyWebhook string
	NotifyChannel string
	NotifyChatID  string

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	StartAt    string
	Status     bool
	Clean      bool
	DryRun     bool
}

// NewDefaultConfig returns a Config populated with all built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		PipelineFile:  "validate.yml",
		NotifyWebhook: "http://127.0.0.1:18789/webhook",
		NotifyChannel: "telegram",
	}
}
