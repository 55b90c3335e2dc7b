package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/examples-check/internal/config"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()

	assert.Equal(t, "validate.yml", cfg.PipelineFile)
	assert.Equal(t, "http://127.0.0.1:18789/webhook", cfg.NotifyWebhook)
	assert.Equal(t, "telegram", cfg.NotifyChannel)

	// Zero means "defer to the pipeline file".
	assert.Equal(t, 0, cfg.MaxAttempts)
	assert.Equal(t, 0, cfg.RetryDelay)

	assert.Empty(t, cfg.Branch)
	assert.Empty(t, cfg.PackageName)
	assert.False(t, cfg.Verbose)
}

func TestWhitelistedVarsCount(t *testing.T) {
	assert.Len(t, config.WhitelistedVars, 13)
}

func TestApplyMapToConfigStrings(t *testing.T) {
	cfg := config.NewDefaultConfig()

	config.ApplyMapToConfig(cfg, map[string]string{
		"BRANCH":            "fix-123",
		"REPO_URL":          "https://github.com/org/widget.git",
		"PACKAGE_NAME":      "widget",
		"REQUIREMENTS_FILE": "examples/requirements.txt",
		"PROJECT_DIR":       "examples",
		"PIPELINE_FILE":     "ci/validate.yml",
		"NOTIFY_CHAT_ID":    "42",
	})

	assert.Equal(t, "fix-123", cfg.Branch)
	assert.Equal(t, "https://github.com/org/widget.git", cfg.RepoURL)
	assert.Equal(t, "widget", cfg.PackageName)
	assert.Equal(t, "examples/requirements.txt", cfg.RequirementsFile)
	assert.Equal(t, "examples", cfg.ProjectDir)
	assert.Equal(t, "ci/validate.yml", cfg.PipelineFile)
	assert.Equal(t, "42", cfg.NotifyChatID)
}

func TestApplyMapToConfigIntegers(t *testing.T) {
	cfg := config.NewDefaultConfig()

	config.ApplyMapToConfig(cfg, map[string]string{
		"MAX_ATTEMPTS":       "5",
		"RETRY_DELAY":        "30",
		"INACTIVITY_TIMEOUT": "900",
	})

	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 30, cfg.RetryDelay)
	assert.Equal(t, 900, cfg.InactivityTimeout)
}

func TestApplyMapToConfigInvalidIntegerIgnored(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.MaxAttempts = 3

	config.ApplyMapToConfig(cfg, map[string]string{"MAX_ATTEMPTS": "lots"})

	assert.Equal(t, 3, cfg.MaxAttempts, "unparseable integer keeps previous value")
}

func TestApplyMapToConfigBooleans(t *testing.T) {
	cfg := config.NewDefaultConfig()

	config.ApplyMapToConfig(cfg, map[string]string{"VERBOSE": "true"})
	assert.True(t, cfg.Verbose)

	config.ApplyMapToConfig(cfg, map[string]string{"VERBOSE": "false"})
	assert.False(t, cfg.Verbose)
}

func TestApplyMapToConfigUnknownKeyIgnored(t *testing.T) {
	cfg := config.NewDefaultConfig()

	config.ApplyMapToConfig(cfg, map[string]string{"NOT_A_REAL_KEY": "value"})

	assert.Equal(t, *config.NewDefaultConfig(), *cfg)
}
