// Package phases runs the validation pipeline end to end: load the pipeline
// definition, install tooling, mutate the dependency pin, then run the
// validation suite behind the retry gate.
package phases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CodexForgeBR/examples-check/internal/banner"
	"github.com/CodexForgeBR/examples-check/internal/buildspec"
	"github.com/CodexForgeBR/examples-check/internal/config"
	"github.com/CodexForgeBR/examples-check/internal/exitcode"
	"github.com/CodexForgeBR/examples-check/internal/logging"
	"github.com/CodexForgeBR/examples-check/internal/notification"
	"github.com/CodexForgeBR/examples-check/internal/pin"
	"github.com/CodexForgeBR/examples-check/internal/retry"
	"github.com/CodexForgeBR/examples-check/internal/runner"
	"github.com/CodexForgeBR/examples-check/internal/schedule"
	"github.com/CodexForgeBR/examples-check/internal/state"
)

// CommandChecker checks tool availability; injectable for tests.
type CommandChecker func(tools ...string) map[string]bool

// RunnerFactory builds the Runner for one pipeline command; injectable for tests.
type RunnerFactory func(name string, args []string, dir string, env []string, outputPath string) runner.Runner

// Orchestrator drives the pipeline phases in order.
type Orchestrator struct {
	Config         *config.Config
	StateDir       string
	CommandChecker CommandChecker
	NewRunner      RunnerFactory

	spec         *buildspec.Spec
	run          *state.RunState
	startTime    time.Time
	attemptsUsed int
}

// NewOrchestrator creates an orchestrator with the given config.
func NewOrchestrator(cfg *config.Config) *Orchestrator {
	o := &Orchestrator{
		Config:   cfg,
		StateDir: ".examples-check",
	}
	o.NewRunner = func(name string, args []string, dir string, env []string, outputPath string) runner.Runner {
		return &runner.ExecRunner{
			Name:              name,
			Args:              args,
			Dir:               dir,
			Env:               env,
			OutputPath:        outputPath,
			InactivityTimeout: cfg.InactivityTimeout,
		}
	}
	return o
}

// Run executes the pipeline and returns an exit code.
func (o *Orchestrator) Run(ctx context.Context) int {
	o.startTime = time.Now()

	if code := o.phaseInit(); code >= 0 {
		return code
	}
	if code := o.phaseLoadPipeline(); code >= 0 {
		return code
	}
	if code := o.phaseCommandChecks(); code >= 0 {
		return code
	}
	o.phaseBanner()
	if code := o.phaseScheduleWait(ctx); code >= 0 {
		return code
	}
	if code := o.phaseInstall(ctx); code >= 0 {
		return code
	}
	if code := o.phasePin(); code >= 0 {
		return code
	}
	return o.phaseValidate(ctx)
}

func (o *Orchestrator) phaseInit() int {
	// --status reports the last run and exits.
	if o.Config.Status {
		if last, err := state.LoadState(o.StateDir); err == nil {
			banner.PrintStatusBanner(banner.StatusInfo{
				RunID:        last.RunID,
				Status:       last.Status,
				Phase:        last.Phase,
				Branch:       last.Branch,
				Package:      last.Package,
				AttemptsUsed: last.AttemptsUsed,
				MaxAttempts:  last.MaxAttempts,
				StartedAt:    last.StartedAt,
				LastUpdated:  last.LastUpdated,
				ExitCode:     last.ExitCode,
			})
		} else {
			logging.Info("No previous run found.")
		}
		return exitcode.Success
	}

	if o.Config.Clean {
		logging.Info("Cleaning state directory...")
		if err := os.RemoveAll(o.StateDir); err != nil {
			logging.Warn(fmt.Sprintf("Failed to remove state directory: %v", err))
		}
	}

	logging.Phase("Initializing run")
	if !o.Config.DryRun {
		if err := state.InitStateDir(o.StateDir); err != nil {
			logging.Error(fmt.Sprintf("Failed to init state dir: %v", err))
			return exitcode.Error
		}
	}

	o.run = &state.RunState{
		SchemaVersion: 1,
		RunID:         fmt.Sprintf("check-%s", time.Now().Format("20060102-150405")),
		StartedAt:     time.Now().Format(time.RFC3339),
		Status:        state.StatusInProgress,
		Phase:         state.PhaseInstall,
		Branch:        o.Config.Branch,
		PipelineFile:  o.Config.PipelineFile,
	}

	return -1
}

func (o *Orchestrator) phaseLoadPipeline() int {
	logging.Phase("Loading pipeline definition")

	spec, err := buildspec.Load(o.Config.PipelineFile)
	if err != nil {
		logging.Error(fmt.Sprintf("Failed to load pipeline: %v", err))
		return exitcode.Error
	}

	// CLI and config file values override the pipeline file.
	if spec.Pin != nil {
		if o.Config.PackageName != "" {
			spec.Pin.Package = o.Config.PackageName
		}
		if o.Config.RepoURL != "" {
			spec.Pin.Repo = o.Config.RepoURL
		}
		if o.Config.RequirementsFile != "" {
			spec.Pin.Requirements = o.Config.RequirementsFile
		}
		if o.Config.Branch != "" {
			spec.Pin.Branch = o.Config.Branch
		}
		if spec.Pin.Branch == "" {
			logging.Error("Pipeline has a pin block but no branch is set (use --branch or BRANCH)")
			return exitcode.Error
		}
	}
	if o.Config.MaxAttempts > 0 {
		spec.Validate.MaxAttempts = o.Config.MaxAttempts
	}
	if o.Config.RetryDelay > 0 {
		spec.Validate.DelaySeconds = o.Config.RetryDelay
	}
	if o.Config.ProjectDir != "" && spec.Validate.Dir == "" {
		spec.Validate.Dir = o.Config.ProjectDir
	}

	o.spec = spec
	if spec.Pin != nil {
		o.run.Branch = spec.Pin.Branch
		o.run.Package = spec.Pin.Package
	}
	o.run.MaxAttempts = spec.Validate.MaxAttempts
	o.run.RetryDelay = spec.Validate.DelaySeconds
	o.saveRun()

	return -1
}

func (o *Orchestrator) phaseCommandChecks() int {
	logging.Phase("Checking required commands")

	checker := o.CommandChecker
	if checker == nil {
		checker = runner.CheckAvailability
	}

	avail := checker(o.spec.Tools()...)
	for _, tool := range o.spec.Tools() {
		if !avail[tool] {
			logging.Error(fmt.Sprintf("Required tool not found: %s", tool))
			return exitcode.Error
		}
		logging.Debug(fmt.Sprintf("Found tool: %s", tool))
	}
	return -1
}

func (o *Orchestrator) phaseBanner() {
	banner.PrintStartupBanner(o.run.RunID, o.run.Branch, o.run.Package, o.Config.PipelineFile)
}

func (o *Orchestrator) phaseScheduleWait(ctx context.Context) int {
	if o.Config.StartAt == "" {
		return -1
	}

	logging.Phase("Waiting for scheduled start")

	target, err := schedule.ParseSchedule(o.Config.StartAt)
	if err != nil {
		logging.Error(fmt.Sprintf("Invalid --start-at value: %v", err))
		return exitcode.Error
	}

	if err := schedule.WaitUntil(ctx, target); err != nil {
		return o.finishInterrupted()
	}
	return -1
}

func (o *Orchestrator) phaseInstall(ctx context.Context) int {
	if len(o.spec.Install) == 0 {
		return -1
	}

	logging.Phase("Installing tooling")
	o.run.Phase = state.PhaseInstall
	o.saveRun()

	for _, cmd := range o.spec.Install {
		line := strings.Join(cmd, " ")
		if o.Config.DryRun {
			logging.Info("Would run: " + line)
			continue
		}

		logging.Info("Running: " + line)
		r := o.NewRunner(cmd[0], cmd[1:], "", o.spec.EnvSlice(), "")
		if err := r.Run(ctx); err != nil {
			if ctx.Err() != nil {
				return o.finishInterrupted()
			}
			logging.Error(fmt.Sprintf("Install command failed: %v", err))
			o.finish(state.StatusFailed, exitcode.InstallFailed)
			o.notify(notification.EventInstall, exitcode.InstallFailed)
			return exitcode.InstallFailed
		}
	}
	return -1
}

func (o *Orchestrator) phasePin() int {
	if o.spec.Pin == nil {
		return -1
	}

	logging.Phase("Pinning package to branch")
	o.run.Phase = state.PhasePin
	o.saveRun()

	p := o.spec.Pin
	replacement := pin.GitRequirement(p.Repo, p.Branch, p.Package, p.Subdirectory)

	if o.Config.DryRun {
		logging.Info(fmt.Sprintf("Would pin %s to %s in %s", p.Package, replacement, p.Requirements))
		return -1
	}

	if err := pin.Rewrite(p.Requirements, p.Package, replacement); err != nil {
		logging.Error(fmt.Sprintf("Failed to rewrite pin: %v", err))
		o.finish(state.StatusFailed, exitcode.Error)
		return exitcode.Error
	}

	logging.Info(fmt.Sprintf("Pinned %s to branch %s", p.Package, p.Branch))
	return -1
}

func (o *Orchestrator) phaseValidate(ctx context.Context) int {
	logging.Phase("Running validation suite")
	o.run.Phase = state.PhaseValidate
	o.saveRun()

	v := o.spec.Validate
	line := strings.Join(v.Command, " ")

	if o.Config.DryRun {
		logging.Info(fmt.Sprintf("Would run: %s (up to %d attempts, %ds apart)",
			line, v.MaxAttempts, v.DelaySeconds))
		return exitcode.Success
	}

	outputPath := filepath.Join(o.StateDir, "validate-output.log")
	inner := o.NewRunner(v.Command[0], v.Command[1:], v.Dir, o.spec.EnvSlice(), outputPath)

	gate := &runner.RetryRunner{
		Inner: &countingRunner{inner: inner, count: &o.attemptsUsed},
		RetryCfg: retry.Config{
			MaxAttempts:  v.MaxAttempts,
			DelaySeconds: v.DelaySeconds,
			OnRetry: func(remaining int, delay int) {
				logging.Retry(fmt.Sprintf("Validation failed, %d attempt(s) remaining - waiting %s",
					remaining, logging.FormatDuration(delay)))
				o.run.AttemptsUsed = o.attemptsUsed
				o.saveRun()
				o.notify(notification.EventRetrying, 0)
			},
		},
	}

	logging.Info(fmt.Sprintf("Running: %s (up to %d attempts)", line, v.MaxAttempts))
	err := gate.Run(ctx)
	o.run.AttemptsUsed = o.attemptsUsed

	if err == nil {
		duration := int(time.Since(o.startTime).Seconds())
		banner.PrintPassedBanner(o.attemptsUsed, duration)
		o.finish(state.StatusPassed, exitcode.Success)
		o.notify(notification.EventPassed, exitcode.Success)
		return exitcode.Success
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return o.finishInterrupted()
	}

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		logging.Error(fmt.Sprintf("Validation exhausted: %v", err))
		banner.PrintFailedBanner(exhausted.Attempts, v.DelaySeconds)
		o.finish(state.StatusFailed, exitcode.ValidationFailed)
		o.notify(notification.EventFailed, exitcode.ValidationFailed)
		return exitcode.ValidationFailed
	}

	logging.Error(fmt.Sprintf("Validation error: %v", err))
	o.finish(state.StatusFailed, exitcode.Error)
	return exitcode.Error
}

// finish records the terminal status and exit code on the run record.
func (o *Orchestrator) finish(status string, code int) {
	o.run.Status = status
	o.run.Phase = state.PhaseReport
	o.run.ExitCode = code
	o.saveRun()
}

func (o *Orchestrator) finishInterrupted() int {
	banner.PrintInterruptedBanner(o.run.Phase)
	o.run.Status = state.StatusInterrupted
	o.run.ExitCode = exitcode.Interrupted
	o.saveRun()
	o.notify(notification.EventInterrupted, exitcode.Interrupted)
	return exitcode.Interrupted
}

func (o *Orchestrator) notify(event string, code int) {
	project := o.run.Package
	if project == "" {
		if wd, err := os.Getwd(); err == nil {
			project = filepath.Base(wd)
		}
	}
	msg := notification.FormatEvent(event, project, o.run.RunID, o.attemptsUsed, code)
	notification.SendNotification(o.Config.NotifyWebhook, o.Config.NotifyChannel, o.Config.NotifyChatID, msg)
}

func (o *Orchestrator) saveRun() {
	// Dry runs change nothing on disk, the run record included.
	if o.Config.DryRun {
		return
	}
	o.run.LastUpdated = time.Now().Format(time.RFC3339)
	if err := state.SaveState(o.run, o.StateDir); err != nil {
		logging.Warn(fmt.Sprintf("Failed to save run state: %v", err))
	}
}

// countingRunner counts executions of the inner runner so the run record
// reflects how many attempts were actually made.
type countingRunner struct {
	inner runner.Runner
	count *int
}

func (c *countingRunner) Run(ctx context.Context) error {
	*c.count++
	return c.inner.Run(ctx)
}
