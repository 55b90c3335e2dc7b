// Package banner provides colored banner display for the examples-check CLI.
//
// Banners mark the major state transitions of a validation run: startup,
// pass, exhaustion, and interruption.
package banner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/examples-check/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const sepLine = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the startup banner with run info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  examples-check - branch validation pipeline
//	═══════════════════════════════════════════════════
//	  Run:        check-20260829-120000
//	  Branch:     fix-123
//	  Package:    widget
//	  Pipeline:   validate.yml
//	═══════════════════════════════════════════════════
func PrintStartupBanner(runID, branch, pkg, pipelineFile string) {
	sep := headerColor(sepLine)
	fmt.Println(sep)
	fmt.Println(headerColor("  examples-check - branch validation pipeline"))
	fmt.Println(sep)
	fmt.Printf("  Run:        %s\n", runID)
	if branch != "" {
		fmt.Printf("  Branch:     %s\n", branch)
	}
	if pkg != "" {
		fmt.Printf("  Package:    %s\n", pkg)
	}
	fmt.Printf("  Pipeline:   %s\n", pipelineFile)
	fmt.Println(sep)
}

// PrintPassedBanner displays the success banner with attempt count and duration.
func PrintPassedBanner(attemptsUsed int, durationSecs int) {
	sep := successColor(sepLine)
	fmt.Println(sep)
	fmt.Println(successColor("  ✓ Validation suite passed"))
	fmt.Printf("  Attempts:   %d\n", attemptsUsed)
	fmt.Printf("  Duration:   %s (%ds)\n", logging.FormatDuration(durationSecs), durationSecs)
	fmt.Println(sep)
}

// PrintFailedBanner displays the exhaustion banner.
func PrintFailedBanner(attempts int, delaySecs int) {
	sep := errorColor(sepLine)
	fmt.Println(sep)
	fmt.Printf(errorColor("  ✗ Validation failed after %d attempts\n"), attempts)
	fmt.Printf("  Retry delay was %s between attempts\n", logging.FormatDuration(delaySecs))
	fmt.Println(sep)
}

// PrintInterruptedBanner displays when a run is interrupted mid-phase.
func PrintInterruptedBanner(phase string) {
	sep := warnColor(sepLine)
	fmt.Println(sep)
	fmt.Println(warnColor("  ⚠ Run interrupted"))
	fmt.Printf("  Phase:      %s\n", phase)
	fmt.Println(sep)
}

// StatusInfo carries the fields shown by PrintStatusBanner.
type StatusInfo struct {
	RunID        string
	Status       string
	Phase        string
	Branch       string
	Package      string
	AttemptsUsed int
	MaxAttempts  int
	StartedAt    string
	LastUpdated  string
	ExitCode     int
}

// PrintStatusBanner displays the last run's record for --status.
func PrintStatusBanner(info StatusInfo) {
	sep := headerColor(sepLine)
	fmt.Println(sep)
	fmt.Println(headerColor("  examples-check - last run"))
	fmt.Println(sep)
	fmt.Printf("  Run:        %s\n", info.RunID)
	fmt.Printf("  Status:     %s\n", info.Status)
	fmt.Printf("  Phase:      %s\n", info.Phase)
	if info.Branch != "" {
		fmt.Printf("  Branch:     %s\n", info.Branch)
	}
	if info.Package != "" {
		fmt.Printf("  Package:    %s\n", info.Package)
	}
	fmt.Printf("  Attempts:   %d/%d\n", info.AttemptsUsed, info.MaxAttempts)
	fmt.Printf("  Started:    %s\n", info.StartedAt)
	fmt.Printf("  Updated:    %s\n", info.LastUpdated)
	fmt.Printf("  Exit code:  %d\n", info.ExitCode)
	fmt.Println(sep)
}
