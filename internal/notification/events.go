package notification

import "fmt"

// Event types for pipeline outcomes.
const (
	EventPassed      = "passed"
	EventFailed      = "failed"
	EventInstall     = "install_failed"
	EventInterrupted = "interrupted"
	EventRetrying    = "retrying"
)

// FormatEvent creates a notification message for the given event.
func FormatEvent(event string, projectName string, runID string, attempts int, exitCode int) string {
	switch event {
	case EventPassed:
		return fmt.Sprintf("✅ %s [%s] validation passed after %d attempt(s) (exit %d)", projectName, runID, attempts, exitCode)
	case EventFailed:
		return fmt.Sprintf("❌ %s [%s] validation failed, all %d attempts exhausted (exit %d)", projectName, runID, attempts, exitCode)
	case EventInstall:
		return fmt.Sprintf("🚨 %s [%s] install phase failed (exit %d)", projectName, runID, exitCode)
	case EventInterrupted:
		return fmt.Sprintf("⏸️ %s [%s] interrupted during attempt %d (exit %d)", projectName, runID, attempts, exitCode)
	case EventRetrying:
		return fmt.Sprintf("⏳ %s [%s] attempt %d failed - retrying", projectName, runID, attempts)
	default:
		return fmt.Sprintf("ℹ️ %s [%s] event: %s (exit %d)", projectName, runID, event, exitCode)
	}
}
