// Package exitcode defines named exit codes for the examples-check CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants for the validation pipeline.
const (
	Success          = 0   // Validation suite passed
	Error            = 1   // Invalid args, file not found, misconfiguration
	ValidationFailed = 2   // All validation attempts exhausted
	InstallFailed    = 3   // An install command failed
	Interrupted      = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case ValidationFailed:
		return "ValidationFailed"
	case InstallFailed:
		return "InstallFailed"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
