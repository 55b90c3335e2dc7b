// Package state persists the record of a validation run.
//
// A run record is written to .examples-check/current-run.json at each phase
// transition, so --status can report what the last run did and an interrupted
// run leaves a trace of where it stopped.
package state

// RunState is the persisted record of a single validation run.
type RunState struct {
	SchemaVersion int    `json:"schema_version"`
	RunID         string `json:"run_id"`
	StartedAt     string `json:"started_at"`
	LastUpdated   string `json:"last_updated"`
	Status        string `json:"status"`
	Phase         string `json:"phase"`
	Branch        string `json:"branch"`
	Package       string `json:"package"`
	PipelineFile  string `json:"pipeline_file"`
	MaxAttempts   int    `json:"max_attempts"`
	RetryDelay    int    `json:"retry_delay"`
	AttemptsUsed  int    `json:"attempts_used"`
	ExitCode      int    `json:"exit_code"`
}

// Status constants
const (
	StatusInProgress  = "IN_PROGRESS"
	StatusPassed      = "PASSED"
	StatusFailed      = "FAILED"
	StatusInterrupted = "INTERRUPTED"
)

// Phase constants
const (
	PhaseInstall  = "install"
	PhasePin      = "pin"
	PhaseValidate = "validate"
	PhaseReport   = "report"
)
