// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Presenter renders run progress on the terminal. Logging goes to stderr
// through logx regardless of the presenter in use; the presenter is the
// human-facing layer only.
type Presenter interface {
	// Start opens the presentation with run-level information
	Start(info RunInfo)

	// StartBatch announces a batch submission
	StartBatch(mode string, companies int)

	// FinishBatch reports a completed batch
	FinishBatch(mode string, results int, elapsed time.Duration)

	// FailBatch reports a batch that yielded no rows
	FailBatch(mode string, reason string)

	// Info shows an informational message
	Info(msg string)

	// Warning shows a warning
	Warning(msg string)

	// Error shows an error
	Error(msg string)

	// Finish closes the presentation with final run statistics
	Finish(stats RunStats)
}

// RunInfo describes a run before the first submission.
type RunInfo struct {
	InputPath string
	Companies int
	Modes     int
}

// RunStats holds the final numbers shown after the last batch.
type RunStats struct {
	Core         int
	Advanced     int
	Powerhouse   int
	TotalMinutes float64
	Elapsed      time.Duration
}
