// internal/core/domain/run_result.go
package domain

import (
	"math"
	"time"
)

// FailureKind classifies why a batch yielded no rows.
type FailureKind string

const (
	// FailureNone means the batch completed
	FailureNone FailureKind = ""

	// FailureTransport covers connection errors, non-2xx statuses and timeouts
	FailureTransport FailureKind = "transport"

	// FailureResponse covers unparseable bodies and bodies without results
	FailureResponse FailureKind = "response"
)

// BatchResult is the outcome of one batch submission. A failed batch carries
// zero rows and a failure kind; it never aborts the run.
type BatchResult struct {
	Mode      PipelineMode
	Submitted int
	Rows      []ResultRow
	Elapsed   time.Duration
	Failure   FailureKind
	Err       error
}

// Failed reports whether the batch yielded no rows due to an error.
func (r BatchResult) Failed() bool {
	return r.Failure != FailureNone
}

// ElapsedSeconds returns the wall-clock duration of the submission in seconds.
func (r BatchResult) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// RunSummary is persisted once per run as summary.json.
type RunSummary struct {
	Core             int     `json:"core"`
	Advanced         int     `json:"advanced"`
	Powerhouse       int     `json:"powerhouse"`
	TotalTimeMinutes float64 `json:"total_time_minutes"`
}

// NewRunSummary aggregates batch results into a summary. The total is the
// sum of the measured batch elapsed times in minutes, rounded to one decimal.
func NewRunSummary(results []BatchResult) RunSummary {
	var s RunSummary
	var total time.Duration

	for _, r := range results {
		total += r.Elapsed
		switch r.Mode {
		case PipelineCore:
			s.Core = len(r.Rows)
		case PipelineAdvanced:
			s.Advanced = len(r.Rows)
		case PipelinePowerhouse:
			s.Powerhouse = len(r.Rows)
		}
	}

	s.TotalTimeMinutes = math.Round(total.Minutes()*10) / 10
	return s
}

// Count returns the recorded row count for a mode.
func (s RunSummary) Count(mode PipelineMode) int {
	switch mode {
	case PipelineCore:
		return s.Core
	case PipelineAdvanced:
		return s.Advanced
	case PipelinePowerhouse:
		return s.Powerhouse
	default:
		return 0
	}
}
