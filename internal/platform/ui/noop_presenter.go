// internal/platform/ui/noop_presenter.go
package ui

import "time"

// NoopPresenter is an empty Presenter implementation producing no output.
// Used in quiet mode and in tests.
type NoopPresenter struct{}

// NewNoopPresenter creates a presenter without output.
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// Start does nothing
func (n *NoopPresenter) Start(info RunInfo) {}

// StartBatch does nothing
func (n *NoopPresenter) StartBatch(mode string, companies int) {}

// FinishBatch does nothing
func (n *NoopPresenter) FinishBatch(mode string, results int, elapsed time.Duration) {}

// FailBatch does nothing
func (n *NoopPresenter) FailBatch(mode string, reason string) {}

// Info does nothing
func (n *NoopPresenter) Info(msg string) {}

// Warning does nothing
func (n *NoopPresenter) Warning(msg string) {}

// Error does nothing
func (n *NoopPresenter) Error(msg string) {}

// Finish does nothing
func (n *NoopPresenter) Finish(stats RunStats) {}
