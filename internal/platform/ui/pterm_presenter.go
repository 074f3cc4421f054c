// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter renders run progress with the pterm library: a header,
// one spinner per batch, and a final summary table.
type PTermPresenter struct {
	mu sync.Mutex

	// active spinner for the in-flight batch (batches are sequential,
	// so there is at most one)
	spinner *pterm.SpinnerPrinter
}

// NewPTermPresenter creates a pterm-backed presenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start prints the run header.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("Pipedriver - Production Runner")

	pterm.Println()
	pterm.Printfln("%s Input: %s", IconInput, pterm.Cyan(info.InputPath))
	pterm.Printfln("%s Companies: %d", IconCompanies, info.Companies)
	pterm.Printfln("%s Pipelines: %d", IconPipeline, info.Modes)
	pterm.Println()
}

// StartBatch opens a spinner for the batch being submitted.
func (p *PTermPresenter) StartBatch(mode string, companies int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	spinner, err := pterm.DefaultSpinner.Start(
		fmt.Sprintf("Running %s pipeline for %d companies...", mode, companies))
	if err != nil {
		return
	}
	p.spinner = spinner
}

// FinishBatch closes the spinner with a success line.
func (p *PTermPresenter) FinishBatch(mode string, results int, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf("%s: %d results in %.1fs", mode, results, elapsed.Seconds())
	if p.spinner != nil {
		p.spinner.Success(msg)
		p.spinner = nil
		return
	}
	pterm.Success.Println(msg)
}

// FailBatch closes the spinner with a failure line.
func (p *PTermPresenter) FailBatch(mode string, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf("%s: %s", mode, reason)
	if p.spinner != nil {
		p.spinner.Fail(msg)
		p.spinner = nil
		return
	}
	pterm.Error.Println(msg)
}

// Info shows an informational message.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning shows a warning.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error shows an error.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Finish prints the final summary table.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Println()
	pterm.DefaultSection.Println("Production Complete")

	table := pterm.TableData{
		{"Pipeline", "Results"},
		{"core", fmt.Sprintf("%d", stats.Core)},
		{"advanced", fmt.Sprintf("%d", stats.Advanced)},
		{"powerhouse", fmt.Sprintf("%d", stats.Powerhouse)},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(table).Render()

	pterm.Printfln("%s Total time: %.1f minutes", IconTime, stats.TotalMinutes)
}
