// internal/core/usecases/runner.go
package usecases

import (
	"context"
	"time"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/core/ports"
	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
	"pipedriver/internal/platform/ui"
)

// Runner sequences the three fixed pipeline batches through the submitter.
// Execution is strictly sequential: each submission starts only after the
// previous one completed, and a failed batch (zero rows) never halts the
// run. Only loader and filesystem errors are fatal.
type Runner struct {
	loader    ports.CompanyLoader
	submitter ports.Submitter
	summaries ports.SummaryWriter
	presenter ui.Presenter
	logger    logx.Logger

	inputPath string
	limit     int
}

// RunnerOptions configures the runner.
type RunnerOptions struct {
	Loader    ports.CompanyLoader
	Submitter ports.Submitter
	Summaries ports.SummaryWriter
	Presenter ui.Presenter
	Logger    logx.Logger
	InputPath string

	// Limit caps the number of companies loaded from the input file.
	// Zero means all of them.
	Limit int
}

// NewRunner creates a runner.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}

	return &Runner{
		loader:    opts.Loader,
		submitter: opts.Submitter,
		summaries: opts.Summaries,
		presenter: opts.Presenter,
		logger:    opts.Logger.With("component", "runner"),
		inputPath: opts.InputPath,
		limit:     opts.Limit,
	}
}

// Run executes a full production run and returns the summary. The summary
// file is written even when every batch failed; the returned error is
// non-nil only for fatal conditions (unreadable input, output filesystem
// failures, serialization bugs).
func (r *Runner) Run(ctx context.Context) (domain.RunSummary, error) {
	companies, err := r.loader.Load(r.inputPath, r.limit)
	if err != nil {
		return domain.RunSummary{}, errors.Wrap(err, "failed to load companies")
	}

	r.presenter.Start(ui.RunInfo{
		InputPath: r.inputPath,
		Companies: len(companies),
		Modes:     len(domain.AllPipelineModes()),
	})

	start := time.Now()
	results := make([]domain.BatchResult, 0, len(domain.AllPipelineModes()))

	for _, mode := range domain.AllPipelineModes() {
		if ctx.Err() != nil {
			// canceled: remaining modes are skipped, recorded as empty
			r.logger.Warn("run canceled, skipping batch", "pipeline", mode.String())
			results = append(results, domain.BatchResult{
				Mode:    mode,
				Failure: domain.FailureTransport,
				Err:     domain.ErrRunCanceled,
			})
			continue
		}

		batch := domain.NewBatch(mode, companies)
		r.presenter.StartBatch(mode.String(), batch.Size())

		result, err := r.submitter.Submit(ctx, batch)
		if err != nil {
			// local failure: materialization or serialization, fatal
			r.presenter.FailBatch(mode.String(), err.Error())
			return domain.RunSummary{}, err
		}

		if result.Failed() {
			r.presenter.FailBatch(mode.String(), result.Err.Error())
		} else {
			r.presenter.FinishBatch(mode.String(), len(result.Rows), result.Elapsed)
		}

		results = append(results, result)
	}

	summary := domain.NewRunSummary(results)

	if _, err := r.summaries.WriteSummary(summary); err != nil {
		return summary, errors.Wrap(err, "failed to write summary")
	}

	r.presenter.Finish(ui.RunStats{
		Core:         summary.Core,
		Advanced:     summary.Advanced,
		Powerhouse:   summary.Powerhouse,
		TotalMinutes: summary.TotalTimeMinutes,
		Elapsed:      time.Since(start),
	})

	r.logger.Info("run completed",
		"core", summary.Core,
		"advanced", summary.Advanced,
		"powerhouse", summary.Powerhouse,
		"total_time_minutes", summary.TotalTimeMinutes,
	)

	return summary, nil
}
