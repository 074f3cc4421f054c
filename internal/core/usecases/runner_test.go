package usecases

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
	"pipedriver/internal/testutil"
)

func resultRows(n int) []domain.ResultRow {
	rows := make([]domain.ResultRow, n)
	for i := range rows {
		json.Unmarshal([]byte(`{"company":"Example"}`), &rows[i])
	}
	return rows
}

func newTestRunner(loader *mockLoader, submitter *mockSubmitter, summaries *mockSummaryWriter) *Runner {
	return NewRunner(RunnerOptions{
		Loader:    loader,
		Submitter: submitter,
		Summaries: summaries,
		Logger:    logx.NewSilent(),
		InputPath: "inputs/all-1233-companies.csv",
	})
}

func TestRun(t *testing.T) {
	t.Run("submits three fixed batches in order", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(1233)}
		submitter := &mockSubmitter{}
		summaries := &mockSummaryWriter{}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertNoError(t, err, "Run")

		testutil.AssertLen(t, len(submitter.calls), 3, "three submissions")
		testutil.AssertEqual(t, submitter.calls[0].mode, domain.PipelineCore, "first mode")
		testutil.AssertEqual(t, submitter.calls[0].size, 1233, "core gets all companies")
		testutil.AssertEqual(t, submitter.calls[1].mode, domain.PipelineAdvanced, "second mode")
		testutil.AssertEqual(t, submitter.calls[1].size, 100, "advanced capped at 100")
		testutil.AssertEqual(t, submitter.calls[2].mode, domain.PipelinePowerhouse, "third mode")
		testutil.AssertEqual(t, submitter.calls[2].size, 10, "powerhouse capped at 10")

		testutil.AssertEqual(t, loader.lastLimit, 0, "loader reads everything")
	})

	t.Run("load limit is forwarded to the loader", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(50)}

		r := NewRunner(RunnerOptions{
			Loader:    loader,
			Submitter: &mockSubmitter{},
			Summaries: &mockSummaryWriter{},
			Logger:    logx.NewSilent(),
			InputPath: "inputs/all-1233-companies.csv",
			Limit:     50,
		})

		_, err := r.Run(context.Background())
		testutil.AssertNoError(t, err, "Run")
		testutil.AssertEqual(t, loader.lastLimit, 50, "limit passed through")
	})

	t.Run("small pool is never truncated", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		submitter := &mockSubmitter{}
		summaries := &mockSummaryWriter{}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertNoError(t, err, "Run")

		for i, call := range submitter.calls {
			testutil.AssertEqual(t, call.size, 5, "batch size for call "+string(rune('0'+i)))
		}
	})

	t.Run("failed batch does not halt the run", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(50)}
		submitter := &mockSubmitter{
			results: map[domain.PipelineMode]domain.BatchResult{
				domain.PipelineCore: {
					Mode:    domain.PipelineCore,
					Failure: domain.FailureTransport,
					Err:     errors.ErrTransport,
					Elapsed: time.Second,
				},
				domain.PipelineAdvanced: {
					Mode:    domain.PipelineAdvanced,
					Rows:    resultRows(50),
					Elapsed: time.Second,
				},
				domain.PipelinePowerhouse: {
					Mode:    domain.PipelinePowerhouse,
					Rows:    resultRows(10),
					Elapsed: time.Second,
				},
			},
		}
		summaries := &mockSummaryWriter{}

		summary, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertNoError(t, err, "run continues after a failed batch")
		testutil.AssertLen(t, len(submitter.calls), 3, "all three batches attempted")
		testutil.AssertEqual(t, summary.Core, 0, "failed mode records zero")
		testutil.AssertEqual(t, summary.Advanced, 50, "later mode unaffected")
		testutil.AssertEqual(t, summary.Powerhouse, 10, "last mode unaffected")
	})

	t.Run("summary written even when everything fails", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		failed := domain.BatchResult{Failure: domain.FailureResponse, Err: errors.ErrInvalidResponse}
		submitter := &mockSubmitter{
			results: map[domain.PipelineMode]domain.BatchResult{
				domain.PipelineCore:       failed,
				domain.PipelineAdvanced:   failed,
				domain.PipelinePowerhouse: failed,
			},
		}
		summaries := &mockSummaryWriter{}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertNoError(t, err, "all-failed run still exits cleanly")
		testutil.AssertNotNil(t, summaries.written, "summary persisted")
		testutil.AssertEqual(t, summaries.written.Core, 0, "zero count recorded")
	})

	t.Run("loader failure is fatal", func(t *testing.T) {
		loader := &mockLoader{err: errors.Wrap(errors.ErrMissingField, "column Website")}
		submitter := &mockSubmitter{}
		summaries := &mockSummaryWriter{}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertError(t, err, "loader errors abort the run")
		testutil.AssertLen(t, len(submitter.calls), 0, "nothing submitted")
		testutil.AssertNil(t, firstWritten(summaries), "no summary written")
	})

	t.Run("local submit failure is fatal", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		submitter := &mockSubmitter{
			errs: map[domain.PipelineMode]error{
				domain.PipelineAdvanced: errors.New("disk full"),
			},
		}
		summaries := &mockSummaryWriter{}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertError(t, err, "materialization failure aborts the run")
		testutil.AssertLen(t, len(submitter.calls), 2, "stopped after the failing batch")
	})

	t.Run("summary write failure is fatal", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		submitter := &mockSubmitter{}
		summaries := &mockSummaryWriter{err: errors.New("read-only filesystem")}

		_, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertError(t, err, "summary errors are fatal")
	})

	t.Run("canceled context skips remaining batches", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		submitter := &mockSubmitter{}
		summaries := &mockSummaryWriter{}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestRunner(loader, submitter, summaries).Run(ctx)
		testutil.AssertNoError(t, err, "canceled run still writes its summary")
		testutil.AssertLen(t, len(submitter.calls), 0, "no submissions after cancel")
		testutil.AssertNotNil(t, summaries.written, "summary persisted")
	})

	t.Run("summary aggregates elapsed times", func(t *testing.T) {
		loader := &mockLoader{companies: companiesOf(5)}
		submitter := &mockSubmitter{
			results: map[domain.PipelineMode]domain.BatchResult{
				domain.PipelineCore:       {Mode: domain.PipelineCore, Rows: resultRows(5), Elapsed: 2 * time.Minute},
				domain.PipelineAdvanced:   {Mode: domain.PipelineAdvanced, Rows: resultRows(5), Elapsed: time.Minute},
				domain.PipelinePowerhouse: {Mode: domain.PipelinePowerhouse, Rows: resultRows(5), Elapsed: 30 * time.Second},
			},
		}
		summaries := &mockSummaryWriter{}

		summary, err := newTestRunner(loader, submitter, summaries).Run(context.Background())
		testutil.AssertNoError(t, err, "Run")
		testutil.AssertEqual(t, summary.TotalTimeMinutes, 3.5, "sum of batch elapsed in minutes")
	})
}

func firstWritten(m *mockSummaryWriter) interface{} {
	if m.written == nil {
		return nil
	}
	return m.written
}
