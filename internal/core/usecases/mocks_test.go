package usecases

import (
	"context"

	"pipedriver/internal/core/domain"
)

type mockLoader struct {
	companies []domain.Company
	err       error
	lastPath  string
	lastLimit int
}

func (m *mockLoader) Load(path string, limit int) ([]domain.Company, error) {
	m.lastPath = path
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.companies, nil
}

type submitCall struct {
	mode domain.PipelineMode
	size int
}

type mockSubmitter struct {
	calls   []submitCall
	results map[domain.PipelineMode]domain.BatchResult
	errs    map[domain.PipelineMode]error
}

func (m *mockSubmitter) Submit(ctx context.Context, batch domain.Batch) (domain.BatchResult, error) {
	m.calls = append(m.calls, submitCall{mode: batch.Pipeline, size: batch.Size()})
	if err, ok := m.errs[batch.Pipeline]; ok {
		return domain.BatchResult{Mode: batch.Pipeline}, err
	}
	if r, ok := m.results[batch.Pipeline]; ok {
		return r, nil
	}
	return domain.BatchResult{Mode: batch.Pipeline, Submitted: batch.Size()}, nil
}

type mockSummaryWriter struct {
	written *domain.RunSummary
	err     error
}

func (m *mockSummaryWriter) WriteSummary(summary domain.RunSummary) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.written = &summary
	return "summary.json", nil
}

func companiesOf(n int) []domain.Company {
	out := make([]domain.Company, n)
	for i := range out {
		out[i] = domain.NewCompany("https://www.example.com", "Jordan Smith")
	}
	return out
}
