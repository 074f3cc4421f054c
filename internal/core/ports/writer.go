// internal/core/ports/writer.go
package ports

import (
	"pipedriver/internal/core/domain"
)

// ResultWriter materializes a batch's result rows as a tabular file named
// after the mode. An empty row set writes nothing and is not an error.
type ResultWriter interface {
	// WriteResults writes rows for mode and returns the file path written,
	// or "" when rows is empty.
	WriteResults(mode domain.PipelineMode, rows []domain.ResultRow) (string, error)
}

// SummaryWriter persists the run summary once at the end of a run.
type SummaryWriter interface {
	// WriteSummary writes the summary document and returns its path.
	WriteSummary(summary domain.RunSummary) (string, error)
}
