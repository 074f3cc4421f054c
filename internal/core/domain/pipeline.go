// internal/core/domain/pipeline.go
package domain

// PipelineMode selects the remote processing behavior for a batch. The set
// of modes and what each one does is owned entirely by the remote service;
// this program only tags batches with them.
type PipelineMode string

const (
	// PipelineCore runs the baseline pipeline over the full company list
	PipelineCore PipelineMode = "core"

	// PipelineAdvanced runs the enriched pipeline over the first 100 companies
	PipelineAdvanced PipelineMode = "advanced"

	// PipelinePowerhouse runs the deepest pipeline over the first 10 companies
	PipelinePowerhouse PipelineMode = "powerhouse"
)

// AllPipelineModes lists the modes in fixed submission order.
func AllPipelineModes() []PipelineMode {
	return []PipelineMode{PipelineCore, PipelineAdvanced, PipelinePowerhouse}
}

// IsValid reports whether the mode is one of the three fixed tags.
func (m PipelineMode) IsValid() bool {
	switch m {
	case PipelineCore, PipelineAdvanced, PipelinePowerhouse:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the mode.
func (m PipelineMode) String() string {
	return string(m)
}

// Cap returns the maximum batch size for the mode; 0 means unlimited.
func (m PipelineMode) Cap() int {
	switch m {
	case PipelineAdvanced:
		return 100
	case PipelinePowerhouse:
		return 10
	default:
		return 0
	}
}

// ResultsFilename returns the CSV filename for the mode's materialized rows.
func (m PipelineMode) ResultsFilename() string {
	return string(m) + "-pipeline-results.csv"
}

// Batch pairs a pipeline mode with the ordered companies submitted under it.
// Batches are built per submission and discarded afterwards.
type Batch struct {
	Pipeline  PipelineMode `json:"pipeline"`
	Companies []Company    `json:"companies"`
}

// NewBatch builds a batch for mode, truncating companies to the mode's cap.
// Truncation keeps the head of the list in input row order; when the pool is
// smaller than the cap the whole pool is used.
func NewBatch(mode PipelineMode, companies []Company) Batch {
	if c := mode.Cap(); c > 0 && len(companies) > c {
		companies = companies[:c]
	}
	return Batch{
		Pipeline:  mode,
		Companies: companies,
	}
}

// Size returns the number of companies in the batch.
func (b Batch) Size() int {
	return len(b.Companies)
}
