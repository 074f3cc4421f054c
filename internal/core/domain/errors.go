// internal/core/domain/errors.go
package domain

import "errors"

// Common domain errors.
var (
	// Input errors
	ErrNoCompanies  = errors.New("no companies loaded")
	ErrEmptyWebsite = errors.New("website cell is empty")

	// Pipeline errors
	ErrInvalidPipelineMode = errors.New("invalid pipeline mode")
	ErrEmptyBatch          = errors.New("batch has no companies")

	// Run errors
	ErrRunCanceled = errors.New("run was canceled")

	// Output errors
	ErrNoRows            = errors.New("no result rows to write")
	ErrRowExceedsHeader  = errors.New("result row has keys outside the header")
	ErrInvalidOutputPath = errors.New("invalid output path")
)
