// internal/core/ports/loader.go
package ports

import (
	"pipedriver/internal/core/domain"
)

// CompanyLoader is the port for reading the company pool from a tabular
// input file. Implementations must preserve input row order.
type CompanyLoader interface {
	// Load reads up to limit companies from path; limit <= 0 means all.
	// A missing required column or an unreadable file is a fatal error.
	Load(path string, limit int) ([]domain.Company, error)
}
