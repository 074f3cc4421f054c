// internal/adapters/input/csv.go
package input

import (
	"encoding/csv"
	"io"
	"os"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
	"pipedriver/internal/platform/validator"
)

// Input columns every row must expose.
const (
	ColumnWebsite      = "Website"
	ColumnAccountOwner = "Account Owner"
)

// CSVLoader reads companies from a delimited input file with a header row.
// Rows are projected into domain.Company in file order; no validation is
// applied beyond the presence of the required columns.
type CSVLoader struct {
	logger logx.Logger
}

// NewCSVLoader creates a loader.
func NewCSVLoader(logger logx.Logger) *CSVLoader {
	return &CSVLoader{
		logger: logger.With("component", "loader"),
	}
}

// Load reads up to limit companies from path; limit <= 0 means all rows.
// Errors here are fatal for the run: a missing file, a malformed CSV, or a
// header without the required columns all abort loading.
func (l *CSVLoader) Load(path string, limit int) ([]domain.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input file %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(errors.ErrMissingField, "input file %s is empty", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read header of %s", path)
	}

	websiteIdx, ownerIdx := -1, -1
	for i, col := range header {
		switch col {
		case ColumnWebsite:
			websiteIdx = i
		case ColumnAccountOwner:
			ownerIdx = i
		}
	}
	if websiteIdx < 0 {
		return nil, errors.Wrapf(errors.ErrMissingField, "column %q not found in %s", ColumnWebsite, path)
	}
	if ownerIdx < 0 {
		return nil, errors.Wrapf(errors.ErrMissingField, "column %q not found in %s", ColumnAccountOwner, path)
	}

	var companies []domain.Company
	for {
		if limit > 0 && len(companies) >= limit {
			break
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv enforces a uniform field count, so a short row
			// (a row missing a required field) surfaces here
			return nil, errors.Wrapf(err, "failed to read row of %s", path)
		}

		website := record[websiteIdx]
		company := domain.NewCompany(website, record[ownerIdx])

		if _, ok := validator.RegistrableDomain(website); !ok {
			l.logger.Debug("website has no registrable domain",
				"website", website,
				"derived_name", company.CompanyName,
			)
		}

		companies = append(companies, company)
	}

	l.logger.Info("companies loaded",
		"path", path,
		"count", len(companies),
		"limit", limit,
	)

	return companies, nil
}
