// internal/core/domain/company.go
package domain

import (
	"pipedriver/internal/platform/validator"
)

// Company is one normalized input record submitted to the pipeline API.
// Domain carries the original website cell verbatim; CompanyName is a
// cosmetic display name derived from it. Nothing here is validated against
// a registry, and duplicate or malformed domains pass through unchanged.
type Company struct {
	CompanyName  string `json:"companyName"`
	Domain       string `json:"domain"`
	AccountOwner string `json:"accountOwner"`
}

// NewCompany builds a Company from a website cell and an account owner cell.
func NewCompany(website, accountOwner string) Company {
	return Company{
		CompanyName:  validator.CompanyNameFromWebsite(website),
		Domain:       website,
		AccountOwner: accountOwner,
	}
}
