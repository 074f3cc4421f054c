// internal/testutil/fixtures.go
package testutil

// Fixture data for tests (primitive values only, no domain dependencies)

// FixtureWebsites contains website cells as they appear in input files.
var FixtureWebsites = []string{
	"https://www.example.com",
	"https://example.com/path",
	"http://acme-tools.io",
	"www.initech.net",
	"globex.com",
}

// FixtureOwners contains account owner cells.
var FixtureOwners = []string{
	"Jordan Smith",
	"Sam Doe",
	"Alex Johnson",
}

// FixtureCSV is a minimal valid companies input file.
const FixtureCSV = `Company,Website,Account Owner
Example,https://www.example.com,Jordan Smith
Acme,http://acme-tools.io/about,Sam Doe
Initech,www.initech.net,Alex Johnson
Globex,globex.com,Jordan Smith
Hooli,https://www.hooli.xyz/careers,Sam Doe
`

// FixtureCSVNoWebsite lacks the Website column.
const FixtureCSVNoWebsite = `Company,Account Owner
Example,Jordan Smith
`

// FixtureCSVNoOwner lacks the Account Owner column.
const FixtureCSVNoOwner = `Company,Website
Example,https://www.example.com
`

// FixtureResultsBody is a well-formed pipeline response.
const FixtureResultsBody = `{"results":[{"company":"Example","score":9,"owner":"Jordan Smith"},{"company":"Acme","score":7,"owner":"Sam Doe"}]}`

// FixtureErrorBody is a well-formed response without a results field.
const FixtureErrorBody = `{"error":"pipeline exploded","code":500}`
