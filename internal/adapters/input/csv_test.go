package input

import (
	"testing"

	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
	"pipedriver/internal/testutil"
)

func TestLoad(t *testing.T) {
	loader := NewCSVLoader(logx.NewSilent())

	t.Run("projects rows in file order", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", testutil.FixtureCSV)

		companies, err := loader.Load(path, 0)
		testutil.AssertNoError(t, err, "Load")
		testutil.AssertLen(t, len(companies), 5, "row count")

		first := companies[0]
		testutil.AssertEqual(t, first.CompanyName, "Example", "derived name")
		testutil.AssertEqual(t, first.Domain, "https://www.example.com", "website verbatim")
		testutil.AssertEqual(t, first.AccountOwner, "Jordan Smith", "owner verbatim")

		testutil.AssertEqual(t, companies[1].CompanyName, "Acme-tools", "second row")
		testutil.AssertEqual(t, companies[4].CompanyName, "Hooli", "last row")
	})

	t.Run("limit truncates", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", testutil.FixtureCSV)

		companies, err := loader.Load(path, 2)
		testutil.AssertNoError(t, err, "Load with limit")
		testutil.AssertLen(t, len(companies), 2, "truncated count")
		testutil.AssertEqual(t, companies[0].CompanyName, "Example", "head of the list kept")
	})

	t.Run("limit larger than pool", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", testutil.FixtureCSV)

		companies, err := loader.Load(path, 100)
		testutil.AssertNoError(t, err, "Load")
		testutil.AssertLen(t, len(companies), 5, "whole pool returned")
	})

	t.Run("missing Website column is fatal", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", testutil.FixtureCSVNoWebsite)

		_, err := loader.Load(path, 0)
		testutil.AssertError(t, err, "expected error")
		testutil.AssertTrue(t, errors.IsMissingField(err), "should be a missing field error")
	})

	t.Run("missing Account Owner column is fatal", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", testutil.FixtureCSVNoOwner)

		_, err := loader.Load(path, 0)
		testutil.AssertError(t, err, "expected error")
		testutil.AssertTrue(t, errors.IsMissingField(err), "should be a missing field error")
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/companies.csv", 0)
		testutil.AssertError(t, err, "missing input file should fail")
	})

	t.Run("empty file is fatal", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv", "")
		_, err := loader.Load(path, 0)
		testutil.AssertError(t, err, "empty input file should fail")
	})

	t.Run("short row is fatal", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv",
			"Company,Website,Account Owner\nExample,https://example.com\n")
		_, err := loader.Load(path, 0)
		testutil.AssertError(t, err, "row with missing fields should fail")
	})

	t.Run("duplicate and malformed domains pass through", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "companies.csv",
			"Website,Account Owner\nexample.com,A\nexample.com,B\nnot a url,C\n")

		companies, err := loader.Load(path, 0)
		testutil.AssertNoError(t, err, "Load")
		testutil.AssertLen(t, len(companies), 3, "nothing filtered")
		testutil.AssertEqual(t, companies[0].Domain, companies[1].Domain, "duplicates untouched")
		testutil.AssertEqual(t, companies[2].Domain, "not a url", "malformed untouched")
	})
}
