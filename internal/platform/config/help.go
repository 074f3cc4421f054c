// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
Pipedriver - Company Pipeline Batch Driver

USAGE:
  pipedriver [options]

  Loads companies from a CSV file, submits them through the core, advanced
  and powerhouse pipelines, and writes per-pipeline result CSVs plus a
  summary.json to the output directory.

IO OPTIONS:
  -i, --input string        Companies CSV input file (default: "inputs/all-1233-companies.csv")
                            Must carry "Website" and "Account Owner" columns
  -o, --out string          Output directory (default: "pipedriver_out")
      --snapshot-dir string Directory for payload snapshots (default: system temp dir)

REMOTE OPTIONS:
  -e, --endpoint string     Pipeline API endpoint URL
  -T, --timeout int         Per-call timeout in seconds (default: 300)

LOADER OPTIONS:
  -n, --limit int           Max companies to load, 0 = all (default: 0)

UI OPTIONS:
  -q, --quiet               Disable terminal UI output (default: false)
      --log-level string    Log level: debug, info, warn, error (default: "info")

CONFIG:
  -c, --config string       YAML config file; flags override file values
                            (also via PIPEDRIVER_CONFIG)

INFO:
  -v, --version             Print version information and exit
  -h, --help                Show this help message

ENVIRONMENT:
  PIPEDRIVER_INPUT, PIPEDRIVER_OUTPUT_DIR, PIPEDRIVER_SNAPSHOT_DIR,
  PIPEDRIVER_ENDPOINT, PIPEDRIVER_TIMEOUT, PIPEDRIVER_LIMIT,
  PIPEDRIVER_QUIET, PIPEDRIVER_LOG_LEVEL, PIPEDRIVER_CONFIG

EXAMPLES:
  Full production run:
    pipedriver -i inputs/all-1233-companies.csv -o final

  Smoke test against a staging endpoint:
    pipedriver -n 5 -e https://staging.example.com/api/production-ready -q
`

// PrintHelp writes the help text to stdout.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
}

// PrintVersion writes version information to stdout.
func PrintVersion(version, commit, date string) {
	fmt.Fprintf(os.Stdout, "pipedriver %s (commit %s, built %s, %s/%s)\n",
		version, commit, date, runtime.GOOS, runtime.GOARCH)
}
