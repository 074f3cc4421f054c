// internal/adapters/output/summary.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/platform/errors"
)

// SummaryFilename is the fixed name of the run summary document.
const SummaryFilename = "summary.json"

// WriteSummary persists the run summary as indented JSON in the output
// directory. It is written exactly once, at the end of a run, even when
// every batch failed.
func (w *Writer) WriteSummary(summary domain.RunSummary) (string, error) {
	if err := w.EnsureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, SummaryFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return "", errors.Wrap(err, "failed to encode summary")
	}

	w.logger.Info("summary saved",
		"file", path,
		"core", summary.Core,
		"advanced", summary.Advanced,
		"powerhouse", summary.Powerhouse,
		"total_time_minutes", summary.TotalTimeMinutes,
	)

	return path, nil
}
