// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
)

// Writer materializes pipeline results and the run summary under a single
// output directory. It is the only writer of that directory; no locking.
type Writer struct {
	dir    string
	logger logx.Logger
}

// NewWriter creates a writer rooted at dir. The directory is created on
// first use; a pre-existing directory is not an error.
func NewWriter(dir string, logger logx.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger.With("component", "output"),
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// EnsureDir creates the output directory if needed.
func (w *Writer) EnsureDir() error {
	if w.dir == "" {
		return domain.ErrInvalidOutputPath
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", w.dir)
	}
	return nil
}

// WriteResults writes rows for mode as <mode>-pipeline-results.csv. The
// header is the key set of the first row, in that row's key order. Rows
// missing header keys get empty cells; rows carrying keys outside the
// header are an error. An empty row set writes nothing.
func (w *Writer) WriteResults(mode domain.PipelineMode, rows []domain.ResultRow) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	if err := w.EnsureDir(); err != nil {
		return "", err
	}

	header := rows[0].Keys()
	headerSet := make(map[string]struct{}, len(header))
	for _, key := range header {
		headerSet[key] = struct{}{}
	}

	path := filepath.Join(w.dir, mode.ResultsFilename())
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", errors.Wrap(err, "failed to write header")
	}

	for i, row := range rows {
		for _, key := range row.Keys() {
			if _, ok := headerSet[key]; !ok {
				return "", errors.Wrapf(domain.ErrRowExceedsHeader,
					"row %d has key %q not present in row 0", i, key)
			}
		}

		record := make([]string, len(header))
		for j, key := range header {
			record[j] = row.Cell(key)
		}
		if err := cw.Write(record); err != nil {
			return "", errors.Wrapf(err, "failed to write row %d", i)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", errors.Wrapf(err, "failed to flush %s", path)
	}

	w.logger.Info("results saved",
		"pipeline", mode.String(),
		"file", path,
		"rows", len(rows),
	)

	return path, nil
}
