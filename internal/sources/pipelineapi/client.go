// internal/sources/pipelineapi/client.go
package pipelineapi

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pipedriver/internal/core/domain"
	"pipedriver/internal/core/ports"
	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/httpclient"
	"pipedriver/internal/platform/logx"
)

// Client submits company batches to the remote pipeline endpoint. One
// Submit call is exactly one blocking POST; there is no retry, and remote
// failures are folded into the BatchResult so the run continues.
type Client struct {
	http        *httpclient.Client
	writer      ports.ResultWriter
	logger      logx.Logger
	endpoint    string
	snapshotDir string
}

// Config holds the client configuration.
type Config struct {
	// Endpoint is the pipeline API URL.
	Endpoint string

	// Timeout is the hard per-call timeout.
	// Default: 300 seconds
	Timeout time.Duration

	// SnapshotDir receives a copy of each serialized payload as
	// <mode>_payload.json before submission. Default: os.TempDir().
	// Mode tags are unique within a run, so sequential submissions never
	// collide; a second concurrent run against the same dir would.
	SnapshotDir string
}

// envelope is the wire shape of a successful pipeline response.
type envelope struct {
	Results *[]domain.ResultRow `json:"results"`
}

// New creates a pipeline API client. The writer is used to materialize
// result rows as part of Submit: submission and persistence are one step.
func New(cfg Config, writer ports.ResultWriter, logger logx.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 300 * time.Second
	}
	if cfg.SnapshotDir == "" {
		cfg.SnapshotDir = os.TempDir()
	}

	return &Client{
		http: httpclient.New(httpclient.Config{
			Timeout: cfg.Timeout,
		}, logger),
		writer:      writer,
		logger:      logger.With("component", "pipelineapi"),
		endpoint:    cfg.Endpoint,
		snapshotDir: cfg.SnapshotDir,
	}
}

// Submit pushes one batch through the remote pipeline and materializes the
// returned rows before returning. Remote failures (transport or response
// format) yield a BatchResult with zero rows, a failure kind and a nil
// error. A non-nil error means a local failure (serialization or result
// materialization) and is fatal for the run.
func (c *Client) Submit(ctx context.Context, batch domain.Batch) (domain.BatchResult, error) {
	mode := batch.Pipeline
	log := c.logger.With("pipeline", mode.String())

	log.Info("submitting batch", "companies", batch.Size())

	start := time.Now()
	result := domain.BatchResult{
		Mode:      mode,
		Submitted: batch.Size(),
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		result.Elapsed = time.Since(start)
		return result, errors.Wrapf(err, "failed to serialize %s batch", mode)
	}

	c.writeSnapshot(mode, payload, log)

	body, err := c.http.PostJSON(ctx, c.endpoint, payload)
	if err != nil {
		result.Elapsed = time.Since(start)
		result.Failure = domain.FailureTransport
		result.Err = err
		log.Warn("pipeline request failed",
			"error", err.Error(),
			"elapsed_s", formatSeconds(result.Elapsed),
		)
		return result, nil
	}

	var resp envelope
	if err := json.Unmarshal(body, &resp); err != nil {
		result.Elapsed = time.Since(start)
		result.Failure = domain.FailureResponse
		result.Err = errors.Wrapf(errors.ErrInvalidResponse, "%v", err)
		log.Warn("invalid response", "elapsed_s", formatSeconds(result.Elapsed))
		return result, nil
	}

	if resp.Results == nil {
		result.Elapsed = time.Since(start)
		result.Failure = domain.FailureResponse
		result.Err = errors.Wrap(errors.ErrMissingResults, "pipeline error")
		// the body is the service's error object; surface it whole
		log.Warn("pipeline returned error payload",
			"payload", string(body),
			"elapsed_s", formatSeconds(result.Elapsed),
		)
		return result, nil
	}

	result.Rows = *resp.Results

	if _, err := c.writer.WriteResults(mode, result.Rows); err != nil {
		result.Elapsed = time.Since(start)
		return result, errors.Wrapf(err, "failed to materialize %s results", mode)
	}

	result.Elapsed = time.Since(start)
	log.Info("pipeline completed",
		"results", len(result.Rows),
		"elapsed_s", formatSeconds(result.Elapsed),
	)

	return result, nil
}

// writeSnapshot dumps the serialized payload for debugging. Best-effort: a
// failed snapshot is a warning, never an aborted batch.
func (c *Client) writeSnapshot(mode domain.PipelineMode, payload []byte, log logx.Logger) {
	path := filepath.Join(c.snapshotDir, fmt.Sprintf("%s_payload.json", mode))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		log.Warn("failed to write payload snapshot", "path", path, "error", err.Error())
		return
	}
	log.Debug("payload snapshot written", "path", path, "bytes", len(payload))
}

// formatSeconds renders a duration as seconds with one decimal place.
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1f", d.Seconds())
}
