// internal/core/ports/submitter.go
package ports

import (
	"context"

	"pipedriver/internal/core/domain"
)

// Submitter is the port for pushing one batch through the remote pipeline
// service. Exactly one network round trip per call. Remote failures are
// folded into the BatchResult (zero rows + failure kind) with a nil error
// so the run can continue; a non-nil error is a local failure
// (serialization, result materialization) and aborts the run.
type Submitter interface {
	Submit(ctx context.Context, batch domain.Batch) (domain.BatchResult, error)
}
