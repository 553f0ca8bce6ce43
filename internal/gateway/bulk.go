package gateway

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
)

// BatchResult aggregates the outcome of a bulk operation. Successes are
// never rolled back when other items fail; callers must surface the failure
// count and keep the succeeded subset.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []error
}

// Err returns nil when every item succeeded, otherwise a partial-batch
// error reporting the failure count.
func (r BatchResult) Err() error {
	if r.Failed == 0 {
		return nil
	}
	noun := "items"
	if r.Failed == 1 {
		noun = "item"
	}
	return appErrors.Clone(appErrors.ErrPartialBatch, fmt.Sprintf("%d %s failed", r.Failed, noun))
}

// BulkCreate creates every payload against the resource, one request per
// item, issued concurrently and joined. The backend offers no batch
// endpoint, so atomicity is explicitly not provided: any subset may succeed.
func (g *Gateway) BulkCreate(ctx context.Context, resource string, payloads []any) BatchResult {
	if len(payloads) == 0 {
		return BatchResult{}
	}

	outcomes := make([]error, len(payloads))
	var wg sync.WaitGroup
	for i, payload := range payloads {
		wg.Add(1)
		go func(i int, payload any) {
			defer wg.Done()
			_, err := g.Create(ctx, resource, payload)
			outcomes[i] = err
		}(i, payload)
	}
	wg.Wait()

	result := BatchResult{}
	for _, err := range outcomes {
		if err == nil {
			result.Succeeded++
			g.recorder.ObserveBatchItem(resource, true)
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, err)
		g.recorder.ObserveBatchItem(resource, false)
	}

	if result.Failed > 0 {
		g.logger.Warn("bulk_create_partial_failure",
			zap.String("resource", resource),
			zap.Int("failed", result.Failed),
			zap.Int("succeeded", result.Succeeded),
		)
	}
	return result
}
