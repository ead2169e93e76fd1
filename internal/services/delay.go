package services

import (
	"context"
	"time"
)

// simulateLatency pauses before an operation body runs, mirroring the
// network delay the reference client was written against. The pause is the
// only suspension point in any operation — mutations never yield mid-write.
// A zero or negative duration returns immediately, which is how tests run.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
