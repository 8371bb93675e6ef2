package api

import (
	"context"
	"time"
)

// retryDelay returns the backoff before retrying after the given attempt
// index. Delays double from one whole second: attempt 0 waits 1s, attempt 1
// waits 2s, attempt 2 waits 4s.
func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}

// sleep waits for d or returns early with the context error on cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
