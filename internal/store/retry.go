package store

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// maxRetries is the number of extra attempts for an operation that failed
// with a [Retryable] error.
const maxRetries = 3

const retryBaseDelay = 50 * time.Millisecond

// newRetryBackoff builds a fresh backoff for one withRetry call; the
// returned value is stateful and must not be shared.
var newRetryBackoff = func() retry.Backoff {
	return retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBaseDelay))
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// maxRetries extra attempts are used up.
func (db *DB) withRetry(ctx context.Context, operation string, fn func() error) error {
	log := db.logger.Ctx(ctx)

	var (
		attempt int
		lastErr error
	)
	err := retry.Do(ctx, newRetryBackoff(), func(ctx context.Context) error {
		if attempt > 0 {
			log.Warn().Err(lastErr).
				Str("func", "DB.withRetry").
				Str("operation", operation).
				Int("attempt", attempt).
				Msg("retrying after transient database error")
		}
		attempt++

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if db.errorClassificator.Classify(lastErr) == Retryable {
			return retry.RetryableError(lastErr)
		}
		return lastErr
	})

	if err != nil && lastErr != nil && ctx.Err() != nil && !errors.Is(err, lastErr) {
		return errors.Join(lastErr, ctx.Err())
	}
	return err
}
