package upload

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Retrier wraps an Uploader with bounded retries and a fixed delay between
// attempts. Only failures are retried; any Outcome, including Rejected, is
// returned at once.
type Retrier struct {
	Uploader   Uploader
	MaxRetries int
	Delay      time.Duration

	// Sleep blocks between attempts. nil means time.Sleep.
	Sleep func(time.Duration)

	// OnRetry is called before the wait preceding retry number attempt
	// (1-based), with the failure that caused it.
	OnRetry func(path string, attempt, maxRetries int, err error)

	Logger zerolog.Logger
}

// Do uploads path, retrying failures up to MaxRetries times. It returns the
// outcome or the last failure, and the number of attempts made.
func (r *Retrier) Do(ctx context.Context, path string) (Outcome, int, error) {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	maxRetries := max(r.MaxRetries, 0)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if r.OnRetry != nil {
				r.OnRetry(path, attempt, maxRetries, lastErr)
			}
			r.Logger.Debug().
				Str("path", path).
				Int("attempt", attempt).
				Int("max_retries", maxRetries).
				Dur("delay", r.Delay).
				AnErr("cause", lastErr).
				Msg("retrying upload")
			sleep(r.Delay)
		}

		out, err := r.Uploader.Upload(ctx, path)
		if err == nil {
			return out, attempt + 1, nil
		}
		lastErr = AsFailure(err)
	}

	r.Logger.Warn().Str("path", path).Int("attempts", maxRetries+1).Err(lastErr).Msg("upload failed after retries")
	return Outcome{}, maxRetries + 1, lastErr
}
