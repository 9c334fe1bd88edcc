package retry

import (
	"context"
	"time"
)

// Do runs f up to attempts times, sleeping delay between failures. The last
// error is returned if every attempt fails. Context cancellation wins over
// further attempts.
func Do(ctx context.Context, attempts int, delay time.Duration, f func() error) error {
	var err error

	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return err
}
