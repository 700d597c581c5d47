package clock

import (
	"context"
	"errors"
	"time"
)

// Retry calls fn up to attempts times, sleeping between failures with a delay that doubles
// after every attempt. It returns nil on the first success, otherwise the last fn error joined
// with the context error when ctx ends the loop early.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(attempt int) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if sleepErr := SleepWithContext(ctx, delay); sleepErr != nil {
			return errors.Join(err, sleepErr)
		}
		delay *= 2
	}
	return err
}
