package services

import (
	"context"
	"time"
)

// Delay stands in for the round trip of a remote call. It returns early with the
// context's error if ctx ends first.
type Delay func(ctx context.Context) error

func FixedDelay(d time.Duration) Delay {
	if d <= 0 {
		return NoDelay
	}

	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func NoDelay(ctx context.Context) error {
	return ctx.Err()
}
