package core

import (
	"context"
	"time"
)

type contextWaiter struct {
}

// NewContextWaiter creates a waiter that sleeps for fixed durations and stops early when the context is done
func NewContextWaiter() *contextWaiter {
	return &contextWaiter{}
}

// Wait blocks for the provided duration. It returns the context error if the context ends first
func (cw *contextWaiter) Wait(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (cw *contextWaiter) IsInterfaceNil() bool {
	return cw == nil
}
