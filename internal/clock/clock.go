// Package clock provides the wall clock and context-aware waiting used by long-running loops.
package clock

import (
	"context"
	"time"
)

// Clock is a source of time that can also block.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// System is the real wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or returns early if ctx is canceled.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	return SleepWithContext(ctx, d)
}

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// Fixed is a Clock frozen at a point in time whose Sleep returns immediately.
type Fixed struct {
	At time.Time
}

// Now returns the frozen time.
func (f Fixed) Now() time.Time {
	return f.At
}

// Sleep returns ctx.Err() without waiting.
func (Fixed) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
