package streamx

import (
	"context"
	"time"
)

// Tick returns a trigger stream that fires once per interval, for use as
// the trigger of [NewBatchWith]. The stream closes when ctx is canceled.
// Ticks that fire while a previous signal is still waiting to be received
// are dropped rather than queued, so a slow consumer sees at most one
// pending signal.
//
// Example:
//
//	clock := streamx.RealClock
//	trigger := streamx.Tick(ctx, 5*time.Second, clock)
//	batches := streamx.NewBatchWith[Event](trigger).Process(ctx, events)
//
// Pass a fake clock in tests to control tick timing deterministically.
func Tick(ctx context.Context, interval time.Duration, clock Clock) <-chan Signal {
	out := make(chan Signal)

	go func() {
		defer close(out)

		ticker := clock.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C():
				select {
				case out <- Signal{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
