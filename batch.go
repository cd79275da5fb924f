package streamx

import (
	"context"
)

// BatchWith accumulates items from the primary stream and releases them as
// one batch whenever a separate trigger stream fires. Unlike size- or
// latency-bound batchers, the flush policy lives entirely outside the
// adapter: the trigger can be a ticker, a transaction boundary, a vsync
// signal, or anything else that produces a Signal.
type BatchWith[T any] struct {
	trigger <-chan Signal
	name    string
}

// NewBatchWith creates a processor that buffers items from the input stream
// and emits the buffered items as a single batch when the trigger stream
// produces a signal. Items already queued on the input when the trigger
// fires are included in the batch. Batches preserve arrival order and are
// never empty: a trigger signal arriving while nothing is buffered is
// ignored, no matter how often it fires.
//
// When the input stream closes, any buffered items are flushed as a final
// batch without waiting for the trigger, and the output closes; if nothing
// is buffered the output closes immediately. The trigger is never consulted
// after the input closes. If the trigger stream closes, batches can only be
// released by the input closing.
//
// Example:
//
//	// Flush pending writes once per second.
//	trigger := streamx.Tick(ctx, time.Second, streamx.RealClock)
//	batcher := streamx.NewBatchWith[Write](trigger)
//
//	for batch := range batcher.Process(ctx, writes) {
//		db.BulkInsert(batch)
//	}
//
// Parameters:
//   - trigger: the signal stream that requests a flush
//
// Returns a new BatchWith processor.
func NewBatchWith[T any](trigger <-chan Signal) *BatchWith[T] {
	return &BatchWith[T]{
		trigger: trigger,
		name:    "batch-with",
	}
}

func (b *BatchWith[T]) Process(ctx context.Context, in <-chan T) <-chan []T {
	out := make(chan []T)

	go func() {
		defer close(out)

		var batch []T
		trigger := b.trigger

		// drainReady consumes every item the input has already queued.
		// Returns false once the input is closed.
		drainReady := func() bool {
			for {
				select {
				case item, ok := <-in:
					if !ok {
						return false
					}
					batch = append(batch, item)
				default:
					return true
				}
			}
		}

		// flushFinal emits the remaining buffer, if any, as the last batch.
		flushFinal := func() {
			if len(batch) == 0 {
				return
			}
			select {
			case out <- batch:
			case <-ctx.Done():
			}
		}

		for {
			if !drainReady() {
				flushFinal()
				return
			}

			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					flushFinal()
					return
				}
				batch = append(batch, item)

			case _, ok := <-trigger:
				if !ok {
					// Closed trigger: stop selecting on it, only the
					// input closing can release the buffer now.
					trigger = nil
					continue
				}

				// Items sent before the signal belong to this batch.
				if !drainReady() {
					flushFinal()
					return
				}

				if len(batch) == 0 {
					continue
				}

				select {
				case out <- batch:
					batch = nil
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (b *BatchWith[T]) Name() string {
	return b.name
}
