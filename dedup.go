package streamx

import (
	"context"
)

// Dedup suppresses items that equal the item it most recently forwarded,
// collapsing runs of consecutive equal items into their first element.
// Unlike cache-based deduplication it keeps no history beyond the previous
// item, so an item may appear again later as long as the occurrences are
// not adjacent.
type Dedup[T comparable] struct {
	name string
}

// NewDedup creates a processor that drops consecutive duplicate items.
// The first item is always forwarded; each subsequent item is forwarded
// only if it differs from the last forwarded item.
//
// When to use:
//   - Collapsing repeated state snapshots into state changes
//   - Filtering repeated sensor readings that only matter when they change
//   - Suppressing redundant UI update notifications
//
// Example:
//
//	dedup := streamx.NewDedup[int]()
//	changes := dedup.Process(ctx, readings)
//	// input  1, 2, 3, 3, 3, 2, 4, 4
//	// output 1, 2, 3, 2, 4
//
// If comparing whole items is expensive and only part of the item is
// significant, use [NewDedupByKey] instead.
func NewDedup[T comparable]() *Dedup[T] {
	return &Dedup[T]{
		name: "dedup",
	}
}

func (d *Dedup[T]) Process(ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		var prev T
		havePrev := false

		for {
			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					return
				}

				if havePrev && item == prev {
					continue
				}

				prev = item
				havePrev = true

				select {
				case out <- item:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (d *Dedup[T]) Name() string {
	return d.name
}
