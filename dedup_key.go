package streamx

import (
	"context"
)

// DedupByKey suppresses items whose derived key equals the key of the item
// it most recently forwarded. Only the previous key is retained, never the
// item itself.
type DedupByKey[T any, K comparable] struct {
	keyFunc func(T) K
	name    string
}

// NewDedupByKey creates a processor that drops consecutive items sharing
// the same key. The keyFunc derives a comparable key from each item; an
// item is forwarded only if its key differs from the previous forwarded
// item's key. The first item is always forwarded.
//
// Example:
//
//	// Keep only parity changes.
//	dedup := streamx.NewDedupByKey(func(n int) int { return n % 2 })
//	changes := dedup.Process(ctx, numbers)
//	// input  1, 2, 3, 1, 2, 4, 8
//	// output 1, 2, 3, 2
//
// keyFunc may carry internal state but must be deterministic with respect
// to key equality; it is called exactly once per input item.
func NewDedupByKey[T any, K comparable](keyFunc func(T) K) *DedupByKey[T, K] {
	return &DedupByKey[T, K]{
		keyFunc: keyFunc,
		name:    "dedup-by-key",
	}
}

func (d *DedupByKey[T, K]) Process(ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		var prevKey K
		havePrev := false

		for {
			select {
			case <-ctx.Done():
				return

			case item, ok := <-in:
				if !ok {
					return
				}

				key := d.keyFunc(item)
				if havePrev && key == prevKey {
					continue
				}

				prevKey = key
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

func (d *DedupByKey[T, K]) Name() string {
	return d.name
}
