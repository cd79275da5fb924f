package streamx

import (
	"context"
)

// FromSlice returns a stream that yields the given items in order and then
// closes. Handy for composing adapters over fixed data and in tests.
func FromSlice[T any](ctx context.Context, items ...T) <-chan T {
	out := make(chan T, len(items))

	go func() {
		defer close(out)

		for _, item := range items {
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Chain concatenates streams sequentially: all items of the first stream,
// then all items of the second, and so on. The output closes when the last
// stream closes. Later streams are not received from until every earlier
// stream has completed.
func Chain[T any](ctx context.Context, streams ...<-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, stream := range streams {
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-stream:
					if !ok {
						stream = nil
					} else {
						select {
						case out <- item:
						case <-ctx.Done():
							return
						}
					}
				}
				if stream == nil {
					break
				}
			}
		}
	}()

	return out
}
