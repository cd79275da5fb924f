package streamx

import (
	"context"
)

// Switch flattens a stream of streams by always forwarding from the most
// recently produced inner stream. Producing a new inner stream replaces the
// current one; items the replaced stream had not yet delivered are discarded,
// never reordered or replayed.
type Switch[T any] struct {
	name string
}

// NewSwitch creates a processor that turns a stream of streams into a
// stream of the inner item type, forwarding items only from the latest
// inner stream.
//
// Whenever the outer stream produces a new inner stream, Switch adopts it
// and abandons the previous one. Inner streams already queued on the outer
// are drained before any item is forwarded, so if several arrive back to
// back only the newest is ever read from ("switch to latest", not "switch
// to first available").
//
// Completion is composed: the output closes only once the outer stream has
// closed and either no inner stream was ever produced or the current inner
// stream has closed. An outer close while an inner stream is still
// producing does not cut it off.
//
// When to use:
//   - Following a stream of query results where only the newest query matters
//   - Live-reloading a subscription when its configuration changes
//   - Search-as-you-type, where each keystroke supersedes the previous request
//
// Abandoned inner streams are simply no longer received from; their
// producers are expected to watch their own context, as every processor in
// this package does.
func NewSwitch[T any]() *Switch[T] {
	return &Switch[T]{
		name: "switch",
	}
}

func (s *Switch[T]) Process(ctx context.Context, in <-chan (<-chan T)) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		outer := in
		var inner <-chan T

		// adoptLatest replaces inner with the newest stream the outer has
		// already queued. Sets outer to nil once the outer stream closes.
		adoptLatest := func() {
			for outer != nil {
				select {
				case next, ok := <-outer:
					if !ok {
						outer = nil
						return
					}
					inner = next
				default:
					return
				}
			}
		}

		forward := func(item T) bool {
			select {
			case out <- item:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			adoptLatest()

			if inner == nil {
				if outer == nil {
					return
				}
				select {
				case <-ctx.Done():
					return
				case next, ok := <-outer:
					if !ok {
						outer = nil
						return
					}
					inner = next
				}
				continue
			}

			if outer == nil {
				// Only the inner stream can make progress now; its close
				// completes the adapter.
				select {
				case <-ctx.Done():
					return
				case item, ok := <-inner:
					if !ok {
						return
					}
					if !forward(item) {
						return
					}
				}
				continue
			}

			select {
			case <-ctx.Done():
				return

			case next, ok := <-outer:
				if !ok {
					outer = nil
					continue
				}
				inner = next

			case item, ok := <-inner:
				if !ok {
					// Inner done but the outer may still produce a
					// replacement; park until it does.
					inner = nil
					continue
				}
				if !forward(item) {
					return
				}
			}
		}
	}()

	return out
}

func (s *Switch[T]) Name() string {
	return s.name
}
