// Package streamx provides a small set of composable stream adapters over Go
// channels that are not commonly found in general-purpose channel utility
// libraries: consecutive-duplicate elimination (plain and by derived key),
// trigger-driven batching, and stream-of-streams flattening with
// replace-on-new-inner ("switch") semantics.
//
// The core abstraction is the Processor interface which transforms input
// channels to output channels. A channel is the stream: a receive that would
// block means the stream is temporarily unable to produce (the runtime wakes
// the receiver when it can), and a closed channel means the stream is
// permanently finished. Closed channels stay closed, so completion is fused.
//
// Basic usage:
//
//	ctx := context.Background()
//	events := make(chan Event)
//	trigger := make(chan streamx.Signal)
//
//	// Collapse runs of identical events, then release them in batches
//	// whenever the trigger fires.
//	deduped := streamx.NewDedupByKey(func(e Event) string { return e.ID }).Process(ctx, events)
//	batches := streamx.NewBatchWith[Event](trigger).Process(ctx, deduped)
//
//	for batch := range batches {
//		store.WriteAll(batch)
//	}
//
// Adapters compose by plain nesting: the output channel of one is the input
// channel of the next. No adapter spawns more than its single worker
// goroutine, holds locks, or shares state; each is driven entirely by its
// producers, its consumer, and context cancellation.
package streamx

import "context"

// Processor is the core interface for stream processing components.
// It transforms an input channel of type In to an output channel of type Out.
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Preserve the relative order of items from each source
//   - Treat items as opaque values (no error interpretation)
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}

// Signal is the payload of a trigger stream. It carries no information;
// only the fact that a value arrived matters.
type Signal struct{}
