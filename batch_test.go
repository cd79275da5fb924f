package streamx

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/clockz"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case item, ok := <-ch:
		if !ok {
			t.Fatal("expected item, channel closed")
		}
		return item
	case <-time.After(time.Second):
		t.Fatal("expected item, receive timed out")
	}
	panic("unreachable")
}

func TestBatchWith_Name(t *testing.T) {
	batcher := NewBatchWith[int](make(chan Signal))
	if batcher.Name() != "batch-with" {
		t.Errorf("expected name 'batch-with', got %q", batcher.Name())
	}
}

func TestBatchWith_TriggerDrivenBatches(t *testing.T) {
	ctx := context.Background()
	in := make(chan int, 8)
	trigger := make(chan Signal)

	out := NewBatchWith[int](trigger).Process(ctx, in)

	// Nothing buffered, no trigger: no output.
	assertNoItem(t, out)

	in <- 1
	in <- 2
	in <- 3

	// Buffered but no trigger yet: still no output.
	assertNoItem(t, out)

	trigger <- Signal{}
	if diff := cmp.Diff([]int{1, 2, 3}, recv(t, out)); diff != "" {
		t.Errorf("unexpected first batch (-want +got):\n%s", diff)
	}

	in <- 4
	in <- 5
	trigger <- Signal{}
	if diff := cmp.Diff([]int{4, 5}, recv(t, out)); diff != "" {
		t.Errorf("unexpected second batch (-want +got):\n%s", diff)
	}
	assertNoItem(t, out)

	// Closing the input flushes the remainder without a trigger.
	in <- 6
	in <- 7
	in <- 8
	close(in)
	if diff := cmp.Diff([]int{6, 7, 8}, recv(t, out)); diff != "" {
		t.Errorf("unexpected final batch (-want +got):\n%s", diff)
	}
	assertClosed(t, out)
}

func TestBatchWith_EmptyInputCompletesImmediately(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)
	close(in)

	// A queued trigger signal must not matter: the trigger is never
	// consulted once the input is closed with nothing buffered.
	trigger := make(chan Signal, 1)
	trigger <- Signal{}

	out := NewBatchWith[int](trigger).Process(ctx, in)

	assertClosed(t, out)
}

func TestBatchWith_TriggerWithEmptyBufferEmitsNothing(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)
	trigger := make(chan Signal, 8)

	out := NewBatchWith[int](trigger).Process(ctx, in)

	assertNoItem(t, out)

	trigger <- Signal{}
	assertNoItem(t, out)

	// However many times it fires.
	trigger <- Signal{}
	trigger <- Signal{}
	trigger <- Signal{}
	assertNoItem(t, out)
	assertNoItem(t, out)
}

func TestBatchWith_ClosedTriggerOnlyFlushesOnInputClose(t *testing.T) {
	ctx := context.Background()
	in := make(chan int, 4)
	trigger := make(chan Signal)

	out := NewBatchWith[int](trigger).Process(ctx, in)

	in <- 1
	in <- 2
	close(trigger)

	// No trigger left, so the buffer stays put.
	assertNoItem(t, out)

	close(in)
	if diff := cmp.Diff([]int{1, 2}, recv(t, out)); diff != "" {
		t.Errorf("unexpected batch (-want +got):\n%s", diff)
	}
	assertClosed(t, out)
}

func TestBatchWith_TickTrigger(t *testing.T) {
	clock := clockz.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan string, 4)
	trigger := Tick(ctx, 100*time.Millisecond, clock)

	out := NewBatchWith[string](trigger).Process(ctx, in)

	in <- "a"
	in <- "b"

	// Let the ticker register with the fake clock before advancing.
	time.Sleep(10 * time.Millisecond)
	clock.Advance(100 * time.Millisecond)
	clock.BlockUntilReady()

	if diff := cmp.Diff([]string{"a", "b"}, recv(t, out)); diff != "" {
		t.Errorf("unexpected batch (-want +got):\n%s", diff)
	}

	close(in)
	assertClosed(t, out)
}

func TestBatchWith_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	trigger := make(chan Signal)

	out := NewBatchWith[int](trigger).Process(ctx, in)

	cancel()

	assertClosed(t, out)
}
