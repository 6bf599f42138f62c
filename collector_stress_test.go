package hyaline

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestSingleThreadFree reproduces the simplest seed scenario: a single pinned
// goroutine retires one payload with no other readers ever active. By the
// time the guard closes, every other slot has contributed its empty-slot
// credit and the guard's own unpin contributes the last one, so the
// destructor is guaranteed to have run.
func TestSingleThreadFree(t *testing.T) {
	c := NewCollector()
	g := c.Pin()

	var drops atomic.Int64
	g.Retire(func() { drops.Add(1) })
	g.Close()

	if got := drops.Load(); got != 1 {
		t.Fatalf("drops = %d, want 1", got)
	}
}

// TestEightGoroutineFanout is the reference stress test (seed scenario 2): 8
// goroutines each pin once and retire 5,000 unique payloads. The collector
// must reclaim every one of them, and exactly once each.
func TestEightGoroutineFanout(t *testing.T) {
	const workers = 8
	const perWorker = 5000

	c := NewCollector()
	var drops atomic.Int64

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			guard := c.Pin()
			defer guard.Close()
			for j := 0; j < perWorker; j++ {
				guard.Retire(func() { drops.Add(1) })
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := int64(workers * perWorker)
	if got := drops.Load(); got != want {
		t.Fatalf("drops = %d, want %d", got, want)
	}
}

// TestGuardLifetimeOverlap reproduces seed scenario 4: goroutine A pins,
// goroutine B retires payload P, goroutine C pins and unpins, then A unpins.
// P must not be destructed before A unpins.
func TestGuardLifetimeOverlap(t *testing.T) {
	c := NewCollector()

	destructed := make(chan struct{})

	gA := c.Pin()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		gB := c.Pin()
		gB.Retire(func() { close(destructed) })
		gB.Close()
	}()

	go func() {
		defer wg.Done()
		gC := c.Pin()
		gC.Close()
	}()

	wg.Wait()

	select {
	case <-destructed:
		t.Fatal("payload destructed before A unpinned")
	default:
	}

	gA.Close()

	select {
	case <-destructed:
	default:
		t.Fatal("payload was never destructed after A unpinned")
	}
}

// TestPinDuringGoroutineExit is the closest Go analogue to seed scenario 5: a
// goroutine pins and retires from inside a deferred function that runs as it
// exits. It must not panic and the guard must release cleanly.
func TestPinDuringGoroutineExit(t *testing.T) {
	c := NewCollector()
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			g := c.Pin()
			defer g.Close()
			g.Retire(func() {})
		}()
	}()

	<-done
}

// TestBatchFillBoundary reproduces seed scenario 6: retire exactly
// BatchCapacity items on one guard (filling the batch and triggering an
// immediate publish), then pin+unpin once on every slot through other
// guards. The retiring guard still holds its own pin, so the batch is freed
// by its Close, the last unpin: all BatchCapacity destructors must have run
// by the time it returns.
func TestBatchFillBoundary(t *testing.T) {
	c := NewCollector()
	var drops atomic.Int64

	g := c.Pin()
	for i := 0; i < BatchCapacity; i++ {
		g.Retire(func() { drops.Add(1) })
	}

	for i := 0; i < SlotCount; i++ {
		other := c.Pin()
		other.Close()
	}
	g.Close()

	if got := drops.Load(); got != BatchCapacity {
		t.Fatalf("drops = %d, want %d", got, BatchCapacity)
	}
}
