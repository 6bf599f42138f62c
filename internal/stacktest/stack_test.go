package stacktest

import (
	"context"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestTreiberStackConcurrent is seed scenario 3: 16 goroutines each push and
// pop 1,024 times. After they all join, the stack must be empty and every
// popped node's retirement must have run exactly once.
func TestTreiberStackConcurrent(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 1024

	s := New()
	var pushed atomic.Int64

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < goroutines; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < perGoroutine; j++ {
				s.Push(i*perGoroutine + j)
				pushed.Add(1)
				if _, ok := s.Pop(); !ok {
					t.Errorf("goroutine %d: pop %d unexpectedly found an empty stack", i, j)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := pushed.Load(); got != goroutines*perGoroutine {
		t.Fatalf("pushed = %d, want %d", got, goroutines*perGoroutine)
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("stack should be empty after every push was matched by a pop")
	}
	if got, want := s.Reclaimed(), pushed.Load(); got != want {
		t.Fatalf("reclaimed = %d, want %d (every popped node's destructor must run exactly once)", got, want)
	}
}
