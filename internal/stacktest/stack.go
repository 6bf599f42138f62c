// Package stacktest is a lock-free Treiber stack built on top of the
// hyaline collector, used only as a concurrent test fixture for the
// reclamation engine. It is not part of the hyaline public API.
package stacktest

import (
	"sync/atomic"

	"github.com/Abishek0398/hyaline-smr"
)

type stackNode struct {
	value int
	next  *stackNode
}

// Stack is a lock-free LIFO stack whose popped nodes are reclaimed through a
// hyaline.Collector instead of being freed immediately, exercising retire
// under real concurrent push/pop pressure.
//
// Grounded on original_source/examples/hyaline_use.rs's pattern of swapping
// an AtomicPtr under a guard and retiring whatever was displaced.
type Stack struct {
	top       atomic.Pointer[stackNode]
	collector *hyaline.Collector
	reclaimed atomic.Int64
}

// New returns an empty stack backed by its own collector.
func New() *Stack {
	return &Stack{collector: hyaline.NewCollector()}
}

// Reclaimed reports how many popped nodes have had their destructor run so
// far. Used by tests to confirm every popped node is reclaimed exactly once.
func (s *Stack) Reclaimed() int64 {
	return s.reclaimed.Load()
}

// Push adds value to the top of the stack.
func (s *Stack) Push(value int) {
	g := s.collector.Pin()
	defer g.Close()

	n := &stackNode{value: value}
	for {
		old := s.top.Load()
		n.next = old
		if s.top.CompareAndSwap(old, n) {
			return
		}
	}
}

// Pop removes and returns the top value, reporting false if the stack was
// empty. The popped node is retired through the collector: its cleanup, which
// only counts it in Reclaimed, runs once no reader that could have observed
// it is still pinned. The node's memory itself is left to the garbage
// collector.
func (s *Stack) Pop() (int, bool) {
	g := s.collector.Pin()
	defer g.Close()

	for {
		old := s.top.Load()
		if old == nil {
			return 0, false
		}
		next := old.next
		if s.top.CompareAndSwap(old, next) {
			value := old.value
			g.Retire(func() { s.reclaimed.Add(1) })
			return value, true
		}
	}
}
