package hyaline

import "sync"

// SlotCount is the number of reservation slots in a Collector. The canonical
// reference value is 64; ADJS (see adjs below) is derived from it so that
// SlotCount independent full contributions to a batch's reference counter sum
// to exactly zero modulo 2^64.
const SlotCount = 64

// adjs is each slot's "this slot has moved on" contribution to a batch's
// reference counter, derived as floor(MaxUint64/SlotCount) + 1 so that
// SlotCount copies wrap a uint64 back to zero, matching
// original_source/src/collector.rs's ADJS derivation.
const adjs = (^uint64(0))/SlotCount + 1

// slot is one reservation cell: the most recently published head for readers
// pinned at this slot, and how many readers are currently pinned here.
//
// Go's sync/atomic exposes no native 128-bit compare-and-swap, so this falls
// back to a lock-backed equivalent with the same semantics instead of a
// double-wide atomic.
// Grounded on mjm918-tur/pkg/cowbtree/cowbtree.go's own mix of a
// sync.Mutex-guarded write path alongside lock-free reads (writeMu); here the
// mutex guards the {head, count} pair atomically instead of simulating a
// double-wide CAS with tagged-pointer packing, which would require hiding a
// live *node inside a non-pointer word and is unsafe under a moving,
// GC-tracked runtime.
type slot struct {
	mu    sync.Mutex
	head  *node
	count uint64
}

// pin registers one more active reader at this slot and returns the handle —
// the head the reader observed at the moment it pinned. A nil handle means no
// retirement had yet been published to this slot.
//
// Grounded on original_source/src/headnode.rs's pin_slot, which in the Rust
// original is a single fetch_add on the packed {None, 1} value; under the
// mutex fallback this is a critical section instead of a single instruction,
// but the observable result — count incremented, head read atomically with
// that increment — is identical.
func (s *slot) pin() *node {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.head
}

// addToSlot publishes n as this slot's new head. If no reader is currently
// pinned here (count == 0), there is nothing to protect n against, so the
// publish is skipped entirely and published reports false — the caller must
// credit the node's batch directly instead (see Collector.publish).
//
// Grounded on original_source/src/headnode.rs's add_to_slot.
func (s *slot) addToSlot(n *node) (published bool, prevHead *node, prevCount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return false, nil, 0
	}
	prevHead, prevCount = s.head, s.count
	n.list = prevHead
	s.head = n
	return true, prevHead, prevCount
}

// unpin releases the reader that pinned with guard g, crediting reclamation
// for whatever it leaves behind.
//
// Grounded on original_source/src/headnode.rs's unpin_slot: if this was the
// last reader at the slot (count drops to 1 -> 0), the slot resets to empty
// and its current head earns a full adjs credit toward its batch. If the
// head observed here differs from what g saw at pin time, other batches were
// published to this slot while g was pinned, so the portion of the chain
// between the current head and g's own handle must be credited for g's
// departure via traverse.
func (s *slot) unpin(g *Guard) {
	s.mu.Lock()
	h, c := s.head, s.count
	var traverseStart *node
	if h != nil && h != g.handle {
		traverseStart = h.list
	}
	if c == 1 {
		s.head, s.count = nil, 0
	} else {
		s.count = c - 1
	}
	s.mu.Unlock()

	if c == 1 && h != nil {
		h.owner.addAdjs(adjs)
	}
	if traverseStart != nil {
		traverseStart.traverse(g)
	}
}
