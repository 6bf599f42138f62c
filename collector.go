package hyaline

import "sync/atomic"

// Collector is a Hyaline memory reclaimer. The zero value is an empty
// Collector ready to use; NewCollector returns a pointer to one. A Collector is safe for
// concurrent use from any number of goroutines and, like its Rust original,
// must outlive every Guard obtained from it.
//
// Grounded on original_source/src/collector.rs's Collector: a fixed array of
// SlotCount slots. The Rust version is `const fn new()`-constructible so it
// can live in a static; a Go Collector built by NewCollector and stored in a
// package-level var gets the same effect, since Go initializes package-level
// vars before any goroutine can observe them.
type Collector struct {
	slots    [SlotCount]slot
	nextSlot atomic.Uint64
}

// NewCollector returns a ready-to-use Collector with all slots empty.
func NewCollector() *Collector {
	return &Collector{}
}

// Pin registers the calling goroutine as an active reader and returns a Guard
// that must be released with Close, normally via defer, on every exit path —
// including panics unwinding through the pinned section.
//
// Grounded on original_source/src/collector.rs's Collector::pin /
// Collector::get_slot. The original picks a slot via thread-id-mod-S, a
// concept with no Go equivalent (goroutines have no stable id and can
// migrate between OS threads); this picks a slot via an atomic round-robin
// counter instead, which only affects contention distribution, never
// correctness.
func (c *Collector) Pin() *Guard {
	idx := int(c.nextSlot.Add(1) % SlotCount)
	return &Guard{
		collector: c,
		slotIdx:   idx,
		handle:    c.slots[idx].pin(),
	}
}

// publish distributes a full (or guard-closing) batch across every slot in
// the collector, crediting each slot's prior head or, for slots with no
// active reader, the batch itself directly.
//
// Grounded on original_source/src/collector.rs's process_batch_handle.
func (c *Collector) publish(b *batch) {
	nodes := b.iter()
	emptySlots := uint64(0)
	for i := range c.slots {
		published, prevHead, prevCount := c.slots[i].addToSlot(nodes[i])
		switch {
		case published && prevHead != nil:
			prevHead.owner.addAdjs(prevCount + adjs)
		case !published:
			emptySlots++
		}
	}
	if emptySlots > 0 {
		b.addAdjs(emptySlots * adjs)
	}
}
