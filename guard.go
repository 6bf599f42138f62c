package hyaline

// Guard represents one goroutine's pinned reservation on a Collector. Obtain
// one with Collector.Pin (or the package-level Pin for the default
// collector) and release it with Close on every exit path.
//
// Grounded on original_source/src/guard.rs's Guard, whose Drop impl calls
// Collector::unpin. Go has no destructors, so Close must be called
// explicitly (typically via defer) — there is deliberately no finalizer
// safety net; a guard that is never released is a stalled reader, a
// caller-responsibility class of misuse, not a library bug.
//
// A Guard additionally owns the in-progress retirement batch for whatever
// was retired through it: in the Rust original this batch lived in a
// thread-local independent of any one Guard, a mechanism with no clean Go
// equivalent since goroutines have neither stable identity nor destructors.
// Binding the batch to the Guard instead preserves every reclamation
// invariant at the cost of not amortizing batches across multiple short pin
// sessions on the same goroutine.
type Guard struct {
	collector *Collector
	slotIdx   int
	handle    *node
	batch     *batch
	closed    bool
}

// Retire hands cleanup to the collector as the deferred action for one
// retired node. cleanup runs exactly once, no earlier than the moment every
// reader that could have observed the retired node has unpinned.
//
// Grounded on original_source/src/collector.rs's Smr::retire /
// BatchHandle::add_to_batch.
func (g *Guard) Retire(cleanup func()) {
	if g.closed {
		panic(ErrGuardClosed)
	}
	if g.batch == nil {
		g.batch = &batch{}
	}
	if g.batch.add(newNode(cleanup)) {
		g.collector.publish(g.batch)
		g.batch = nil
	}
}

// RetirePointer is a generic convenience over Retire for callers who'd rather
// hand the collector a typed pointer and a destructor than build the closure
// themselves. It is sugar, not a second code path: it just calls
// g.Retire(func() { destroy(p) }).
//
// Grounded on mjm918-tur/pkg/cowbtree/node.go's sparing but real use of Go
// generics (insertAt/deleteAt) for small, single-purpose helpers.
func RetirePointer[T any](g *Guard, p *T, destroy func(*T)) {
	g.Retire(func() { destroy(p) })
}

// Close releases the guard: any partially filled batch is published first,
// then the slot is unpinned. Close is idempotent, so a deferred Close is
// always safe even if the guard was already released earlier on some other
// path.
//
// Grounded on original_source/src/guard.rs's Drop impl, with the batch-flush
// step folded in: the Rust original flushes a partial batch at thread exit,
// decoupled from any one Guard's Drop; here the Guard is the batch's only
// owner, so its own Close is the natural flush point.
func (g *Guard) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.batch != nil {
		g.collector.publish(g.batch)
		g.batch = nil
	}
	g.collector.slots[g.slotIdx].unpin(g)
}
