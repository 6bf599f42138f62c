package hyaline

import "sync/atomic"

// BatchCapacity is the maximum number of real retirements a single batch
// holds before it must be published. The canonical reference value (64)
// keeps one contribution per slot when B == SlotCount, so a full batch always
// supplies exactly enough nodes to cover every slot with no fillers needed.
const BatchCapacity = 64

// batch is a guard-local group of up to BatchCapacity retirement nodes. The
// Rust original's BatchHandle lived thread-local; Go goroutines have no
// stable identity or destructor hook to hang that on, so ownership moves to
// the Guard instead (see guard.go).
//
// Grounded on original_source/src/batch.rs's Batch: head corresponds to
// first_node, and nref is the shared reference counter that determines when
// every node the batch owns gets its deferred action run.
type batch struct {
	head *node
	size int
	nref atomic.Uint64
}

// add appends n to the batch's owning chain and reports whether the batch is
// now full. Only the goroutine holding the owning Guard ever calls add, so no
// synchronization is needed here — this mirrors the Rust BatchHandle's
// thread-confined Batch::add, just confined to a Guard instead of a thread.
func (b *batch) add(n *node) (full bool) {
	n.owner = b
	n.batch = b.head
	b.head = n
	b.size++
	return b.size == BatchCapacity
}

// iter returns exactly SlotCount nodes for publication, following the batch's
// owning chain from head and padding with fillers (see node.produceFiller) if
// the batch holds fewer than SlotCount real retirements — which happens
// whenever a guard is closed with a partial batch.
//
// Grounded on original_source/src/batch.rs's Iter, which does the same
// lazy-filler padding one node at a time rather than precomputing a slice;
// doing it eagerly here is equivalent and simpler in Go, since unlike Rust's
// Iterator trait we don't need iter() itself to be zero-cost/lazy to satisfy
// any external consumer — Collector.publish is the only caller.
func (b *batch) iter() []*node {
	out := make([]*node, SlotCount)
	cur := b.head
	for i := 0; i < SlotCount; i++ {
		out[i] = cur
		if i == SlotCount-1 {
			break
		}
		cur = cur.produceFiller()
	}
	return out
}

// addAdjs credits delta to the batch's reference counter. If the running sum
// wraps around to exactly zero, every reader that could ever observe a node in
// this batch has departed, so the batch is freed: each node's deferred action
// runs exactly once, in chain order.
//
// Grounded on original_source/src/node.rs's Node::add_adjs / traverse, which
// route the same operation through a node reference (node.owner.nref);
// here it's a direct method on *batch since Go has no reason to indirect
// through a node to reach a field the caller can already see.
func (b *batch) addAdjs(delta uint64) {
	if b.nref.Add(delta) == 0 {
		b.free()
	}
}

// free runs every node's deferred action exactly once. Go's garbage collector
// already owns the memory for the batch and its nodes — what matters here,
// and what the original Rust Drop chain provided, is that each cleanup fires
// at this precise moment, not before and not again later.
func (b *batch) free() {
	for cur := b.head; cur != nil; {
		next := cur.batch
		cur.deferred.call()
		cur = next
	}
}
