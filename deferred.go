package hyaline

// deferredAction wraps a retired payload's cleanup into an opaque, call-once
// closure. The collector never inspects what a cleanup does — it only
// guarantees when it runs.
//
// Grounded on original_source/src/node.rs: the Rust Node held a `Deferred`
// built from a moved-in closure, invoked exactly once from Node's Drop impl
// (with a no_op_func swapped in first, so a double Drop can't re-run it). A
// Go deferredAction gets the same idempotence by nilling fn after the first
// call instead of relying on a destructor.
type deferredAction struct {
	fn func()
}

// newDeferred builds a deferred action around fn. A nil fn is valid and acts
// as a no-op filler (see newFillerNode in node.go).
func newDeferred(fn func()) deferredAction {
	return deferredAction{fn: fn}
}

// call runs the wrapped cleanup exactly once. Calling it again, whether
// because of a bug or because the caller is defensive, is a safe no-op.
func (d *deferredAction) call() {
	fn := d.fn
	d.fn = nil
	if fn != nil {
		fn()
	}
}
