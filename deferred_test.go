package hyaline

import "testing"

func TestDeferredCallRunsOnce(t *testing.T) {
	calls := 0
	d := newDeferred(func() { calls++ })
	d.call()
	d.call()
	d.call()
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDeferredNilFuncIsNoop(t *testing.T) {
	d := newDeferred(nil)
	d.call() // must not panic
}
