package hyaline

import "errors"

// ErrGuardClosed is the panic value used when Retire is called on a Guard that
// has already been closed. Closing a Guard unpins its slot; retiring through it
// afterwards would attach new nodes to a batch nobody will ever publish, which
// is a programmer error rather than a runtime condition.
var ErrGuardClosed = errors.New("hyaline: retire called on a closed guard")
