package hyaline

// defaultCollector is the process-wide collector backing the package-level
// convenience functions: a thin wrapper around a single shared Collector, not
// a separate policy of its own.
//
// Grounded on original_source/src/default.rs, which reaches for
// `lazy_static!` because Rust statics can't call non-const constructors at
// load time. Go package-level vars are initialized before main and before any
// goroutine can observe them, so no lazy/once machinery is needed here.
var defaultCollector = NewCollector()

// Pin pins the calling goroutine against the default, process-wide
// Collector. Equivalent to DefaultCollector().Pin().
func Pin() *Guard {
	return defaultCollector.Pin()
}

// DefaultCollector returns the process-wide default Collector.
func DefaultCollector() *Collector {
	return defaultCollector
}
