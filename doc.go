// Package hyaline implements Safe Memory Reclamation (SMR) using the Hyaline
// algorithm — the "Scalable Multiple-List without stalled-thread support"
// variant described in Alistarh et al., "Snapshot-Free, Transparent, and Robust
// Memory Reclamation for Lock-Free Data Structures" (https://arxiv.org/pdf/1905.07903.pdf).
//
// Concurrent readers traverse a shared lock-free structure while writers unlink
// nodes from it. This package lets a writer defer the destruction of an unlinked
// node until no reader that could have observed it is still active, and then runs
// that destruction deterministically — no background goroutine, no global scan.
//
// # Pinning
//
// Before touching a concurrent structure, a goroutine must pin the collector:
//
//	g := collector.Pin()
//	defer g.Close()
//
// Pinning declares "any node unlinked from now on must not be destroyed yet."
//
// # Retiring
//
// Once a node has been unlinked from the structure it belonged to, hand its
// cleanup to the collector:
//
//	g.Retire(func() { /* release node's resources */ })
//
// The cleanup runs exactly once, never before every reader that could have
// observed the node has released its pin. Retirements are reclaimed a batch at
// a time: a batch is published when it fills or when the retiring guard is
// closed, and its cleanups run together once every reader counted against it
// has released its pin, so a cleanup can run later than that earliest point.
//
// # Example
//
// A synthetic stress test:
//
//	var dropped atomic.Int64
//	var wg sync.WaitGroup
//	for i := 0; i < 8; i++ {
//		wg.Add(1)
//		go func() {
//			defer wg.Done()
//			g := hyaline.Pin()
//			defer g.Close()
//			for j := 0; j < 5000; j++ {
//				g.Retire(func() { dropped.Add(1) })
//			}
//		}()
//	}
//	wg.Wait()
//	// dropped eventually reaches 40000.
package hyaline
