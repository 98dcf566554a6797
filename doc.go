// Package arena implements a typed bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocates values of one type, hands out pointers that stay valid
// for the arena's whole life, and drops everything together when the arena
// itself goes away. Allocation is a slice append; there is no per-object
// bookkeeping and no per-object free. This suits programs that build many
// same-type objects with a shared fate:
//
//   - tree and graph nodes, including parent and back pointers
//   - parser AST nodes
//   - simulation entities built up over a run
//
// # Basic Usage
//
//	nodes := arena.New[Node]()
//
//	n := nodes.Alloc(Node{ID: 1})
//	run := nodes.AllocExtend([]Node{{ID: 2}, {ID: 3}})
//
//	// Pointers survive any amount of further allocation.
//	more := nodes.AllocExtendSeq(produceNodes())
//	_ = n.ID
//	_, _ = run, more
//
//	// Take the elements back out, in allocation order.
//	all := nodes.IntoVec()
//	_ = all
//
// # Memory Layout
//
// Storage is a list of chunks. The current chunk takes appends; when it
// fills, it is retired (frozen, never touched again) and a larger chunk
// takes over (capacity doubles, with a power-of-two floor for large
// batches). Nothing is ever moved or reallocated once a pointer to it has
// been handed out, which is the whole address-stability story.
//
// # Safe Cycles
//
// Every element lives exactly as long as the arena, so elements may point at
// each other freely, cycles included, with no cycle-breaking scheme.
// Prefer index- or handle-based edges if the object graph must outlive the
// arena via IntoVec, since IntoVec moves the elements.
//
// # Iteration
//
// IterableArena adds a live cursor over the elements in allocation order.
// The cursor tolerates growth: elements allocated after it was created, or
// even after it has reported exhaustion, are still reached when it is polled
// again. See Iter and All for the two termination conventions.
//
// # Thread Safety
//
// None. An arena has a single logical owner; allocation and iteration may
// interleave on that owner, but nothing here is safe for concurrent use.
// A mutating call re-entered from user code inside another mutating call
// panics rather than corrupt the chunk list.
//
// # Important Notes
//
//   - No individual deallocation: IntoVec is the only consuming operation.
//   - AllocUninitialized slots count as allocated immediately; initialize
//     them fully before reading them back through the arena.
//   - Growth past the addressable capacity panics; allocation never wraps
//     or truncates silently.
//
// # Metrics and Monitoring
//
// Metrics returns a storage snapshot, and Collector exports snapshots as
// Prometheus gauges:
//
//	m := nodes.Metrics()
//	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)
//
//	reg.MustRegister(arena.NewCollector("ast", snapshotFn))
package arena
