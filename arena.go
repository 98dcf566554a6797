// Package arena implements a typed bump allocator: values of a single type
// are allocated one at a time or in batches, pointers into the arena stay
// valid for the arena's whole life, and everything is dropped together.
package arena

import (
	"math"
	"math/bits"
	"unsafe"
)

// initialSize is the target byte size of the first chunk created by New.
const initialSize = 1024

// minCapacity is the smallest chunk capacity. Must be at least 1 so the
// current chunk of a live arena is never nil.
const minCapacity = 1

// chunkList is the arena's storage: the chunk currently accepting pushes
// plus every chunk it has outgrown, oldest first. Retired chunks are frozen;
// their backing arrays are never appended to or reallocated again, which is
// what keeps handed-out pointers valid across growth.
type chunkList[T any] struct {
	current []T
	rest    [][]T
}

// Arena is a typed bump allocator. Allocation returns pointers directly into
// chunk storage; those pointers remain valid until the arena is garbage
// collected or consumed by IntoVec. Individual elements cannot be freed.
//
// Because every element lives exactly as long as the arena, elements may
// hold pointers to each other freely, including cycles and parent links.
//
// An Arena is single-owner: it is not safe for concurrent use, and a
// mutating call re-entered from inside another mutating call (for example
// from a sequence passed to AllocExtendSeq) panics.
type Arena[T any] struct {
	busy   bool
	chunks chunkList[T]
}

// New creates an arena whose first chunk targets roughly a kilobyte of
// elements, with capacity for at least one.
func New[T any]() *Arena[T] {
	var zero T
	size := max(1, int(unsafe.Sizeof(zero)))
	return WithCapacity[T](initialSize / size)
}

// WithCapacity creates an arena whose first chunk holds n elements.
// n is a hint only; it is floored to a minimum of 1.
func WithCapacity[T any](n int) *Arena[T] {
	n = max(minCapacity, n)
	return &Arena[T]{chunks: chunkList[T]{current: make([]T, 0, n)}}
}

// Alloc stores value in the arena and returns a pointer to it.
// The pointer stays valid no matter how many allocations follow.
func (a *Arena[T]) Alloc(value T) *T {
	a.beginMut()
	defer a.endMut()
	c := &a.chunks
	if len(c.current) == cap(c.current) {
		c.reserve(1)
	}
	c.current = append(c.current, value)
	return &c.current[len(c.current)-1]
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() int {
	n := len(a.chunks.current)
	for _, ch := range a.chunks.rest {
		n += len(ch)
	}
	return n
}

// beginMut marks a chunk-list mutation in progress. At most one mutation may
// be in flight per arena; re-entry corrupts the splice bookkeeping, so it
// fails loudly instead.
func (a *Arena[T]) beginMut() {
	if a.busy {
		panic("arena: re-entrant mutation")
	}
	a.panicIfReleased()
	a.busy = true
}

func (a *Arena[T]) endMut() { a.busy = false }

// panicIfReleased panics if the arena has been consumed by IntoVec.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks.current == nil {
		panic("arena: use after IntoVec()")
	}
}

// reserve retires the current chunk into rest and installs a fresh one with
// room for at least additional more elements. Doubling amortizes repeated
// single-item growth; the power-of-two floor keeps a large batch from
// forcing an immediate second growth.
func (c *chunkList[T]) reserve(additional int) {
	if cap(c.current) > math.MaxInt/2 {
		panic("arena: capacity overflow")
	}
	newCap := max(2*cap(c.current), nextPowerOfTwo(additional))
	c.rest = append(c.rest, c.current)
	c.current = make([]T, 0, newCap)
}

// nextPowerOfTwo rounds n up to a power of two, panicking rather than
// wrapping when the result is not representable.
func nextPowerOfTwo(n int) int {
	if n <= minCapacity {
		return minCapacity
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		panic("arena: capacity overflow")
	}
	return 1 << shift
}
