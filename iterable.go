package arena

import "iter"

// IterableArena is an Arena that can be iterated while it is still being
// allocated into. It exposes the same allocation surface, minus the raw
// uninitialized calls: the iterator may observe any allocated slot, so every
// slot must hold a fully constructed value.
//
// Pointers returned by an IterableArena are shared with every live iterator.
// Treat them as read-mostly: writing through one while an iterator holds the
// same element is the caller's race to reason about, exactly as with any
// shared Go pointer.
type IterableArena[T any] struct {
	arena Arena[T]
}

// NewIterable creates an iterable arena sized like New.
func NewIterable[T any]() *IterableArena[T] {
	return &IterableArena[T]{arena: *New[T]()}
}

// IterableWithCapacity creates an iterable arena sized like WithCapacity.
func IterableWithCapacity[T any](n int) *IterableArena[T] {
	return &IterableArena[T]{arena: *WithCapacity[T](n)}
}

// Alloc stores value in the arena and returns a pointer to it.
func (ia *IterableArena[T]) Alloc(value T) *T {
	return ia.arena.Alloc(value)
}

// AllocExtend copies values into the arena; see Arena.AllocExtend.
func (ia *IterableArena[T]) AllocExtend(values []T) []T {
	return ia.arena.AllocExtend(values)
}

// AllocExtendSeq drains seq into the arena; see Arena.AllocExtendSeq.
func (ia *IterableArena[T]) AllocExtendSeq(seq iter.Seq[T]) []T {
	return ia.arena.AllocExtendSeq(seq)
}

// IntoVec consumes the arena; see Arena.IntoVec. Live iterators become
// permanently exhausted.
func (ia *IterableArena[T]) IntoVec() []T {
	return ia.arena.IntoVec()
}

// Len returns the number of elements allocated so far.
func (ia *IterableArena[T]) Len() int {
	return ia.arena.Len()
}

// Metrics returns a snapshot of the arena's storage statistics.
func (ia *IterableArena[T]) Metrics() Metrics {
	return ia.arena.Metrics()
}

// Iter returns a cursor over the arena's elements in allocation order.
//
// The cursor reads the chunk list live: elements allocated after the cursor
// was created are still reached, including by a cursor that has already
// reported exhaustion. Next returning ok == false therefore means "nothing
// more right now", not "ended": poll again after allocating and the new
// elements appear. Range over All instead for a loop that ends at the first
// exhaustion.
func (ia *IterableArena[T]) Iter() *Iter[T] {
	return &Iter[T]{arena: &ia.arena}
}

// All adapts a fresh Iter to a range loop. The loop ends the first time the
// arena runs out of elements; allocations made inside the loop body are
// still observed on later steps.
func (ia *IterableArena[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := ia.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iter is a cursor over an IterableArena. The zero cursor position is the
// first allocated element.
//
// The cursor is a pair (retired-chunk index, offset). Growth keeps it valid:
// retired chunks are frozen, and retiring the live chunk appends it to the
// retired sequence at the exact index where the cursor expected to find the
// live chunk, now frozen and readable.
type Iter[T any] struct {
	arena *Arena[T]
	chunk int
	i     int
}

// Next returns a pointer to the next element in allocation order. ok is
// false when no further element exists at the time of the call; the cursor
// stays usable and resumes if the arena grows afterwards.
func (it *Iter[T]) Next() (_ *T, ok bool) {
	a := it.arena
	if a.busy {
		panic("arena: iteration during allocation")
	}
	if a.chunks.current == nil {
		// Arena consumed by IntoVec.
		return nil, false
	}
	for {
		c := &a.chunks
		if it.chunk == len(c.rest) {
			if it.i == len(c.current) {
				return nil, false
			}
			p := &c.current[it.i]
			it.i++
			return p, true
		}
		ch := c.rest[it.chunk]
		if it.i == len(ch) {
			it.chunk++
			it.i = 0
			continue
		}
		p := &ch[it.i]
		it.i++
		return p, true
	}
}
