package arena

import "iter"

// AllocExtend copies values into the arena and returns the stored run as a
// single contiguous slice, in order. If the values do not fit in the current
// chunk, a new chunk large enough for all of them is reserved first, so the
// run is never split across chunks.
//
// The returned slice has no spare capacity; appending to it allocates a new
// backing array outside the arena.
func (a *Arena[T]) AllocExtend(values []T) []T {
	a.beginMut()
	defer a.endMut()
	c := &a.chunks
	if len(values) > cap(c.current)-len(c.current) {
		c.reserve(len(values))
	}
	start := len(c.current)
	c.current = append(c.current, values...)
	return c.current[start:len(c.current):len(c.current)]
}

// AllocExtendSeq drains seq into the arena and returns the stored run as a
// single contiguous slice, in production order.
//
// The sequence's length is unknown up front, so elements are pushed into the
// current chunk's spare room as they arrive. If the sequence outgrows that
// room mid-consumption, the arena grows and the elements this call already
// pushed move into the fresh chunk before the rest of the sequence; the
// retired chunk is left holding exactly what it held before the call.
// Elements allocated before this call never move.
//
// seq must not call back into the arena; doing so panics.
func (a *Arena[T]) AllocExtendSeq(seq iter.Seq[T]) []T {
	a.beginMut()
	defer a.endMut()
	c := &a.chunks
	start := len(c.current)
	pushed := 0
	spliced := false
	for v := range seq {
		if !spliced && len(c.current) == cap(c.current) {
			c.splice(pushed)
			start = 0
			spliced = true
		}
		// Past the splice the chunk holds only this call's elements,
		// so append is free to grow it in place.
		c.current = append(c.current, v)
		pushed++
	}
	return c.current[start:len(c.current):len(c.current)]
}

// splice retires the full current chunk and carries the moved most recent
// elements (all pushed by the batch call in progress) over into the fresh
// chunk, keeping the batch contiguous. The retired chunk ends up with
// exactly its pre-call contents.
func (c *chunkList[T]) splice(moved int) {
	c.reserve(moved + 1)
	prev := &c.rest[len(c.rest)-1]
	tail := (*prev)[len(*prev)-moved:]
	c.current = append(c.current, tail...)
	*prev = (*prev)[:len(*prev)-moved]
	// The frozen chunk must not pin the moved elements.
	clear(tail)
}

// AllocUninitialized marks n slots allocated and returns them without
// specifying their contents. Returns nil if n <= 0.
//
// The slots count as allocated immediately: they appear in Len and are read
// out by IntoVec and iteration like any other element. Callers must fully
// initialize the returned slice before anything reads it back through the
// arena.
func (a *Arena[T]) AllocUninitialized(n int) []T {
	if n <= 0 {
		return nil
	}
	a.beginMut()
	defer a.endMut()
	c := &a.chunks
	if n > cap(c.current)-len(c.current) {
		c.reserve(n)
	}
	start := len(c.current)
	c.current = c.current[:start+n]
	return c.current[start : start+n : start+n]
}

// UninitializedArray returns the current chunk's spare room as a writable
// view without marking it allocated. The view is purely opportunistic: it is
// stale as soon as any allocation call follows, and writes to it are only
// preserved if a later AllocUninitialized claims the same slots before the
// chunk is retired.
func (a *Arena[T]) UninitializedArray() []T {
	a.panicIfReleased()
	c := a.chunks.current
	return c[len(c):cap(c)]
}

// IntoVec consumes the arena and returns every allocated element in
// allocation order. This is the only way to take ownership of the elements
// back out of the arena; afterwards any use of the arena panics.
func (a *Arena[T]) IntoVec() []T {
	a.beginMut()
	defer a.endMut()
	out := make([]T, 0, a.Len())
	for _, ch := range a.chunks.rest {
		out = append(out, ch...)
	}
	out = append(out, a.chunks.current...)
	a.chunks = chunkList[T]{}
	return out
}
