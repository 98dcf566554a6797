package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		name    string
		hint    int
		wantCap int
	}{
		{"zero hint floored", 0, 1},
		{"negative hint floored", -5, 1},
		{"hint respected", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := WithCapacity[int](tt.hint)
			require.Equal(t, tt.wantCap, cap(a.chunks.current))
			require.Empty(t, a.chunks.rest)
			require.Zero(t, a.Len())
		})
	}
}

func TestNewSizesFirstChunkByElement(t *testing.T) {
	small := New[byte]()
	require.Equal(t, initialSize, cap(small.chunks.current))

	big := New[[2048]byte]()
	require.Equal(t, 1, cap(big.chunks.current))
}

func TestAlloc(t *testing.T) {
	a := New[int]()

	p := a.Alloc(42)
	require.Equal(t, 42, *p)
	require.Equal(t, 1, a.Len())

	q := a.Alloc(7)
	require.Equal(t, 7, *q)
	require.Equal(t, 42, *p)
	require.Equal(t, 2, a.Len())
}

func TestGrowthPolicy(t *testing.T) {
	// Starting from capacity 1, the chunk capacities follow
	// max(2*previous, nextPowerOfTwo(1)): 1, 2, 4, with retirements
	// after the first and third single-item allocations.
	a := WithCapacity[int](1)

	wantChunks := []int{1, 2, 2, 3, 3}
	for i := 0; i < 5; i++ {
		a.Alloc(i)
		require.Equal(t, wantChunks[i], len(a.chunks.rest)+1, "after alloc %d", i+1)
	}

	require.Len(t, a.chunks.rest, 2)
	require.Equal(t, 1, cap(a.chunks.rest[0]))
	require.Equal(t, 2, cap(a.chunks.rest[1]))
	require.Equal(t, 4, cap(a.chunks.current))

	// Retired chunks stay exactly as displaced.
	require.Equal(t, []int{0}, a.chunks.rest[0])
	require.Equal(t, []int{1, 2}, a.chunks.rest[1])
	require.Equal(t, []int{3, 4}, a.chunks.current)
}

func TestPointerStability(t *testing.T) {
	a := WithCapacity[int](1)

	ptrs := make([]*int, 100)
	for i := range ptrs {
		ptrs[i] = a.Alloc(i)
	}
	a.AllocExtend(make([]int, 1000))

	for i, p := range ptrs {
		require.Equal(t, i, *p)
	}
}

func TestReentrantMutationPanics(t *testing.T) {
	a := New[int]()

	require.PanicsWithValue(t, "arena: re-entrant mutation", func() {
		a.AllocExtendSeq(func(yield func(int) bool) {
			yield(1)
			a.Alloc(2)
		})
	})

	// The guard clears when the panic unwinds.
	require.Equal(t, 3, *a.Alloc(3))
}

func TestUseAfterIntoVecPanics(t *testing.T) {
	a := New[string]()
	a.Alloc("x")
	a.IntoVec()

	require.PanicsWithValue(t, "arena: use after IntoVec()", func() { a.Alloc("y") })
	require.PanicsWithValue(t, "arena: use after IntoVec()", func() { a.AllocExtend([]string{"y"}) })
	require.PanicsWithValue(t, "arena: use after IntoVec()", func() { a.UninitializedArray() })
	require.PanicsWithValue(t, "arena: use after IntoVec()", func() { a.IntoVec() })
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, nextPowerOfTwo(tt.in), "nextPowerOfTwo(%d)", tt.in)
	}
}

func TestCapacityOverflowPanics(t *testing.T) {
	require.PanicsWithValue(t, "arena: capacity overflow", func() {
		nextPowerOfTwo(1<<62 + 1)
	})
}
