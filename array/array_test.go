package array

import (
	"sync/atomic"
	"testing"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/stretchr/testify/require"
)

func TestNewAllocatesExpectedSlice(t *testing.T) {
	a, err := New(Make(dtype.I64, 3, 4))
	require.NoError(t, err)
	require.Len(t, a.I64s, 12)

	b, err := New(MakeBigInt(4, 5))
	require.NoError(t, err)
	require.Len(t, b.Bigs, 5)
	for _, z := range b.Bigs {
		require.Equal(t, int64(0), z.Int64())
	}
}

func TestNewRejectsUndef(t *testing.T) {
	_, err := New(Make(dtype.UNDEF, 1))
	require.Error(t, err)
}

func TestForEachVisitsAllLanes(t *testing.T) {
	var count int64
	ForEach(1000, func(i int) {
		atomic.AddInt64(&count, 1)
	})
	require.Equal(t, int64(1000), count)
}

func TestForEachZero(t *testing.T) {
	called := false
	ForEach(0, func(i int) { called = true })
	require.False(t, called)
}

func TestForEachRespectsChunkSize(t *testing.T) {
	defer SetChunkSize(0)

	SetChunkSize(10)
	var count int64
	ForEach(37, func(i int) {
		atomic.AddInt64(&count, 1)
	})
	require.Equal(t, int64(37), count)

	SetChunkSize(0)
	var count2 int64
	ForEach(37, func(i int) {
		atomic.AddInt64(&count2, 1)
	})
	require.Equal(t, int64(37), count2)
}

func TestResolvedMaxBits(t *testing.T) {
	l := MakeBigInt(8, 3)
	r := MakeBigInt(-1, 3)
	mb, err := ResolvedMaxBits(l, r)
	require.NoError(t, err)
	require.Equal(t, 8, mb)

	r2 := MakeBigInt(16, 3)
	_, err = ResolvedMaxBits(l, r2)
	require.Error(t, err)
}

func TestArrayTypeEqual(t *testing.T) {
	a := Make(dtype.F64, 2, 3)
	b := Make(dtype.F64, 2, 3)
	c := Make(dtype.F64, 2, 4)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
