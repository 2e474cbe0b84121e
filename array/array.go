package array

import (
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/pkg/errors"
)

// Array is an in-memory stand-in for the symbol table's distributed array
// entry (spec.md §3). Exactly one of the typed slices below is populated,
// selected by AT.DType; this mirrors the teacher repo's
// atype.UnsafeSliceForDType / CastAsDType dispatch-by-dtype pattern, but
// uses concrete typed slices instead of unsafe pointer casts since this
// server owns its own storage rather than reinterpreting a foreign buffer.
//
// A real distributed backing store would shard these slices across
// locales/workers; ForEach below models the "parallel loop over the
// distributed domain" contract from spec.md §5 with a local worker pool,
// which is the right granularity for a single-process stand-in.
type Array struct {
	AT ArrayType

	U8    []uint8
	U16s  []uint16
	U32s  []uint32
	U64s  []uint64
	I8s   []int8
	I16s  []int16
	I32s  []int32
	I64s  []int64
	F32s  []float32
	F64s  []float64
	C64s  []complex64
	C128s []complex128
	Bools []bool
	Bigs  []*big.Int
	Strs  []string
}

// New allocates an Array of the given ArrayType with zero-valued elements.
func New(at ArrayType) (*Array, error) {
	n := at.Size()
	a := &Array{AT: at}
	switch at.DType {
	case dtype.U8:
		a.U8 = make([]uint8, n)
	case dtype.U16:
		a.U16s = make([]uint16, n)
	case dtype.U32:
		a.U32s = make([]uint32, n)
	case dtype.U64:
		a.U64s = make([]uint64, n)
	case dtype.I8:
		a.I8s = make([]int8, n)
	case dtype.I16:
		a.I16s = make([]int16, n)
	case dtype.I32:
		a.I32s = make([]int32, n)
	case dtype.I64:
		a.I64s = make([]int64, n)
	case dtype.F32:
		a.F32s = make([]float32, n)
	case dtype.F64:
		a.F64s = make([]float64, n)
	case dtype.C64:
		a.C64s = make([]complex64, n)
	case dtype.C128:
		a.C128s = make([]complex128, n)
	case dtype.Bool:
		a.Bools = make([]bool, n)
	case dtype.BigInt:
		a.Bigs = make([]*big.Int, n)
		for i := range a.Bigs {
			a.Bigs[i] = new(big.Int)
		}
	case dtype.Str:
		a.Strs = make([]string, n)
	default:
		return nil, errors.Errorf("array.New: cannot allocate storage for dtype %s", at.DType)
	}
	return a, nil
}

// Len returns the number of elements (lanes) in the array.
func (a *Array) Len() int { return a.AT.Size() }

// DType returns the array's element type.
func (a *Array) DType() dtype.DType { return a.AT.DType }

// chunkSize is the data-parallel loop's granularity (spec.md §5), tuned by
// server.Config.ChunkSize via SetChunkSize. It is a process-wide
// concurrency knob in the same spirit as runtime.GOMAXPROCS, not
// request-scoped state, so it is held as a package-level atomic rather
// than threaded through every kernel call. 0 means "unset": fall back to
// splitting n evenly across chunkWorkers goroutines.
var chunkSize atomic.Int64

// SetChunkSize overrides the per-goroutine chunk size ForEach splits work
// into. n <= 0 restores the default worker-count-derived chunking.
func SetChunkSize(n int) {
	chunkSize.Store(int64(n))
}

// chunkWorkers caps the number of goroutines used by ForEach; it follows
// the same runtime.GOMAXPROCS-sized worker pool idiom used across the
// gonum corpus's concurrent finite-difference helpers.
func chunkWorkers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

// ForEach runs fn(i) for every lane i in [0, n) using a fixed pool of
// goroutines, returning only once every lane has been processed. Per
// spec.md §5, lanes are assumed independent: fn must not depend on the
// order in which lanes are visited, nor on other lanes having already run.
func ForEach(n int, fn func(i int)) {
	if n == 0 {
		return
	}

	var chunk int
	if cs := int(chunkSize.Load()); cs > 0 {
		chunk = cs
		if chunk > n {
			chunk = n
		}
	} else {
		workers := chunkWorkers(n)
		if workers == 1 {
			for i := 0; i < n; i++ {
				fn(i)
			}
			return
		}
		chunk = (n + workers - 1) / workers
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
