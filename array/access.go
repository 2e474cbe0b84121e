package array

import (
	"math/big"

	"github.com/jeremiah-corrado/arkouda/dtype"
)

// GetReal reads lane i as a float64, converting from the array's native
// storage type. Complex lanes yield their real part only, matching
// spec.md §4.4's comparison rule ("compare only the real parts").
func (a *Array) GetReal(i int) float64 {
	switch a.AT.DType {
	case dtype.U8:
		return float64(a.U8[i])
	case dtype.U16:
		return float64(a.U16s[i])
	case dtype.U32:
		return float64(a.U32s[i])
	case dtype.U64:
		return float64(a.U64s[i])
	case dtype.I8:
		return float64(a.I8s[i])
	case dtype.I16:
		return float64(a.I16s[i])
	case dtype.I32:
		return float64(a.I32s[i])
	case dtype.I64:
		return float64(a.I64s[i])
	case dtype.F32:
		return float64(a.F32s[i])
	case dtype.F64:
		return a.F64s[i]
	case dtype.C64:
		return real(complex128(a.C64s[i]))
	case dtype.C128:
		return real(a.C128s[i])
	case dtype.Bool:
		if a.Bools[i] {
			return 1
		}
		return 0
	case dtype.BigInt:
		f, _ := new(big.Float).SetInt(a.Bigs[i]).Float64()
		return f
	}
	return 0
}

// SetReal writes v into lane i, narrowing to the array's native storage
// type via a plain Go conversion (which truncates, matching NumPy's cast
// semantics for `et` results).
func (a *Array) SetReal(i int, v float64) {
	switch a.AT.DType {
	case dtype.U8:
		a.U8[i] = uint8(v)
	case dtype.U16:
		a.U16s[i] = uint16(v)
	case dtype.U32:
		a.U32s[i] = uint32(v)
	case dtype.U64:
		a.U64s[i] = uint64(v)
	case dtype.I8:
		a.I8s[i] = int8(v)
	case dtype.I16:
		a.I16s[i] = int16(v)
	case dtype.I32:
		a.I32s[i] = int32(v)
	case dtype.I64:
		a.I64s[i] = int64(v)
	case dtype.F32:
		a.F32s[i] = float32(v)
	case dtype.F64:
		a.F64s[i] = v
	case dtype.C64:
		a.C64s[i] = complex(float32(v), 0)
	case dtype.C128:
		a.C128s[i] = complex(v, 0)
	case dtype.Bool:
		a.Bools[i] = v != 0
	}
}

// GetInt reads lane i as an int64.
func (a *Array) GetInt(i int) int64 {
	switch a.AT.DType {
	case dtype.I8:
		return int64(a.I8s[i])
	case dtype.I16:
		return int64(a.I16s[i])
	case dtype.I32:
		return int64(a.I32s[i])
	case dtype.I64:
		return a.I64s[i]
	case dtype.Bool:
		if a.Bools[i] {
			return 1
		}
		return 0
	default:
		return int64(a.GetReal(i))
	}
}

// SetInt writes v into lane i, narrowing to the array's native integer type.
func (a *Array) SetInt(i int, v int64) {
	switch a.AT.DType {
	case dtype.I8:
		a.I8s[i] = int8(v)
	case dtype.I16:
		a.I16s[i] = int16(v)
	case dtype.I32:
		a.I32s[i] = int32(v)
	case dtype.I64:
		a.I64s[i] = v
	case dtype.Bool:
		a.Bools[i] = v != 0
	default:
		a.SetReal(i, float64(v))
	}
}

// GetUint reads lane i as a uint64.
func (a *Array) GetUint(i int) uint64 {
	switch a.AT.DType {
	case dtype.U8:
		return uint64(a.U8[i])
	case dtype.U16:
		return uint64(a.U16s[i])
	case dtype.U32:
		return uint64(a.U32s[i])
	case dtype.U64:
		return a.U64s[i]
	case dtype.Bool:
		if a.Bools[i] {
			return 1
		}
		return 0
	default:
		return uint64(a.GetInt(i))
	}
}

// SetUint writes v into lane i, narrowing to the array's native unsigned type.
func (a *Array) SetUint(i int, v uint64) {
	switch a.AT.DType {
	case dtype.U8:
		a.U8[i] = uint8(v)
	case dtype.U16:
		a.U16s[i] = uint16(v)
	case dtype.U32:
		a.U32s[i] = uint32(v)
	case dtype.U64:
		a.U64s[i] = v
	default:
		a.SetInt(i, int64(v))
	}
}

// GetComplex reads lane i as a complex128, widening real/integer/bool
// lanes with a zero imaginary part.
func (a *Array) GetComplex(i int) complex128 {
	switch a.AT.DType {
	case dtype.C64:
		return complex128(a.C64s[i])
	case dtype.C128:
		return a.C128s[i]
	default:
		return complex(a.GetReal(i), 0)
	}
}

// SetComplex writes v into lane i, narrowing to the array's native complex type.
func (a *Array) SetComplex(i int, v complex128) {
	switch a.AT.DType {
	case dtype.C64:
		a.C64s[i] = complex64(v)
	case dtype.C128:
		a.C128s[i] = v
	default:
		a.SetReal(i, real(v))
	}
}

// GetBool reads lane i as a bool (non-zero is true).
func (a *Array) GetBool(i int) bool {
	if a.AT.DType == dtype.Bool {
		return a.Bools[i]
	}
	return a.GetReal(i) != 0
}

// SetBool writes v into lane i of a Bool array.
func (a *Array) SetBool(i int, v bool) {
	a.Bools[i] = v
}
