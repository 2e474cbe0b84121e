// Package scalar implements the tagged scalar value union consumed by the
// array-scalar and scalar-array kernel variants. A Scalar is produced from
// parsed request arguments (an already-decoded `value` + `dtype` pair) and
// exposes the narrow set of typed accessors the kernels need, following the
// same pattern as the teacher repo's atype.ConvertTo generic conversion
// helper.
package scalar

import (
	"math/big"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Kind identifies which variant of the tagged union is populated.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindReal
	KindBool
	KindBigInt
)

// Scalar is a tagged union carrying one of {int64, uint64, float64, bool,
// bigint}, per spec.md §3. The DType field records the caller-declared
// type tag the scalar was parsed under (which may be narrower than the
// storage kind, e.g. DType=I32 while Kind=KindInt).
type Scalar struct {
	DType dtype.DType
	kind  Kind

	i int64
	u uint64
	r float64
	b bool
	z *big.Int
}

// FromInt builds a Scalar of integer kind tagged dt.
func FromInt(v int64, dt dtype.DType) Scalar { return Scalar{DType: dt, kind: KindInt, i: v} }

// FromUint builds a Scalar of unsigned-integer kind tagged dt.
func FromUint(v uint64, dt dtype.DType) Scalar { return Scalar{DType: dt, kind: KindUint, u: v} }

// FromReal builds a Scalar of real kind tagged dt.
func FromReal(v float64, dt dtype.DType) Scalar { return Scalar{DType: dt, kind: KindReal, r: v} }

// FromBool builds a Scalar of boolean kind.
func FromBool(v bool) Scalar { return Scalar{DType: dtype.Bool, kind: KindBool, b: v} }

// FromBigInt builds a Scalar of big-integer kind.
func FromBigInt(v *big.Int) Scalar { return Scalar{DType: dtype.BigInt, kind: KindBigInt, z: new(big.Int).Set(v)} }

// FromFloat16 parses a float16-tagged literal. It is wired in for scalar
// literals declared as `dtype=float16` (an accepted input coercion outside
// spec.md's closed 15-tag DType catalog, see SPEC_FULL.md §3); it always
// returns a KindReal Scalar tagged F32, since the kernels operate on
// float32/float64 only.
func FromFloat16(bits uint16) Scalar {
	f := float16.Frombits(bits)
	return Scalar{DType: dtype.F32, kind: KindReal, r: float64(f.Float32())}
}

// Kind reports which accessor is valid to call without conversion.
func (s Scalar) Kind() Kind { return s.kind }

// AsInt returns the scalar as an int64, converting from any other kind.
func (s Scalar) AsInt() int64 {
	switch s.kind {
	case KindInt:
		return s.i
	case KindUint:
		return int64(s.u)
	case KindReal:
		return int64(s.r)
	case KindBool:
		if s.b {
			return 1
		}
		return 0
	case KindBigInt:
		return s.z.Int64()
	}
	return 0
}

// AsUint returns the scalar as a uint64, converting from any other kind.
func (s Scalar) AsUint() uint64 {
	switch s.kind {
	case KindInt:
		return uint64(s.i)
	case KindUint:
		return s.u
	case KindReal:
		return uint64(s.r)
	case KindBool:
		if s.b {
			return 1
		}
		return 0
	case KindBigInt:
		return s.z.Uint64()
	}
	return 0
}

// AsReal returns the scalar as a float64, converting from any other kind.
func (s Scalar) AsReal() float64 {
	switch s.kind {
	case KindInt:
		return float64(s.i)
	case KindUint:
		return float64(s.u)
	case KindReal:
		return s.r
	case KindBool:
		if s.b {
			return 1
		}
		return 0
	case KindBigInt:
		f := new(big.Float).SetInt(s.z)
		v, _ := f.Float64()
		return v
	}
	return 0
}

// AsBool returns the scalar's truthiness, following the same convention as
// the teacher corpus's ivy toBool helper: zero is false, anything else true.
func (s Scalar) AsBool() bool {
	switch s.kind {
	case KindInt:
		return s.i != 0
	case KindUint:
		return s.u != 0
	case KindReal:
		return s.r != 0
	case KindBool:
		return s.b
	case KindBigInt:
		return s.z.Sign() != 0
	}
	return false
}

// AsBigInt returns the scalar widened to an arbitrary-precision integer.
// It returns an error if the scalar is not of an integer or boolean kind
// (real and complex scalars cannot be losslessly widened to BigInt).
func (s Scalar) AsBigInt() (*big.Int, error) {
	switch s.kind {
	case KindInt:
		return big.NewInt(s.i), nil
	case KindUint:
		return new(big.Int).SetUint64(s.u), nil
	case KindBool:
		return big.NewInt(s.AsInt()), nil
	case KindBigInt:
		return new(big.Int).Set(s.z), nil
	default:
		return nil, errors.Errorf("scalar.AsBigInt: cannot widen scalar of kind %v to BigInt", s.kind)
	}
}
