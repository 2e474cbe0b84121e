// Package promotion implements the NumPy-compatible result-type lattice used
// to determine the element type of a binary operation from its operand
// types. It is pure and has no dependency on array storage.
package promotion

import "github.com/jeremiah-corrado/arkouda/dtype"

// promoteToNextSigned returns the next-widest signed (or float, when the
// input can no longer widen as an integer) type for d, per spec.md §4.2.
func promoteToNextSigned(d dtype.DType) dtype.DType {
	switch d {
	case dtype.Bool:
		return dtype.I8
	case dtype.U8:
		return dtype.I16
	case dtype.U16:
		return dtype.I32
	case dtype.U32:
		return dtype.I64
	case dtype.U64:
		return dtype.F64
	case dtype.I8:
		return dtype.I16
	case dtype.I16:
		return dtype.I32
	case dtype.I32:
		return dtype.I64
	case dtype.I64:
		return dtype.F64
	case dtype.F32:
		return dtype.F64
	case dtype.F64:
		return dtype.F64
	case dtype.C64:
		return dtype.C128
	case dtype.C128:
		return dtype.C128
	default:
		return d
	}
}

// promoteToNextFloat returns the float type wide enough to hold d without
// loss of the integer range it could represent, per spec.md §4.2.
func promoteToNextFloat(d dtype.DType) dtype.DType {
	switch d {
	case dtype.Bool, dtype.U8, dtype.U16, dtype.I8, dtype.I16:
		return dtype.F32
	case dtype.U32, dtype.U64, dtype.I32, dtype.I64, dtype.F32, dtype.F64:
		return dtype.F64
	case dtype.C64, dtype.C128:
		return dtype.C128
	default:
		return dtype.F64
	}
}

// promoteToNextComplex returns the complex type wide enough to hold d.
func promoteToNextComplex(d dtype.DType) dtype.DType {
	switch d {
	case dtype.Bool, dtype.U8, dtype.U16, dtype.I8, dtype.I16, dtype.F32:
		return dtype.C64
	case dtype.U32, dtype.U64, dtype.I32, dtype.I64, dtype.F64, dtype.C64:
		return dtype.C128
	case dtype.C128:
		return dtype.C128
	default:
		return dtype.C128
	}
}

// CommonDType computes the element type of `a op b` under NumPy's
// promotion rules (spec.md §4.2). When specialBool is true, (Bool,Bool)
// promotes to I8 instead of Bool -- used only by the fancyArithmetic
// category, where booleans must behave as integers under `// % **`.
func CommonDType(a, b dtype.DType, specialBool bool) dtype.DType {
	ka, kb := dtype.Kind(a), dtype.Kind(b)

	switch {
	case ka == dtype.Integer && kb == dtype.Integer:
		if dtype.IsSigned(a) == dtype.IsSigned(b) {
			return dtype.MaxDType(a, b)
		}
		// Signs differ: widen the unsigned side to the next signed type,
		// then take the max against the signed side.
		var u, s dtype.DType
		if dtype.IsUnsigned(a) {
			u, s = a, b
		} else {
			u, s = b, a
		}
		return dtype.MaxDType(promoteToNextSigned(u), s)

	case ka == dtype.Integer && kb == dtype.Float:
		return dtype.MaxDType(promoteToNextFloat(a), b)
	case ka == dtype.Float && kb == dtype.Integer:
		return dtype.MaxDType(promoteToNextFloat(b), a)

	case ka == dtype.Integer && kb == dtype.Complex:
		return dtype.MaxDType(promoteToNextComplex(a), b)
	case ka == dtype.Complex && kb == dtype.Integer:
		return dtype.MaxDType(promoteToNextComplex(b), a)

	case ka == dtype.Float && kb == dtype.Float:
		return dtype.MaxDType(a, b)

	case ka == dtype.Float && kb == dtype.Complex:
		return dtype.MaxDType(promoteToNextComplex(a), b)
	case ka == dtype.Complex && kb == dtype.Float:
		return dtype.MaxDType(promoteToNextComplex(b), a)

	case ka == dtype.Complex && kb == dtype.Complex:
		return dtype.MaxDType(a, b)

	default:
		// One or both operands are Bool (or Other, treated the same way).
		if ka == dtype.BoolKind && kb == dtype.BoolKind {
			if specialBool {
				return dtype.I8
			}
			return dtype.Bool
		}
		if ka == dtype.BoolKind {
			return b
		}
		return a
	}
}

// DivDType computes the element type of `a / b` (true division), which
// differs from CommonDType only in the handling of integer/integer and
// integer/float pairs, per spec.md §4.2.
func DivDType(a, b dtype.DType) dtype.DType {
	ka, kb := dtype.Kind(a), dtype.Kind(b)

	switch {
	case ka == dtype.Integer && kb == dtype.Integer:
		return dtype.F64

	case ka == dtype.Integer && kb == dtype.Float:
		if dtype.ByteSize(a) < 4 && b == dtype.F32 {
			return dtype.F32
		}
		return dtype.F64
	case ka == dtype.Float && kb == dtype.Integer:
		if dtype.ByteSize(b) < 4 && a == dtype.F32 {
			return dtype.F32
		}
		return dtype.F64

	case ka == dtype.BoolKind && kb == dtype.Float:
		return b
	case ka == dtype.Float && kb == dtype.BoolKind:
		return a
	case ka == dtype.BoolKind && kb == dtype.Complex:
		return b
	case ka == dtype.Complex && kb == dtype.BoolKind:
		return a

	case (ka == dtype.BoolKind && kb == dtype.Integer) || (ka == dtype.Integer && kb == dtype.BoolKind):
		// True division always widens integer operands to a real, and Bool
		// behaves like an integer of byte-size 1 for this purpose.
		return dtype.F64
	case ka == dtype.BoolKind && kb == dtype.BoolKind:
		return dtype.F64

	default:
		// Float/Float, Complex/Complex, Float/Complex, Complex/Float, and
		// Int/Complex combinations are not singled out by spec.md's
		// divDType table, so they fall through to the ordinary
		// commonDType lattice unchanged.
		return CommonDType(a, b, false)
	}
}

// MaxDType re-exports dtype.MaxDType for callers that only import promotion.
func MaxDType(a, b dtype.DType) dtype.DType { return dtype.MaxDType(a, b) }

// PromoteToNextSigned is the exported form of promoteToNextSigned.
func PromoteToNextSigned(d dtype.DType) dtype.DType { return promoteToNextSigned(d) }

// PromoteToNextFloat is the exported form of promoteToNextFloat.
func PromoteToNextFloat(d dtype.DType) dtype.DType { return promoteToNextFloat(d) }

// PromoteToNextComplex is the exported form of promoteToNextComplex.
func PromoteToNextComplex(d dtype.DType) dtype.DType { return promoteToNextComplex(d) }
