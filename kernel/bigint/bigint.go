// Package bigint implements the arbitrary-precision-integer elementwise
// kernel (spec.md §4.5). It operates directly on []*big.Int slices rather
// than through the operand interface in the parent kernel package, since
// big.Int values are mutated in place and have no fixed-width Set*/Get*
// accessor pair.
//
// The dispatch-by-op-category structure, and the habit of writing each
// category as a small closure over a *big.Int method value, follows
// value/binary.go's binaryBigIntOp / bigIntExp pattern in the ivy
// calculator (see other_examples in the retrieval pack).
package bigint

import (
	"math/big"

	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/jeremiah-corrado/arkouda/operator"
)

const routine = "binOpBig"

// Operand abstracts over a BigInt array lane and an int/bool/BigInt scalar
// or array lane on the right-hand side, matching the rt options spec.md
// §4.5 allows per category.
type Operand interface {
	DType() dtype.DType
	GetBigInt(i int) *big.Int
}

// ArrayOperand adapts *array.Array (of any dtype) to Operand: fixed-width
// integer and bool lanes are widened to *big.Int per access.
type ArrayOperand struct{ A *array.Array }

func (o ArrayOperand) DType() dtype.DType { return o.A.DType() }

func (o ArrayOperand) GetBigInt(i int) *big.Int {
	if o.A.DType() == dtype.BigInt {
		return o.A.Bigs[i]
	}
	if o.A.DType() == dtype.Bool {
		if o.A.GetBool(i) {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	if dtype.IsUnsigned(o.A.DType()) {
		return new(big.Int).SetUint64(o.A.GetUint(i))
	}
	return big.NewInt(o.A.GetInt(i))
}

// ScalarOperand adapts a single loop-invariant *big.Int to Operand.
type ScalarOperand struct {
	DT dtype.DType
	V  *big.Int
}

func (o ScalarOperand) DType() dtype.DType  { return o.DT }
func (o ScalarOperand) GetBigInt(int) *big.Int { return o.V }

func rtAllowed(rt dtype.DType, allowBool bool) bool {
	if rt == dtype.BigInt {
		return true
	}
	if dtype.IsInteger(rt) {
		return true
	}
	if allowBool && rt == dtype.Bool {
		return true
	}
	return false
}

// BinOp evaluates `l op r` into out (element type BigInt), per spec.md
// §4.5. maxBits selects fixed-width wraparound: -1 means unbounded, any
// n >= 0 means hasCap with mask = (1<<n) - 1.
func BinOp(l, r Operand, out *array.Array, n int, op string, maxBits int) error {
	if out.DType() != dtype.BigInt {
		return kernelerr.UnrecognizedType(routine, l.DType().String(), r.DType().String())
	}
	if dtype.IsReal(l.DType()) || dtype.IsReal(r.DType()) || dtype.IsComplex(l.DType()) || dtype.IsComplex(r.DType()) {
		return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
	}

	hasCap := maxBits >= 0
	var mask *big.Int
	if hasCap {
		mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(maxBits)), big.NewInt(1))
	}
	applyMask := func(z *big.Int) {
		if hasCap {
			z.And(z, mask)
		}
	}

	switch operator.CategoryOf(op) {
	case operator.BitwiseLogic:
		if l.DType() != dtype.BigInt || r.DType() != dtype.BigInt {
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		array.ForEach(n, func(i int) {
			z := out.Bigs[i]
			a, b := l.GetBigInt(i), r.GetBigInt(i)
			switch op {
			case "|":
				z.Or(a, b)
			case "&":
				z.And(a, b)
			case "^":
				z.Xor(a, b)
			}
			applyMask(z)
		})
		return nil

	case operator.TrueDivision:
		if l.DType() != dtype.BigInt || r.DType() != dtype.BigInt {
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		array.ForEach(n, func(i int) {
			b := r.GetBigInt(i)
			z := out.Bigs[i]
			if b.Sign() == 0 {
				// Zero divisor is a defined sentinel, not an error, matching
				// the `//` and `%` cases below (spec.md §7).
				z.SetInt64(0)
				return
			}
			z.Quo(l.GetBigInt(i), b)
			applyMask(z)
		})
		return nil

	case operator.BitwiseShift:
		if l.DType() != dtype.BigInt || !rtAllowed(r.DType(), false) {
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		array.ForEach(n, func(i int) {
			z := out.Bigs[i]
			s := r.GetBigInt(i)
			if s.Sign() < 0 || (hasCap && s.Cmp(big.NewInt(int64(maxBits))) >= 0) {
				z.SetInt64(0)
				return
			}
			shiftCount := uint(s.Int64())
			if op == "<<" {
				z.Lsh(l.GetBigInt(i), shiftCount)
			} else {
				// rightShiftEq: big.Int.Rsh is an arithmetic shift that
				// preserves sign for negative operands and behaves like a
				// logical shift for non-negative ones, matching spec.md.
				z.Rsh(l.GetBigInt(i), shiftCount)
			}
			applyMask(z)
		})
		return nil

	case operator.BitwiseRot:
		if l.DType() != dtype.BigInt || !rtAllowed(r.DType(), false) {
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		if !hasCap {
			return kernelerr.RotationWithoutWidthError()
		}
		bits := uint(maxBits)
		array.ForEach(n, func(i int) {
			a := new(big.Int).And(l.GetBigInt(i), mask)
			s := uint(new(big.Int).Mod(r.GetBigInt(i), big.NewInt(int64(bits))).Int64())
			z := out.Bigs[i]
			if s == 0 {
				z.Set(a)
				applyMask(z)
				return
			}
			lo := new(big.Int).Lsh(a, s)
			hi := new(big.Int).Rsh(a, bits-s)
			if op == "<<<" {
				z.Or(lo, hi)
			} else {
				lo2 := new(big.Int).Rsh(a, s)
				hi2 := new(big.Int).Lsh(a, bits-s)
				z.Or(lo2, hi2)
			}
			applyMask(z)
		})
		return nil

	case operator.FancyArithmetic:
		if l.DType() != dtype.BigInt || !rtAllowed(r.DType(), false) {
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		switch op {
		case "//":
			array.ForEach(n, func(i int) {
				b := r.GetBigInt(i)
				z := out.Bigs[i]
				if b.Sign() == 0 {
					z.SetInt64(0)
					return
				}
				z.Div(l.GetBigInt(i), b)
				applyMask(z)
			})
			return nil
		case "%":
			array.ForEach(n, func(i int) {
				b := r.GetBigInt(i)
				z := out.Bigs[i]
				if b.Sign() == 0 {
					z.SetInt64(0)
					return
				}
				// Mod rather than Rem: Go's big.Int.Mod is already the
				// Euclidean (non-negative) floored modulus, matching
				// spec.md's "floored-modulo, not naive %" requirement.
				z.Mod(l.GetBigInt(i), b)
				applyMask(z)
			})
			return nil
		case "**":
			for i := 0; i < n; i++ {
				if r.GetBigInt(i).Sign() < 0 {
					return kernelerr.NegativeExponentError(dtype.BigInt.String())
				}
			}
			array.ForEach(n, func(i int) {
				z := out.Bigs[i]
				exp := r.GetBigInt(i)
				if hasCap {
					modulus := new(big.Int).Add(mask, big.NewInt(1))
					z.Exp(l.GetBigInt(i), exp, modulus)
				} else {
					z.Exp(l.GetBigInt(i), exp, nil)
				}
				applyMask(z)
			})
			return nil
		}
		return kernelerr.InvalidOperator(op)

	case operator.BasicArithmetic:
		// spec.md §4.5 allows lt=BigInt, rt ∈ {BigInt, int, bool} "or
		// symmetrically" -- either side may be the BigInt operand, so long
		// as the other is BigInt/int/bool. GetBigInt already widens a
		// non-BigInt operand on access, regardless of which side it's on.
		switch {
		case l.DType() == dtype.BigInt:
			if !rtAllowed(r.DType(), true) {
				return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
			}
		case r.DType() == dtype.BigInt:
			if !rtAllowed(l.DType(), true) {
				return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
			}
		default:
			return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
		}
		array.ForEach(n, func(i int) {
			z := out.Bigs[i]
			a, b := l.GetBigInt(i), r.GetBigInt(i)
			switch op {
			case "+":
				z.Add(a, b)
			case "-":
				z.Sub(a, b)
			case "*":
				z.Mul(a, b)
			}
			applyMask(z)
		})
		return nil

	default:
		return kernelerr.InvalidOperator(op)
	}
}

// Cmp evaluates `l op r` into a Bool array out, per binOpBigCmp
// (spec.md §4.5): operands must not be real or complex, and no masking
// is applied to a comparison result.
func Cmp(l, r Operand, out *array.Array, n int, op string) error {
	if out.DType() != dtype.Bool {
		return kernelerr.UnrecognizedType(routine, l.DType().String(), r.DType().String())
	}
	if dtype.IsReal(l.DType()) || dtype.IsReal(r.DType()) || dtype.IsComplex(l.DType()) || dtype.IsComplex(r.DType()) {
		return kernelerr.NotImplemented(routine, l.DType().String(), op, r.DType().String())
	}
	array.ForEach(n, func(i int) {
		c := l.GetBigInt(i).Cmp(r.GetBigInt(i))
		var v bool
		switch op {
		case "==":
			v = c == 0
		case "!=":
			v = c != 0
		case "<":
			v = c < 0
		case ">":
			v = c > 0
		case "<=":
			v = c <= 0
		case ">=":
			v = c >= 0
		}
		out.SetBool(i, v)
	})
	return nil
}

// Init copies l into out (widening to BigInt if l.DType() != BigInt), per
// spec.md §4.5's "Initialization" step. Callers that build out's storage
// fresh (zero-valued *big.Int per lane) typically don't need this directly;
// it exists for compound-assign (kernel.OpEqVV/OpEqVS) where out IS l.
func Init(l Operand, out *array.Array, n int) {
	array.ForEach(n, func(i int) {
		out.Bigs[i].Set(l.GetBigInt(i))
	})
}
