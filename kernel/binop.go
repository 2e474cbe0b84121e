package kernel

import (
	"math"
	"math/cmplx"

	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/jeremiah-corrado/arkouda/operator"
	"github.com/jeremiah-corrado/arkouda/promotion"
	"github.com/jeremiah-corrado/arkouda/scalar"
)

const routine = "binOp"

// BinOpVV evaluates `l op r` elementwise into out, where l, r, and out are
// all arrays of matching shape (spec.md §4.4). It returns nil on success,
// or a *kernelerr.Error describing why the (lt, rt, et, op) quadruple could
// not be evaluated.
func BinOpVV(l, r, out *array.Array, op string) error {
	if l.Len() != r.Len() || l.Len() != out.Len() {
		return kernelerr.Shape("binOpvv: operand/result lane counts differ")
	}
	return binOp(l.DType(), r.DType(), arrayOperand{l}, arrayOperand{r}, out, l.Len(), op)
}

// BinOpVS evaluates `l op s` elementwise into out, broadcasting the scalar
// across every lane (spec.md §4.6).
func BinOpVS(l *array.Array, s scalar.Scalar, out *array.Array, op string) error {
	if l.Len() != out.Len() {
		return kernelerr.Shape("binOpvs: operand/result lane counts differ")
	}
	return binOp(l.DType(), s.DType, arrayOperand{l}, scalarOperand{s}, out, l.Len(), op)
}

// BinOpSV evaluates `s op r` elementwise into out, broadcasting the scalar
// across every lane (spec.md §4.6). The result shape equals r's shape.
func BinOpSV(s scalar.Scalar, r *array.Array, out *array.Array, op string) error {
	if r.Len() != out.Len() {
		return kernelerr.Shape("binOpsv: operand/result lane counts differ")
	}
	return binOp(s.DType, r.DType(), scalarOperand{s}, arrayOperand{r}, out, r.Len(), op)
}

// binOp is the monomorphic-per-call engine described in spec.md §9: it
// resolves the category once from op, then fans out to one of the
// per-category loops below. Every loop reads both operands through the
// operand interface so the same code serves the vv, vs, and sv variants.
func binOp(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	cat := operator.CategoryOf(op)
	switch cat {
	case operator.BitwiseLogic:
		return binOpBitwiseLogic(lt, rt, l, r, out, n, op)
	case operator.BitwiseShift:
		return binOpBitwiseShift(lt, rt, l, r, out, n, op)
	case operator.BitwiseRot:
		return binOpBitwiseRot(lt, rt, l, r, out, n, op)
	case operator.BasicArithmetic:
		return binOpBasicArithmetic(lt, rt, l, r, out, n, op)
	case operator.FancyArithmetic:
		return binOpFancyArithmetic(lt, rt, l, r, out, n, op)
	case operator.TrueDivision:
		return binOpTrueDivision(lt, rt, l, r, out, n)
	default:
		return kernelerr.InvalidOperator(op)
	}
}

func isIntegerOrBool(d dtype.DType) bool {
	k := dtype.Kind(d)
	return k == dtype.Integer || k == dtype.BoolKind
}

// --- bitwiseLogic: | & ^ ---

func binOpBitwiseLogic(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	if !isIntegerOrBool(lt) || !isIntegerOrBool(rt) {
		return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
	}
	want := promotion.CommonDType(lt, rt, false)
	if want != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	if out.DType() == dtype.Bool {
		array.ForEach(n, func(i int) {
			a, b := l.GetBool(i), r.GetBool(i)
			var v bool
			switch op {
			case "|":
				v = a || b
			case "&":
				v = a && b
			case "^":
				v = a != b
			}
			out.SetBool(i, v)
		})
		return nil
	}
	if dtype.IsUnsigned(out.DType()) {
		array.ForEach(n, func(i int) {
			a, b := l.GetUint(i), r.GetUint(i)
			out.SetUint(i, applyUintBitwise(op, a, b))
		})
		return nil
	}
	array.ForEach(n, func(i int) {
		a, b := l.GetInt(i), r.GetInt(i)
		out.SetInt(i, applyIntBitwise(op, a, b))
	})
	return nil
}

func applyIntBitwise(op string, a, b int64) int64 {
	switch op {
	case "|":
		return a | b
	case "&":
		return a & b
	case "^":
		return a ^ b
	}
	return 0
}

func applyUintBitwise(op string, a, b uint64) uint64 {
	switch op {
	case "|":
		return a | b
	case "&":
		return a & b
	case "^":
		return a ^ b
	}
	return 0
}

// --- bitwiseShift: << >> ---

func binOpBitwiseShift(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	if dtype.IsReal(lt) || dtype.IsReal(rt) || dtype.IsComplex(lt) || dtype.IsComplex(rt) {
		return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
	}
	// Unlike the general commonType lattice, shift widens a lone Bool
	// operand to I8 before resolving et -- not just the (Bool,Bool) pair.
	// See the REDESIGN FLAG on this rule in DESIGN.md.
	wlt, wrt := lt, rt
	if wlt == dtype.Bool {
		wlt = dtype.I8
	}
	if wrt == dtype.Bool {
		wrt = dtype.I8
	}
	want := promotion.CommonDType(wlt, wrt, true)
	if want != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	if dtype.IsUnsigned(out.DType()) {
		array.ForEach(n, func(i int) {
			shiftAmt := r.GetInt(i)
			a := l.GetUint(i)
			if shiftAmt < 0 || shiftAmt >= 64 {
				out.SetUint(i, 0)
				return
			}
			if op == "<<" {
				out.SetUint(i, a<<uint(shiftAmt))
			} else {
				out.SetUint(i, a>>uint(shiftAmt))
			}
		})
		return nil
	}
	array.ForEach(n, func(i int) {
		shiftAmt := r.GetInt(i)
		a := l.GetInt(i)
		if shiftAmt < 0 || shiftAmt >= 64 {
			out.SetInt(i, 0)
			return
		}
		if op == "<<" {
			out.SetInt(i, a<<uint(shiftAmt))
		} else {
			out.SetInt(i, a>>uint(shiftAmt))
		}
	})
	return nil
}

// --- bitwiseRot: <<< >>> ---

func binOpBitwiseRot(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	if !isIntegerOrBool(lt) || !isIntegerOrBool(rt) {
		return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
	}
	want := promotion.CommonDType(lt, rt, false)
	if want != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	bits := uint(dtype.ByteSize(out.DType()) * 8)
	if dtype.IsUnsigned(out.DType()) {
		array.ForEach(n, func(i int) {
			a := l.GetUint(i)
			s := uint(((r.GetInt(i))%int64(bits) + int64(bits)) % int64(bits))
			out.SetUint(i, rotateUint(op, a, s, bits))
		})
		return nil
	}
	array.ForEach(n, func(i int) {
		a := uint64(l.GetInt(i))
		s := uint(((r.GetInt(i))%int64(bits) + int64(bits)) % int64(bits))
		v := rotateUint(op, a, s, bits)
		out.SetInt(i, int64(v))
	})
	return nil
}

func rotateUint(op string, a uint64, s, bits uint) uint64 {
	mask := uint64(1)<<bits - 1
	a &= mask
	if s == 0 {
		return a
	}
	if op == "<<<" {
		return ((a << s) | (a >> (bits - s))) & mask
	}
	return ((a >> s) | (a << (bits - s))) & mask
}

// --- comparison: == != < > <= >= ---

func BinOpCmpVV(l, r *array.Array, out *array.Array, op string) error {
	return binOpComparison(l.DType(), r.DType(), arrayOperand{l}, arrayOperand{r}, out, l.Len(), op)
}

func BinOpCmpVS(l *array.Array, s scalar.Scalar, out *array.Array, op string) error {
	return binOpComparison(l.DType(), s.DType, arrayOperand{l}, scalarOperand{s}, out, l.Len(), op)
}

func BinOpCmpSV(s scalar.Scalar, r *array.Array, out *array.Array, op string) error {
	return binOpComparison(s.DType, r.DType(), scalarOperand{s}, arrayOperand{r}, out, r.Len(), op)
}

func binOpComparison(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	if out.DType() != dtype.Bool {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	cmp := func(a, b float64) bool {
		switch op {
		case "==":
			return a == b
		case "!=":
			return a != b
		case "<":
			return a < b
		case ">":
			return a > b
		case "<=":
			return a <= b
		case ">=":
			return a >= b
		}
		return false
	}
	array.ForEach(n, func(i int) {
		// Complex operands compare only their real part, per spec.md §4.4.
		out.SetBool(i, cmp(l.GetReal(i), r.GetReal(i)))
	})
	return nil
}

// --- basicArithmetic: + - * ---

func binOpBasicArithmetic(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	if lt == dtype.Bool && rt == dtype.Bool {
		return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
	}
	et := promotion.CommonDType(lt, rt, false)
	if et != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	switch dtype.Kind(et) {
	case dtype.Complex:
		array.ForEach(n, func(i int) {
			a, b := l.GetComplex(i), r.GetComplex(i)
			out.SetComplex(i, applyComplexArith(op, a, b))
		})
	case dtype.Float:
		array.ForEach(n, func(i int) {
			a, b := l.GetReal(i), r.GetReal(i)
			out.SetReal(i, applyRealArith(op, a, b))
		})
	default:
		if dtype.IsUnsigned(et) {
			array.ForEach(n, func(i int) {
				a, b := l.GetUint(i), r.GetUint(i)
				out.SetUint(i, applyUintArith(op, a, b))
			})
		} else {
			array.ForEach(n, func(i int) {
				a, b := l.GetInt(i), r.GetInt(i)
				out.SetInt(i, applyIntArith(op, a, b))
			})
		}
	}
	return nil
}

func applyIntArith(op string, a, b int64) int64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return 0
}

func applyUintArith(op string, a, b uint64) uint64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return 0
}

func applyRealArith(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return 0
}

func applyComplexArith(op string, a, b complex128) complex128 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return 0
}

// --- fancyArithmetic: // % ** ---

func binOpFancyArithmetic(lt, rt dtype.DType, l, r operand, out *array.Array, n int, op string) error {
	et := promotion.CommonDType(lt, rt, true)
	if et != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}

	// signsMixed is computed from the *operand* types, not et: a mixed
	// unsigned/signed integer pair can still promote to an integer et
	// (e.g. U8,I8 -> I16), so this must not be folded into a check on
	// et's kind alone.
	bothIntOperands := dtype.Kind(lt) == dtype.Integer && dtype.Kind(rt) == dtype.Integer
	signsMixed := bothIntOperands && dtype.IsSigned(lt) != dtype.IsSigned(rt)
	homogeneousInt := dtype.Kind(et) == dtype.Integer && !signsMixed

	switch {
	case dtype.IsComplex(et):
		if op != "**" {
			return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
		}
		array.ForEach(n, func(i int) {
			out.SetComplex(i, cmplx.Pow(l.GetComplex(i), r.GetComplex(i)))
		})
		return nil

	case signsMixed:
		if op == "**" {
			return kernelerr.NotImplemented(routine, lt.String(), op, rt.String())
		}
		array.ForEach(n, func(i int) {
			a, b := l.GetReal(i), r.GetReal(i)
			if op == "//" {
				out.SetReal(i, FloorDiv(a, b))
			} else {
				out.SetReal(i, Mod(a, b))
			}
		})
		return nil

	case homogeneousInt && dtype.IsUnsigned(et):
		return fancyUnsignedInt(l, r, out, n, op, lt)

	case homogeneousInt:
		return fancySignedInt(l, r, out, n, op, lt)

	default: // real involved
		array.ForEach(n, func(i int) {
			a, b := l.GetReal(i), r.GetReal(i)
			switch op {
			case "//":
				out.SetReal(i, FloorDiv(a, b))
			case "%":
				out.SetReal(i, Mod(a, b))
			case "**":
				out.SetReal(i, math.Pow(a, b))
			}
		})
		return nil
	}
}

func fancyUnsignedInt(l, r operand, out *array.Array, n int, op string, lt dtype.DType) error {
	switch op {
	case "//":
		array.ForEach(n, func(i int) { out.SetUint(i, UintFloorDiv(l.GetUint(i), r.GetUint(i))) })
		return nil
	case "%":
		array.ForEach(n, func(i int) { out.SetUint(i, UintMod(l.GetUint(i), r.GetUint(i))) })
		return nil
	case "**":
		return powIntPrecheck(r, n, lt.String(), func() {
			array.ForEach(n, func(i int) { out.SetUint(i, uintPow(l.GetUint(i), r.GetUint(i))) })
		})
	}
	return kernelerr.InvalidOperator(op)
}

func fancySignedInt(l, r operand, out *array.Array, n int, op string, lt dtype.DType) error {
	switch op {
	case "//":
		array.ForEach(n, func(i int) { out.SetInt(i, IntFloorDiv(l.GetInt(i), r.GetInt(i))) })
		return nil
	case "%":
		array.ForEach(n, func(i int) { out.SetInt(i, IntMod(l.GetInt(i), r.GetInt(i))) })
		return nil
	case "**":
		return powIntPrecheck(r, n, lt.String(), func() {
			array.ForEach(n, func(i int) { out.SetInt(i, intPow(l.GetInt(i), r.GetInt(i))) })
		})
	}
	return kernelerr.InvalidOperator(op)
}

// powIntPrecheck implements the pre-pass negative-exponent reduction
// described in spec.md §5 ("negative-exponent check uses a pre-pass
// reduction"): the whole exponent array is scanned before any lane of the
// result is written, and the entire operation is refused with
// NegativeExponent if any lane's exponent is negative. See DESIGN.md for
// why this -- rather than spec.md §4.4's per-lane "compute in real
// arithmetic" fallback -- is the behavior this module implements.
func powIntPrecheck(exp operand, n int, baseType string, run func()) error {
	for i := 0; i < n; i++ {
		if exp.GetInt(i) < 0 {
			return kernelerr.NegativeExponentError(baseType)
		}
	}
	run()
	return nil
}

func intPow(base, exp int64) int64 {
	var result int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func uintPow(base, exp uint64) uint64 {
	var result uint64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// --- trueDivision: / ---

func binOpTrueDivision(lt, rt dtype.DType, l, r operand, out *array.Array, n int) error {
	et := promotion.DivDType(lt, rt)
	if et != out.DType() {
		return kernelerr.UnrecognizedType(routine, lt.String(), rt.String())
	}
	if dtype.IsComplex(et) {
		array.ForEach(n, func(i int) { out.SetComplex(i, l.GetComplex(i)/r.GetComplex(i)) })
		return nil
	}
	array.ForEach(n, func(i int) { out.SetReal(i, l.GetReal(i)/r.GetReal(i)) })
	return nil
}
