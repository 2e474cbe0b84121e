// Package dispatch is the front-end described in spec.md §4.8: given a
// (leftDType, rightDType) pair and an operator, it selects the concrete
// kernel specialization (non-bigint, bigint, or comparison), resolves
// array names against a symbol table, and turns kernel failures into the
// typed errors from spec.md §7.
package dispatch

import (
	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/clip"
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/kernel"
	"github.com/jeremiah-corrado/arkouda/kernel/bigint"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/jeremiah-corrado/arkouda/operator"
	"github.com/jeremiah-corrado/arkouda/promotion"
	"github.com/jeremiah-corrado/arkouda/scalar"
)

// SymbolTable is the external collaborator spec.md §5/§6 describes: the
// only shared mutable state, looked up at operation entry and updated at
// operation exit. A real server backs this with a distributed, concurrent
// table; Dispatcher only needs the narrow interface below.
type SymbolTable interface {
	Get(name string) (*array.Array, bool)
	Put(a *array.Array) string
	Delete(name string)
}

// Dispatcher routes named-array requests to the kernel packages, per
// spec.md §4.8 and §6.
type Dispatcher struct {
	Symbols SymbolTable

	// DefaultMaxBits is the maxBits a new BigInt array is given when one
	// operand is BigInt and the other is a fixed-width scalar/array with no
	// maxBits of its own to inherit (server.Config.DefaultMaxBits). -1
	// (unbounded) unless overridden.
	DefaultMaxBits int
}

// New builds a Dispatcher over the given symbol table, with an unbounded
// (-1) DefaultMaxBits. Callers that need a narrower default can set the
// field directly before first use.
func New(symbols SymbolTable) *Dispatcher {
	return &Dispatcher{Symbols: symbols, DefaultMaxBits: -1}
}

func (d *Dispatcher) lookup(name string) (*array.Array, error) {
	a, ok := d.Symbols.Get(name)
	if !ok {
		return nil, kernelerr.Undefined(name)
	}
	return a, nil
}

// BinOpVV resolves `a op b` and publishes the result to the symbol table,
// returning its assigned name (spec.md §6's array-array command).
func (d *Dispatcher) BinOpVV(op, aName, bName string) (string, error) {
	a, err := d.lookup(aName)
	if err != nil {
		return "", err
	}
	b, err := d.lookup(bName)
	if err != nil {
		return "", err
	}
	if err := a.AT.SameShape(b.AT); err != nil {
		return "", kernelerr.Shape(err.Error())
	}

	if operator.CategoryOf(op) == operator.Comparison {
		out, err := d.allocComparisonResult(a, b, op, kernel.BinOpCmpVV)
		if err != nil {
			return "", err
		}
		return d.Symbols.Put(out), nil
	}

	if a.DType() == dtype.BigInt || b.DType() == dtype.BigInt {
		return d.binOpBigVV(a, b, op)
	}

	et := nonBigintResultType(a.DType(), b.DType(), op)
	out, err := array.New(array.Make(et, a.Len()))
	if err != nil {
		return "", err
	}
	if err := kernel.BinOpVV(a, b, out, op); err != nil {
		return "", err
	}
	return d.Symbols.Put(out), nil
}

func (d *Dispatcher) binOpBigVV(a, b *array.Array, op string) (string, error) {
	maxBits, err := array.ResolvedMaxBits(a.AT, b.AT)
	if err != nil {
		return "", kernelerr.Shape(err.Error())
	}
	out, err := array.New(array.MakeBigInt(maxBits, a.Len()))
	if err != nil {
		return "", err
	}
	if err := bigint.BinOp(bigint.ArrayOperand{A: a}, bigint.ArrayOperand{A: b}, out, a.Len(), op, maxBits); err != nil {
		return "", err
	}
	return d.Symbols.Put(out), nil
}

func (d *Dispatcher) allocComparisonResult(a, b *array.Array, op string, cmp func(l, r, out *array.Array, op string) error) (*array.Array, error) {
	out, err := array.New(array.Make(dtype.Bool, a.Len()))
	if err != nil {
		return nil, err
	}
	if a.DType() == dtype.BigInt || b.DType() == dtype.BigInt {
		if err := bigint.Cmp(bigint.ArrayOperand{A: a}, bigint.ArrayOperand{A: b}, out, a.Len(), op); err != nil {
			return nil, err
		}
		return out, nil
	}
	if err := cmp(a, b, out, op); err != nil {
		return nil, err
	}
	return out, nil
}

// BinOpVS resolves `a op value` (spec.md §6's array-scalar command).
func (d *Dispatcher) BinOpVS(op, aName string, value scalar.Scalar) (string, error) {
	a, err := d.lookup(aName)
	if err != nil {
		return "", err
	}
	if operator.CategoryOf(op) == operator.Comparison {
		out, err := array.New(array.Make(dtype.Bool, a.Len()))
		if err != nil {
			return "", err
		}
		if a.DType() == dtype.BigInt || value.DType == dtype.BigInt {
			z, zerr := value.AsBigInt()
			if zerr != nil {
				return "", kernelerr.UnrecognizedType("binOpBigCmp", a.DType().String(), value.DType.String())
			}
			if err := bigint.Cmp(bigint.ArrayOperand{A: a}, bigint.ScalarOperand{DT: value.DType, V: z}, out, a.Len(), op); err != nil {
				return "", err
			}
			return d.Symbols.Put(out), nil
		}
		if err := kernel.BinOpCmpVS(a, value, out, op); err != nil {
			return "", err
		}
		return d.Symbols.Put(out), nil
	}

	if a.DType() == dtype.BigInt || value.DType == dtype.BigInt {
		z, zerr := value.AsBigInt()
		if zerr != nil {
			return "", kernelerr.NotImplemented(routineName(op), a.DType().String(), op, value.DType.String())
		}
		maxBits := a.AT.MaxBits
		if a.DType() != dtype.BigInt {
			maxBits = d.DefaultMaxBits
		}
		out, err := array.New(array.MakeBigInt(maxBits, a.Len()))
		if err != nil {
			return "", err
		}
		if err := bigint.BinOp(bigint.ArrayOperand{A: a}, bigint.ScalarOperand{DT: value.DType, V: z}, out, a.Len(), op, maxBits); err != nil {
			return "", err
		}
		return d.Symbols.Put(out), nil
	}

	et := nonBigintResultType(a.DType(), value.DType, op)
	out, err := array.New(array.Make(et, a.Len()))
	if err != nil {
		return "", err
	}
	if err := kernel.BinOpVS(a, value, out, op); err != nil {
		return "", err
	}
	return d.Symbols.Put(out), nil
}

// BinOpSV resolves `value op b` (spec.md §6's scalar-array command).
func (d *Dispatcher) BinOpSV(op string, value scalar.Scalar, bName string) (string, error) {
	b, err := d.lookup(bName)
	if err != nil {
		return "", err
	}
	if operator.CategoryOf(op) == operator.Comparison {
		out, err := array.New(array.Make(dtype.Bool, b.Len()))
		if err != nil {
			return "", err
		}
		if b.DType() == dtype.BigInt || value.DType == dtype.BigInt {
			z, zerr := value.AsBigInt()
			if zerr != nil {
				return "", kernelerr.UnrecognizedType("binOpBigCmp", value.DType.String(), b.DType().String())
			}
			if err := bigint.Cmp(bigint.ScalarOperand{DT: value.DType, V: z}, bigint.ArrayOperand{A: b}, out, b.Len(), op); err != nil {
				return "", err
			}
			return d.Symbols.Put(out), nil
		}
		if err := kernel.BinOpCmpSV(value, b, out, op); err != nil {
			return "", err
		}
		return d.Symbols.Put(out), nil
	}

	if b.DType() == dtype.BigInt || value.DType == dtype.BigInt {
		z, zerr := value.AsBigInt()
		if zerr != nil {
			return "", kernelerr.NotImplemented(routineName(op), value.DType.String(), op, b.DType().String())
		}
		maxBits := b.AT.MaxBits
		if b.DType() != dtype.BigInt {
			maxBits = d.DefaultMaxBits
		}
		out, err := array.New(array.MakeBigInt(maxBits, b.Len()))
		if err != nil {
			return "", err
		}
		if err := bigint.BinOp(bigint.ScalarOperand{DT: value.DType, V: z}, bigint.ArrayOperand{A: b}, out, b.Len(), op, maxBits); err != nil {
			return "", err
		}
		return d.Symbols.Put(out), nil
	}

	et := nonBigintResultType(value.DType, b.DType(), op)
	out, err := array.New(array.Make(et, b.Len()))
	if err != nil {
		return "", err
	}
	if err := kernel.BinOpSV(value, b, out, op); err != nil {
		return "", err
	}
	return d.Symbols.Put(out), nil
}

// OpEqVV resolves the in-place compound assignment `lhs op= r`, per
// spec.md §4.6/§6: no new array is created.
func (d *Dispatcher) OpEqVV(op, lhsName, rName string) error {
	lhs, err := d.lookup(lhsName)
	if err != nil {
		return err
	}
	r, err := d.lookup(rName)
	if err != nil {
		return err
	}
	if lhs.DType() == dtype.BigInt {
		base, ok := operator.BaseOperator(op)
		if !ok {
			return kernelerr.InvalidOperator(op)
		}
		return bigint.BinOp(bigint.ArrayOperand{A: lhs}, bigint.ArrayOperand{A: r}, lhs, lhs.Len(), base, lhs.AT.MaxBits)
	}
	return kernel.OpEqVV(lhs, r, op)
}

// OpEqVS resolves the in-place compound assignment `lhs op= value`.
func (d *Dispatcher) OpEqVS(op, lhsName string, value scalar.Scalar) error {
	lhs, err := d.lookup(lhsName)
	if err != nil {
		return err
	}
	if lhs.DType() == dtype.BigInt {
		base, ok := operator.BaseOperator(op)
		if !ok {
			return kernelerr.InvalidOperator(op)
		}
		z, zerr := value.AsBigInt()
		if zerr != nil {
			return kernelerr.NotImplemented(routineName(op), lhs.DType().String(), op, value.DType.String())
		}
		return bigint.BinOp(bigint.ArrayOperand{A: lhs}, bigint.ScalarOperand{DT: value.DType, V: z}, lhs, lhs.Len(), base, lhs.AT.MaxBits)
	}
	return kernel.OpEqVS(lhs, value, op)
}

// Clip resolves the clip command (spec.md §4.7/§6), choosing one of the
// four variants based on whether min/max name arrays or carry scalars.
// A zero scalar.Scalar (its DType left at dtype.UNDEF) signals "this bound
// is an array name", matching how the clip command's args are parsed.
func (d *Dispatcher) Clip(name string, minName, maxName string, minScalar, maxScalar scalar.Scalar, minIsArray, maxIsArray bool) (string, error) {
	a, err := d.lookup(name)
	if err != nil {
		return "", err
	}

	var out *array.Array
	switch {
	case minIsArray && maxIsArray:
		minA, lerr := d.lookup(minName)
		if lerr != nil {
			return "", lerr
		}
		maxA, lerr := d.lookup(maxName)
		if lerr != nil {
			return "", lerr
		}
		out, err = clip.ClipAA(a, minA, maxA)
	case minIsArray && !maxIsArray:
		minA, lerr := d.lookup(minName)
		if lerr != nil {
			return "", lerr
		}
		out, err = clip.ClipAS(a, minA, maxScalar)
	case !minIsArray && maxIsArray:
		maxA, lerr := d.lookup(maxName)
		if lerr != nil {
			return "", lerr
		}
		out, err = clip.ClipSA(a, minScalar, maxA)
	default:
		out, err = clip.ClipSS(a, minScalar, maxScalar)
	}
	if err != nil {
		return "", err
	}
	return d.Symbols.Put(out), nil
}

func routineName(op string) string {
	if operator.IsCompoundAssign(op) {
		return "opEq"
	}
	return "binOp"
}

// nonBigintResultType resolves the output element type for a non-bigint
// binary op, mirroring the same promotion call the kernel category
// function makes internally (spec.md §4.4). Allocating out with the
// wrong dtype here simply causes the kernel to report
// UnsupportedResultTypeForOperator, so a mismatch here is self-correcting
// rather than silently wrong.
func nonBigintResultType(lt, rt dtype.DType, op string) dtype.DType {
	switch operator.CategoryOf(op) {
	case operator.TrueDivision:
		return promotion.DivDType(lt, rt)
	case operator.FancyArithmetic, operator.BitwiseShift:
		return promotion.CommonDType(lt, rt, true)
	default:
		return promotion.CommonDType(lt, rt, false)
	}
}
