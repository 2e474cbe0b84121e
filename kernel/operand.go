package kernel

import (
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/scalar"
)

// operand abstracts over an array.Array or a broadcast scalar.Scalar so the
// engine in binop.go can implement the array-array, array-scalar, and
// scalar-array kernel variants (spec.md §4.6) against a single set of
// per-category functions. This is the Go-generics-free analogue of the
// source's per-pair template instantiation (see spec.md §9): the category
// functions are written once against this interface instead of once per
// (lt, rt) pair.
type operand interface {
	DType() dtype.DType
	GetReal(i int) float64
	GetInt(i int) int64
	GetUint(i int) uint64
	GetBool(i int) bool
	GetComplex(i int) complex128
}

// arrayOperand adapts *array.Array to the operand interface.
type arrayOperand struct{ a arrayLike }

// arrayLike is satisfied by *array.Array; declared narrowly here so this
// file does not need to import package array just for the concrete type.
type arrayLike interface {
	DType() dtype.DType
	GetReal(i int) float64
	GetInt(i int) int64
	GetUint(i int) uint64
	GetBool(i int) bool
	GetComplex(i int) complex128
}

func (o arrayOperand) DType() dtype.DType             { return o.a.DType() }
func (o arrayOperand) GetReal(i int) float64          { return o.a.GetReal(i) }
func (o arrayOperand) GetInt(i int) int64             { return o.a.GetInt(i) }
func (o arrayOperand) GetUint(i int) uint64           { return o.a.GetUint(i) }
func (o arrayOperand) GetBool(i int) bool             { return o.a.GetBool(i) }
func (o arrayOperand) GetComplex(i int) complex128    { return o.a.GetComplex(i) }

// scalarOperand adapts a scalar.Scalar to the operand interface: every
// lane index reads the same loop-invariant value, which is the basis for
// the per-task scalar capture described in spec.md §4.6.
type scalarOperand struct{ s scalar.Scalar }

func (o scalarOperand) DType() dtype.DType          { return o.s.DType }
func (o scalarOperand) GetReal(int) float64         { return o.s.AsReal() }
func (o scalarOperand) GetInt(int) int64            { return o.s.AsInt() }
func (o scalarOperand) GetUint(int) uint64          { return o.s.AsUint() }
func (o scalarOperand) GetBool(int) bool            { return o.s.AsBool() }
func (o scalarOperand) GetComplex(int) complex128   { return complex(o.s.AsReal(), 0) }
