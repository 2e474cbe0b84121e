// Package array implements the ArrayType descriptor and the distributed
// element buffer abstraction that the elementwise kernels operate over. It
// follows the structure of the teacher repo's backend/atype package
// (ArrayType, Strides, Iter) generalized to the spec's DType catalog and
// the BigInt maxBits attribute.
package array

import (
	"fmt"
	"slices"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/pkg/errors"
)

// ArrayType describes the element type and shape of an array entry, plus
// the BigInt-only MaxBits attribute (-1 denotes unbounded), per spec.md §3.
type ArrayType struct {
	DType   dtype.DType
	Shape   []int
	MaxBits int
}

// Make returns an ArrayType with the given dtype and shape. MaxBits
// defaults to -1 (unbounded); use MakeBigInt for a bounded BigInt type.
func Make(dt dtype.DType, shape ...int) ArrayType {
	return ArrayType{DType: dt, Shape: slices.Clone(shape), MaxBits: -1}
}

// MakeBigInt returns a BigInt ArrayType with the given maxBits cap.
// maxBits < 0 means unbounded.
func MakeBigInt(maxBits int, shape ...int) ArrayType {
	return ArrayType{DType: dtype.BigInt, Shape: slices.Clone(shape), MaxBits: maxBits}
}

// NumAxes returns the number of axes (dimensions) of the array type.
func (at ArrayType) NumAxes() int { return len(at.Shape) }

// Size returns the number of elements: the product of all axis lengths.
func (at ArrayType) Size() int {
	n := 1
	for _, s := range at.Shape {
		n *= s
	}
	return n
}

// HasCap reports whether this BigInt array type has a bound maxBits.
func (at ArrayType) HasCap() bool { return at.DType == dtype.BigInt && at.MaxBits >= 0 }

// String implements fmt.Stringer.
func (at ArrayType) String() string {
	if at.DType == dtype.BigInt && at.MaxBits >= 0 {
		return fmt.Sprintf("(%s:%d)%v", at.DType, at.MaxBits, at.Shape)
	}
	return fmt.Sprintf("(%s)%v", at.DType, at.Shape)
}

// Equal reports whether two array types have the same dtype and shape.
// MaxBits is not compared by Equal (two BigInt arrays of different width
// caps are still "the same array type" for shape/dtype purposes).
func (at ArrayType) Equal(other ArrayType) bool {
	return at.DType == other.DType && slices.Equal(at.Shape, other.Shape)
}

// SameShape checks that two array types describe the same shape, returning
// a ShapeMismatch-flavored error (see dispatch.ErrKindShapeMismatch)
// otherwise.
func (at ArrayType) SameShape(other ArrayType) error {
	if !slices.Equal(at.Shape, other.Shape) {
		return errors.Errorf("shape mismatch: %v vs %v", at.Shape, other.Shape)
	}
	return nil
}

// ResolvedMaxBits returns the maxBits to inherit for a BigInt result given
// the left and right operand array types, per spec.md §3 invariant (ii):
// inherited from whichever BigInt operand has the binding width; if both
// do, their maxBits must match.
func ResolvedMaxBits(l, r ArrayType) (int, error) {
	lHas := l.DType == dtype.BigInt && l.MaxBits >= 0
	rHas := r.DType == dtype.BigInt && r.MaxBits >= 0
	switch {
	case lHas && rHas:
		if l.MaxBits != r.MaxBits {
			return -1, errors.Errorf("mismatched maxBits for big-integer operands: %d vs %d", l.MaxBits, r.MaxBits)
		}
		return l.MaxBits, nil
	case lHas:
		return l.MaxBits, nil
	case rHas:
		return r.MaxBits, nil
	default:
		return -1, nil
	}
}
