package kernel

import (
	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/jeremiah-corrado/arkouda/operator"
	"github.com/jeremiah-corrado/arkouda/scalar"
)

// OpEqVV performs the compound-assign `lhs op= r` in place (spec.md §4.6).
// Reusing binOp with out set to lhs itself gets the "reject type pairs
// whose promoted type would not fit the left operand's type" rule for
// free: every category function already refuses to run when its computed
// et does not equal out.DType(), and out.DType() is lhs's own type here.
func OpEqVV(lhs, r *array.Array, op string) error {
	base, ok := operator.BaseOperator(op)
	if !ok || !operator.IsCompoundAssign(op) {
		return kernelerr.InvalidOperator(op)
	}
	if lhs.Len() != r.Len() {
		return kernelerr.Shape("opeqvv: operand lane counts differ")
	}
	return binOp(lhs.DType(), r.DType(), arrayOperand{lhs}, arrayOperand{r}, lhs, lhs.Len(), base)
}

// OpEqVS performs the compound-assign `lhs op= s` in place, broadcasting
// the scalar across every lane.
func OpEqVS(lhs *array.Array, s scalar.Scalar, op string) error {
	base, ok := operator.BaseOperator(op)
	if !ok || !operator.IsCompoundAssign(op) {
		return kernelerr.InvalidOperator(op)
	}
	return binOp(lhs.DType(), s.DType, arrayOperand{lhs}, scalarOperand{s}, lhs, lhs.Len(), base)
}
