package kernel

import (
	"testing"

	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/jeremiah-corrado/arkouda/scalar"
	"github.com/stretchr/testify/require"
)

func mustArray(t *testing.T, dt dtype.DType, vals ...int64) *array.Array {
	t.Helper()
	a, err := array.New(array.Make(dt, len(vals)))
	require.NoError(t, err)
	for i, v := range vals {
		a.SetInt(i, v)
	}
	return a
}

func TestS1_AddI64(t *testing.T) {
	a := mustArray(t, dtype.I64, 1, 2, 3)
	b := mustArray(t, dtype.I64, 4, 5, 6)
	out, err := array.New(array.Make(dtype.I64, 3))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(a, b, out, "+"))
	require.Equal(t, []int64{5, 7, 9}, out.I64s)
}

func TestS2_FloorDivByZero(t *testing.T) {
	a := mustArray(t, dtype.I64, 1, 2, 3)
	b := mustArray(t, dtype.I64, 2, 2, 0)
	out, err := array.New(array.Make(dtype.I64, 3))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(a, b, out, "//"))
	require.Equal(t, []int64{0, 1, 0}, out.I64s)
}

func TestS3_NegativeExponentErrors(t *testing.T) {
	a := mustArray(t, dtype.I64, 7)
	b := mustArray(t, dtype.I64, -2)
	out, err := array.New(array.Make(dtype.I64, 1))
	require.NoError(t, err)
	err = BinOpVV(a, b, out, "**")
	require.Error(t, err)
	var kerr *kernelerr.Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, kernelerr.NegativeExponent, kerr.Kind)
	require.Contains(t, kerr.Error(), "int64")
}

func TestS6_MixedSignedUnsignedWidensToReal(t *testing.T) {
	a := mustArray(t, dtype.I64, 5)
	b, err := array.New(array.Make(dtype.U64, 1))
	require.NoError(t, err)
	b.SetUint(0, 2)
	out, err := array.New(array.Make(dtype.F64, 1))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(a, b, out, "+"))
	require.Equal(t, []float64{7.0}, out.F64s)
}

func TestS8_ComplexComparisonRealPartOnly(t *testing.T) {
	a, err := array.New(array.Make(dtype.C128, 2))
	require.NoError(t, err)
	a.C128s[0] = complex(1, 2)
	a.C128s[1] = complex(3, 4)
	b, err := array.New(array.Make(dtype.C128, 2))
	require.NoError(t, err)
	b.C128s[0] = complex(1, 9)
	b.C128s[1] = complex(3, 0)

	out, err := array.New(array.Make(dtype.Bool, 2))
	require.NoError(t, err)
	require.NoError(t, BinOpCmpVV(a, b, out, "=="))
	require.Equal(t, []bool{true, true}, out.Bools)
}

func TestCommutativity(t *testing.T) {
	a := mustArray(t, dtype.I32, 3, -4)
	b := mustArray(t, dtype.I32, 7, 2)

	out1, _ := array.New(array.Make(dtype.I32, 2))
	out2, _ := array.New(array.Make(dtype.I32, 2))
	require.NoError(t, BinOpVV(a, b, out1, "+"))
	require.NoError(t, BinOpVV(b, a, out2, "+"))
	require.Equal(t, out1.I32s, out2.I32s)

	require.NoError(t, BinOpVV(a, b, out1, "&"))
	require.NoError(t, BinOpVV(b, a, out2, "&"))
	require.Equal(t, out1.I32s, out2.I32s)
}

func TestShiftClampsOutOfRangeCounts(t *testing.T) {
	a := mustArray(t, dtype.I64, 1, 1)
	b := mustArray(t, dtype.I64, -1, 70)
	out, err := array.New(array.Make(dtype.I64, 2))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(a, b, out, "<<"))
	require.Equal(t, []int64{0, 0}, out.I64s)
}

func TestBoolWithIntShiftStaysAtWiderIntType(t *testing.T) {
	l, err := array.New(array.Make(dtype.Bool, 1))
	require.NoError(t, err)
	l.Bools[0] = true
	r := mustArray(t, dtype.I64, 1)
	out, err := array.New(array.Make(dtype.I64, 1))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(l, r, out, "<<"))
	require.Equal(t, int64(2), out.I64s[0])
}

func TestRotationRoundTrip(t *testing.T) {
	l := mustArray(t, dtype.U32, 0xABCD)
	s := mustArray(t, dtype.U32, 5)
	tmp, err := array.New(array.Make(dtype.U32, 1))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(l, s, tmp, "<<<"))
	back, err := array.New(array.Make(dtype.U32, 1))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(tmp, s, back, ">>>"))
	require.Equal(t, l.U32s, back.U32s)
}

func TestVSScalarBroadcast(t *testing.T) {
	l := mustArray(t, dtype.I32, 1, 2, 3)
	s := scalar.FromInt(10, dtype.I32)
	out, err := array.New(array.Make(dtype.I32, 3))
	require.NoError(t, err)
	require.NoError(t, BinOpVS(l, s, out, "+"))
	require.Equal(t, []int32{11, 12, 13}, out.I32s)
}

func TestTrueDivisionIntInt(t *testing.T) {
	a := mustArray(t, dtype.I64, 7)
	b := mustArray(t, dtype.I64, 2)
	out, err := array.New(array.Make(dtype.F64, 1))
	require.NoError(t, err)
	require.NoError(t, BinOpVV(a, b, out, "/"))
	require.Equal(t, 3.5, out.F64s[0])
}

func TestBoolBoolArithmeticRejected(t *testing.T) {
	l, _ := array.New(array.Make(dtype.Bool, 1))
	r, _ := array.New(array.Make(dtype.Bool, 1))
	out, _ := array.New(array.Make(dtype.Bool, 1))
	err := BinOpVV(l, r, out, "+")
	require.Error(t, err)
}
