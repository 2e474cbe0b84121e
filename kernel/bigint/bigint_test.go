package bigint

import (
	"math/big"
	"testing"

	"github.com/jeremiah-corrado/arkouda/array"
	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/jeremiah-corrado/arkouda/kernelerr"
	"github.com/stretchr/testify/require"
)

func mustBigArray(t *testing.T, vals ...int64) *array.Array {
	t.Helper()
	a, err := array.New(array.MakeBigInt(-1, len(vals)))
	require.NoError(t, err)
	for i, v := range vals {
		a.Bigs[i] = big.NewInt(v)
	}
	return a
}

func TestBasicArithmeticAdd(t *testing.T) {
	l := mustBigArray(t, 10, 20)
	r := mustBigArray(t, 3, 4)
	out, err := array.New(array.MakeBigInt(-1, 2))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 2, "+", -1))
	require.Equal(t, int64(13), out.Bigs[0].Int64())
	require.Equal(t, int64(24), out.Bigs[1].Int64())
}

func TestMaskAfterOp(t *testing.T) {
	l := mustBigArray(t, 200)
	r := mustBigArray(t, 100)
	out, err := array.New(array.MakeBigInt(8, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "+", 8))
	require.Equal(t, int64((200+100)&0xFF), out.Bigs[0].Int64())
}

func TestFloorModNegative(t *testing.T) {
	l := mustBigArray(t, -7)
	r := mustBigArray(t, 2)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "%", -1))
	require.Equal(t, int64(1), out.Bigs[0].Int64())
}

func TestDivisionByZeroYieldsZero(t *testing.T) {
	l := mustBigArray(t, 5)
	r := mustBigArray(t, 0)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "//", -1))
	require.Equal(t, int64(0), out.Bigs[0].Int64())
}

func TestTrueDivisionByZeroYieldsZeroWithoutError(t *testing.T) {
	l := mustBigArray(t, 5)
	r := mustBigArray(t, 0)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "/", -1))
	require.Equal(t, int64(0), out.Bigs[0].Int64())
}

func TestBasicArithmeticAcceptsBigIntOnEitherSide(t *testing.T) {
	intSide, err := array.New(array.Make(dtype.I64, 1))
	require.NoError(t, err)
	intSide.SetInt(0, 10)
	bigSide := mustBigArray(t, 3)

	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{intSide}, ArrayOperand{bigSide}, out, 1, "+", -1))
	require.Equal(t, int64(13), out.Bigs[0].Int64())

	out2, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{bigSide}, ArrayOperand{intSide}, out2, 1, "-", -1))
	require.Equal(t, int64(-7), out2.Bigs[0].Int64())
}

func TestNegativeExponentErrors(t *testing.T) {
	l := mustBigArray(t, 2)
	r := mustBigArray(t, -1)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	err = BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "**", -1)
	require.Error(t, err)
	var kerr *kernelerr.Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, kernelerr.NegativeExponent, kerr.Kind)
}

func TestModularExponentiation(t *testing.T) {
	l := mustBigArray(t, 3)
	r := mustBigArray(t, 5)
	out, err := array.New(array.MakeBigInt(8, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "**", 8))
	require.Equal(t, int64(243)&0xFF, out.Bigs[0].Int64())
}

func TestRotationRequiresWidth(t *testing.T) {
	l := mustBigArray(t, 5)
	r := mustBigArray(t, 1)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	err = BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "<<<", -1)
	require.Error(t, err)
	var kerr *kernelerr.Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, kernelerr.RotationWithoutWidth, kerr.Kind)
}

func TestRotationRoundTrip(t *testing.T) {
	l := mustBigArray(t, 0xAB)
	s := mustBigArray(t, 3)
	tmp, err := array.New(array.MakeBigInt(8, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{s}, tmp, 1, "<<<", 8))
	back, err := array.New(array.MakeBigInt(8, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{tmp}, ArrayOperand{s}, back, 1, ">>>", 8))
	require.Equal(t, int64(0xAB), back.Bigs[0].Int64())
}

func TestShiftBeyondCapYieldsZero(t *testing.T) {
	l := mustBigArray(t, 1)
	s := mustBigArray(t, 10)
	out, err := array.New(array.MakeBigInt(8, 1))
	require.NoError(t, err)
	require.NoError(t, BinOp(ArrayOperand{l}, ArrayOperand{s}, out, 1, "<<", 8))
	require.Equal(t, int64(0), out.Bigs[0].Int64())
}

func TestCmp(t *testing.T) {
	l := mustBigArray(t, 1, 5)
	r := mustBigArray(t, 2, 5)
	out, err := array.New(array.Make(dtype.Bool, 2))
	require.NoError(t, err)
	require.NoError(t, Cmp(ArrayOperand{l}, ArrayOperand{r}, out, 2, "=="))
	require.Equal(t, []bool{false, true}, out.Bools)
}

func TestBitwiseLogicRequiresBothBigInt(t *testing.T) {
	l := mustBigArray(t, 1)
	r, err := array.New(array.Make(dtype.I64, 1))
	require.NoError(t, err)
	out, err := array.New(array.MakeBigInt(-1, 1))
	require.NoError(t, err)
	err = BinOp(ArrayOperand{l}, ArrayOperand{r}, out, 1, "|", -1)
	require.Error(t, err)
}
