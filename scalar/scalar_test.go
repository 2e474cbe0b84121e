package scalar

import (
	"math/big"
	"testing"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/stretchr/testify/require"
)

func TestAccessorsConvert(t *testing.T) {
	s := FromInt(-5, dtype.I64)
	require.Equal(t, int64(-5), s.AsInt())
	require.Equal(t, float64(-5), s.AsReal())
	require.True(t, s.AsBool())

	s2 := FromReal(0, dtype.F64)
	require.False(t, s2.AsBool())

	s3 := FromBool(true)
	require.Equal(t, int64(1), s3.AsInt())
}

func TestAsBigInt(t *testing.T) {
	s := FromUint(42, dtype.U64)
	z, err := s.AsBigInt()
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), z)

	real := FromReal(1.5, dtype.F64)
	_, err = real.AsBigInt()
	require.Error(t, err)
}

func TestFromFloat16(t *testing.T) {
	s := FromFloat16(0x3C00) // 1.0 in float16
	require.Equal(t, dtype.F32, s.DType)
	require.InDelta(t, 1.0, s.AsReal(), 1e-6)
}

func TestFromBigIntIsIndependentCopy(t *testing.T) {
	z := big.NewInt(7)
	s := FromBigInt(z)
	z.SetInt64(99)
	got, _ := s.AsBigInt()
	require.Equal(t, big.NewInt(7), got)
}
