package promotion

import (
	"testing"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/stretchr/testify/require"
)

func TestCommonDTypeCommutative(t *testing.T) {
	all := []dtype.DType{
		dtype.U8, dtype.U16, dtype.U32, dtype.U64,
		dtype.I8, dtype.I16, dtype.I32, dtype.I64,
		dtype.F32, dtype.F64, dtype.C64, dtype.C128, dtype.Bool,
	}
	for _, a := range all {
		for _, b := range all {
			require.Equalf(t, CommonDType(a, b, false), CommonDType(b, a, false),
				"commonDType(%s,%s) should equal commonDType(%s,%s)", a, b, b, a)
		}
	}
}

func TestCommonDTypeBoolIdentity(t *testing.T) {
	numeric := []dtype.DType{dtype.U8, dtype.I32, dtype.F64, dtype.C128}
	for _, d := range numeric {
		require.Equal(t, d, CommonDType(d, dtype.Bool, false))
		require.Equal(t, d, CommonDType(dtype.Bool, d, false))
	}
	require.Equal(t, dtype.Bool, CommonDType(dtype.Bool, dtype.Bool, false))
	require.Equal(t, dtype.I8, CommonDType(dtype.Bool, dtype.Bool, true))
}

func TestCommonDTypeMixedSignedUnsigned(t *testing.T) {
	// U64 widens to F64 when paired with a signed type (there is no wider signed int).
	require.Equal(t, dtype.F64, CommonDType(dtype.U64, dtype.I8, false))
	require.Equal(t, dtype.F64, CommonDType(dtype.I8, dtype.U64, false))
	// U8 + I8 -> promote U8 to I16, max(I16, I8) = I16.
	require.Equal(t, dtype.I16, CommonDType(dtype.U8, dtype.I8, false))
}

func TestCommonDTypeIntFloat(t *testing.T) {
	require.Equal(t, dtype.F64, CommonDType(dtype.I64, dtype.F32, false))
	require.Equal(t, dtype.F32, CommonDType(dtype.I8, dtype.F32, false))
}

func TestDivDType(t *testing.T) {
	require.Equal(t, dtype.F64, DivDType(dtype.I64, dtype.I64))
	require.Equal(t, dtype.F32, DivDType(dtype.U8, dtype.F32))
	require.Equal(t, dtype.F64, DivDType(dtype.I32, dtype.F32))
	require.Equal(t, dtype.F64, DivDType(dtype.Bool, dtype.I32))
	require.Equal(t, dtype.F32, DivDType(dtype.Bool, dtype.F32))
	require.Equal(t, dtype.C128, DivDType(dtype.Bool, dtype.C128))
}

func TestPromoteTables(t *testing.T) {
	require.Equal(t, dtype.I8, PromoteToNextSigned(dtype.Bool))
	require.Equal(t, dtype.F64, PromoteToNextSigned(dtype.U64))
	require.Equal(t, dtype.F32, PromoteToNextFloat(dtype.I16))
	require.Equal(t, dtype.F64, PromoteToNextFloat(dtype.I64))
	require.Equal(t, dtype.C64, PromoteToNextComplex(dtype.F32))
	require.Equal(t, dtype.C128, PromoteToNextComplex(dtype.F64))
}
