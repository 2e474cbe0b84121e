package server

import (
	"testing"

	"github.com/jeremiah-corrado/arkouda/dtype"
	"github.com/stretchr/testify/require"
)

func TestParseScalarFloat16Literal(t *testing.T) {
	s, err := ParseScalar("1.5", "float16")
	require.NoError(t, err)
	require.Equal(t, dtype.F32, s.DType)
	require.InDelta(t, 1.5, s.AsReal(), 1e-3)
}

func TestParseScalarFloat16RejectsBadLiteral(t *testing.T) {
	_, err := ParseScalar("not-a-number", "float16")
	require.Error(t, err)
}

func TestParseScalarUnrecognizedDType(t *testing.T) {
	_, err := ParseScalar("1", "nonsense")
	require.Error(t, err)
}

func TestParseScalarBigInt(t *testing.T) {
	s, err := ParseScalar("123456789012345678901234567890", "bigint")
	require.NoError(t, err)
	require.Equal(t, dtype.BigInt, s.DType)
}
