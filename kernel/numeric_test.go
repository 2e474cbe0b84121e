package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloorDivEdgeCases(t *testing.T) {
	require.True(t, math.IsNaN(FloorDiv(0, 0)))
	require.Equal(t, -1.0, FloorDiv(1.0, math.Inf(1)))
	require.Equal(t, -1.0, FloorDiv(-1.0, math.Inf(1)))
	require.Equal(t, 0.0, FloorDiv(1.0, math.Inf(-1)))
}

func TestFloorDivS4(t *testing.T) {
	// S4: a=[1.0,-1.0], b=[+inf,+inf] -> [0.0, -1.0]
	require.Equal(t, 0.0, FloorDiv(1.0, math.Inf(1)))
	require.Equal(t, -1.0, FloorDiv(-1.0, math.Inf(1)))
}

func TestModSignConvention(t *testing.T) {
	require.Equal(t, 1.0, Mod(-5, 3))
	require.Equal(t, -2.0, Mod(4, -3))
}

func TestFloorDivModConsistency(t *testing.T) {
	pairs := [][2]float64{{7, 2}, {-7, 2}, {7, -2}, {-7, -2}, {1.5, 0.4}}
	for _, p := range pairs {
		x, y := p[0], p[1]
		got := FloorDiv(x, y)*y + Mod(x, y)
		require.InDelta(t, x, got, 1e-9)
	}
}

func TestIntDivModZeroDivisor(t *testing.T) {
	require.Equal(t, int64(0), IntFloorDiv(5, 0))
	require.Equal(t, int64(0), IntMod(5, 0))
	require.Equal(t, uint64(0), UintFloorDiv(5, 0))
	require.Equal(t, uint64(0), UintMod(5, 0))
}

func TestIntFloorDivS2(t *testing.T) {
	// S2: a=[1,2,3], b=[2,2,0] -> a // b = [0,1,0]
	require.Equal(t, int64(0), IntFloorDiv(1, 2))
	require.Equal(t, int64(1), IntFloorDiv(2, 2))
	require.Equal(t, int64(0), IntFloorDiv(3, 0))
}

func TestIntFloorDivNegative(t *testing.T) {
	require.Equal(t, int64(-4), IntFloorDiv(-7, 2)) // floor(-3.5) == -4
	require.Equal(t, int64(1), IntMod(-7, 2))       // -7 = -4*2 + 1
}
