package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixed sequences for seeds with published reference values. Getting the
// cursor start values, lag offset or init loop bounds wrong produces a
// completely different sequence, so these pin the exact variant.

func drawN(g *generator, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = g.next()
	}
	return out
}

func TestGeneratorSeed123(t *testing.T) {
	require.Equal(t, []int32{
		2114319875, 1949518561, 1596751841, 1742987178, 1586516133, 103755708,
	}, drawN(newGenerator(123), 6))
}

func TestGeneratorSeed456(t *testing.T) {
	require.Equal(t, []int32{
		2044805024, 1323311594, 1087799997, 1907260840, 179380355, 120870348,
	}, drawN(newGenerator(456), 6))
}

func TestGeneratorSeed12(t *testing.T) {
	require.Equal(t, []int32{
		2137491492, 726598452, 334746691, 256573526, 1339733510,
		98050828, 607109598, 992976482, 992459907, 1500484683,
	}, drawN(newGenerator(12), 10))
}

func TestGeneratorDeterminism(t *testing.T) {
	a := drawN(newGenerator(52547), 100)
	b := drawN(newGenerator(52547), 100)
	require.Equal(t, a, b)
	require.Equal(t, []int32{
		1308307095, 183446352, 1052177469, 738379320, 917406322,
	}, a[:5])
}
