package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShuffleTableIsBijection(t *testing.T) {
	seen := make(map[int]bool)
	for _, p := range shuffleTable {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, PasswordSymbols)
		require.False(t, seen[p])
		seen[p] = true
	}
}

func TestShuffleInvolution(t *testing.T) {
	code := make([]byte, PasswordSymbols)
	for i := range code {
		code[i] = byte(i)
	}
	require.Equal(t, code, unshuffle(shuffle(code)))
	require.Equal(t, code, shuffle(unshuffle(code)))
}

func TestUnshuffleKnownPassword(t *testing.T) {
	p, err := ParsePassword("Pf8sPs4fPhXe3f7h1h2h5s8w3h9s3fXh4wMw4s6w8w9w6e2f8h9f1h2s1w8h")
	require.NoError(t, err)
	require.Equal(t, []byte{
		3, 53, 60, 34, 15, 14, 19, 22, 2, 36, 31, 29, 26, 20, 1,
		33, 33, 9, 59, 44, 20, 2, 13, 61, 25, 8, 56, 51, 55, 13,
	}, unshuffle(p.digits()))
}
