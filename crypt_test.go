package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCryptoEncrypt(t *testing.T) {
	buf := []byte{
		12, 205, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	}
	require.Equal(t, []byte{
		12, 205, 61, 91, 144, 26, 152, 55, 190, 65, 232, 236, 171,
		53, 91, 247, 132, 181, 233, 111, 35, 95, 10,
	}, applyCrypto(buf, true))
}

func TestCryptoRoundTrip(t *testing.T) {
	buf := []byte{
		12, 205, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	}
	out := applyCrypto(applyCrypto(buf, true), false)

	// The final byte keeps only the bits that survive 6-bit repacking.
	want := append([]byte(nil), buf...)
	want[len(want)-1] &= 0x0F
	require.Equal(t, want, out)
}

func TestCryptoSeedPassesThrough(t *testing.T) {
	buf := []byte{0x43, 0xCD, 0x8B, 0x8F, 0x33, 0x59}
	out := applyCrypto(buf, false)
	require.Equal(t, buf[:2], out[:2])
	require.NotEqual(t, buf[2:], out[2:])
}

func TestCryptoKnownPayload(t *testing.T) {
	// The packed buffer of the reference password, seed 52547.
	buf := []byte{
		67, 205, 139, 143, 51, 89, 2, 249, 117, 26, 21, 132,
		97, 178, 179, 148, 208, 244, 25, 130, 207, 119, 3,
	}
	require.Equal(t, []byte{
		67, 205, 244, 63, 246, 33, 144, 128, 220, 39, 142, 52,
		184, 77, 137, 104, 194, 8, 6, 210, 120, 151, 2,
	}, applyCrypto(buf, false))
}
