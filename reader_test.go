package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReaderExpand(t *testing.T) {
	// Four 6-bit digits become three 8-bit bytes:
	// [0b000011, 0b110101, 0b111100, 0b100010] -> [0x43, 0xCD, 0x8B].
	r := newBitReader([]byte{3, 53, 60, 34}, 6)
	require.True(t, r.remaining())
	require.Equal(t, uint32(0x43), r.read(8))
	require.Equal(t, uint32(0xCD), r.read(8))
	require.Equal(t, uint32(0x8B), r.read(8))
	require.False(t, r.remaining())
}

func TestBitReaderZeroFillPastEnd(t *testing.T) {
	r := newBitReader([]byte{0xFF}, 8)
	require.Equal(t, uint32(0xFF), r.read(8))
	require.Equal(t, uint32(0), r.read(8))
	require.Equal(t, uint32(0), r.read(32))
	require.False(t, r.remaining())
}

func TestBitReaderWideRead(t *testing.T) {
	r := newBitReader([]byte{0x78, 0x56, 0x34, 0x12, 0xFF}, 8)
	require.Equal(t, uint32(0x12345678), r.read(32))
	require.Equal(t, uint32(0xFF), r.read(8))
}

func TestBitWriter(t *testing.T) {
	w := newBitWriter(8)
	w.write(0x12345678, 32)
	w.write(1, 1)
	w.write(0, 1)
	w.write(0x1FF, 9)
	out := w.finish()
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12, 0xFD, 0x07}, out)
}

func TestBitWriterFinishPadsHighBits(t *testing.T) {
	w := newBitWriter(6)
	w.write(0xFF, 4)
	require.Equal(t, []byte{0x0F}, w.finish())
}

func TestRepack(t *testing.T) {
	require.Equal(t, []byte{0x43, 0xCD, 0x8B}, repack([]byte{3, 53, 60, 34}, 6, 8))
	require.Equal(t, []byte{3, 53, 60, 34}, repack([]byte{0x43, 0xCD, 0x8B}, 8, 6))
}

func TestRepackRoundTrip(t *testing.T) {
	// Any digit count whose total bits divide by both 6 and 8 round-trips
	// without padding loss.
	digits := make([]byte, 24)
	for i := range digits {
		digits[i] = byte((i*11 + 5) % 64)
	}
	require.Equal(t, digits, repack(repack(digits, 6, 8), 8, 6))
}

func TestRepackPadding(t *testing.T) {
	// 30 six-bit digits expand to 23 bytes; the last byte holds only
	// 4 meaningful bits.
	digits := make([]byte, PasswordSymbols)
	for i := range digits {
		digits[i] = 63
	}
	out := repack(digits, 6, 8)
	require.Len(t, out, 23)
	require.Equal(t, byte(0x0F), out[22])
}
