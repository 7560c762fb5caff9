package rescue

// bitWriter packs values into a little-endian bitstream and emits
// width-bit digits as they complete.
type bitWriter struct {
	width uint

	digits []byte
	bits   int
	value  uint64
}

func newBitWriter(width uint) *bitWriter {
	return &bitWriter{width: width}
}

// write appends the low n bits of v to the stream.
func (w *bitWriter) write(v uint32, n int) {
	w.value |= (uint64(v) & (uint64(1)<<uint(n) - 1)) << uint(w.bits)
	w.bits += n
	for w.bits >= int(w.width) {
		w.digits = append(w.digits, byte(w.value&(uint64(1)<<w.width-1)))
		w.value >>= w.width
		w.bits -= int(w.width)
	}
}

// finish flushes a final partial digit, zero-padded in the high bits,
// and returns the completed digit sequence.
func (w *bitWriter) finish() []byte {
	if w.bits > 0 {
		w.digits = append(w.digits, byte(w.value&(uint64(1)<<w.width-1)))
		w.bits = 0
		w.value = 0
	}
	return w.digits
}
