package rescue

// bitReader reinterprets a sequence of width-bit digits as a
// little-endian bitstream. Bits are delivered least-significant-first;
// reads past the end of the input yield zero bits, so callers are
// responsible for tracking the total bit length themselves.
type bitReader struct {
	digits []byte
	width  uint

	pos   int
	bits  int
	value uint64
}

func newBitReader(digits []byte, width uint) *bitReader {
	return &bitReader{digits: digits, width: width}
}

// remaining reports whether unread digits or buffered bits are left.
func (r *bitReader) remaining() bool {
	return r.pos < len(r.digits) || r.bits > 0
}

// read returns the next n bits as the low bits of the result.
func (r *bitReader) read(n int) uint32 {
	mask := uint64(1)<<r.width - 1
	for r.bits < n && r.pos < len(r.digits) {
		r.value |= (uint64(r.digits[r.pos]) & mask) << uint(r.bits)
		r.bits += int(r.width)
		r.pos++
	}
	ret := uint32(r.value & (uint64(1)<<uint(n) - 1))
	r.value >>= uint(n)
	r.bits -= n
	return ret
}

// repack reinterprets a sequence of from-bit digits as a sequence of
// to-bit digits through a single bitstream. The tail is zero-padded when
// the total bit count does not divide evenly, so the last digit of the
// result may carry padding bits.
func repack(digits []byte, from, to uint) []byte {
	r := newBitReader(digits, from)
	out := make([]byte, 0, (len(digits)*int(from)+int(to)-1)/int(to))
	for r.remaining() {
		out = append(out, byte(r.read(int(to))))
	}
	return out
}
