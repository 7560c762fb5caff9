package rescue

// applyCrypto transforms the payload of a raw password buffer with the
// generator keystream. The first two bytes are the plaintext seed and
// pass through untouched; every later byte has one generator draw
// subtracted from it (decryption) or added to it (encryption), mod 256.
//
// The final byte is masked down to the bits that survive the 6-bit
// repacking: the 6-to-8 expansion pads the tail with zeros, and leaving
// keystream residue in those bits would corrupt the last digit when the
// buffer is contracted back to 6-bit digits.
func applyCrypto(code []byte, encrypt bool) []byte {
	out := make([]byte, len(code))
	out[0], out[1] = code[0], code[1]
	gen := newGenerator(int32(code[0]) | int32(code[1])<<8)
	for i, x := range code[2:] {
		v := uint32(gen.next())
		if encrypt {
			v = -v
		}
		out[i+2] = byte(uint32(x) - v)
	}
	remain := 8 - (len(code)*8)%6
	out[len(out)-1] &= byte(1<<uint(remain) - 1)
	return out
}
