package rescue

// checksum computes the 8-bit integrity byte over the serialized record
// (excluding the checksum byte itself): the first byte plus each
// little-endian 16-bit pair of the rest, plus the trailing byte when the
// length is even, folded down to 8 bits and complemented.
func checksum(code []byte) byte {
	calc := uint32(code[0])
	limit := (len(code) - 1) / 2 * 2
	for x := 1; x < limit; x += 2 {
		calc += uint32(code[x]) | uint32(code[x+1])<<8
	}
	if len(code)%2 == 0 {
		calc += uint32(code[len(code)-1])
	}
	calc = (calc >> 16 & 0xFFFF) + (calc & 0xFFFF)
	calc += calc >> 16
	calc = (calc >> 8 & 0xFF) + (calc & 0xFF)
	calc += calc >> 8
	return byte(calc) ^ 0xFF
}
