package rescue

// shuffleTable maps serialization order to on-wire order: digit i of the
// serialized code appears at position shuffleTable[i] of the password.
var shuffleTable = [PasswordSymbols]int{
	3, 27, 13, 21, 12, 9, 7, 4, 6, 17, 19, 16, 28, 29, 23,
	20, 11, 0, 1, 22, 24, 14, 8, 2, 15, 25, 10, 5, 18, 26,
}

// shuffle scatters serialized digits into on-wire order (encoding).
func shuffle(code []byte) []byte {
	out := make([]byte, PasswordSymbols)
	for i, p := range shuffleTable {
		out[p] = code[i]
	}
	return out
}

// unshuffle recovers serialization order from on-wire order (decoding).
func unshuffle(code []byte) []byte {
	out := make([]byte, PasswordSymbols)
	for i, p := range shuffleTable {
		out[i] = code[p]
	}
	return out
}
