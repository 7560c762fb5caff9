package rescue

import (
	"fmt"
	"strings"
)

// The password alphabet: for each suit (fire, heart, water, emerald, star)
// the ranks 1-9, P, M, D, X -- except X-star, which the game never uses.
// That leaves exactly 64 symbols, one per 6-bit value.
const (
	alphabetSize    = 64
	PasswordSymbols = 30
	passwordChars   = PasswordSymbols * 2
)

var (
	alphabet      [alphabetSize]string
	alphabetIndex = make(map[string]Symbol, alphabetSize)
)

func init() {
	i := 0
	for _, suit := range []byte("FHWES") {
		for _, rank := range []byte("123456789PMDX") {
			if suit == 'S' && rank == 'X' {
				continue
			}
			s := string([]byte{rank, suit})
			alphabet[i] = s
			alphabetIndex[s] = Symbol(i)
			i++
		}
	}
}

// Symbol is one two-character password glyph, stored as its alphabet
// index 0-63. Symbols compare equal iff their indices are equal.
type Symbol uint8

// ParseSymbol parses a two-character symbol like "3h" or "Xe",
// case-insensitively.
func ParseSymbol(text string) (Symbol, error) {
	s, ok := alphabetIndex[strings.ToUpper(text)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, text)
	}
	return s, nil
}

// Index reports the symbol's alphabet position.
func (s Symbol) Index() int { return int(s) }

func (s Symbol) String() string {
	if int(s) >= alphabetSize {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return alphabet[s]
}

// Next returns the following symbol, wrapping at the end of the alphabet.
func (s Symbol) Next() Symbol {
	return Symbol((int(s) + 1) % alphabetSize)
}

// Prev returns the preceding symbol, wrapping at the start of the alphabet.
func (s Symbol) Prev() Symbol {
	return Symbol((int(s) + alphabetSize - 1) % alphabetSize)
}

// Password is the 30-symbol sequence a player types in.
type Password [PasswordSymbols]Symbol

// ParsePassword parses a 60-character password string as 30 consecutive
// two-character symbols, case-insensitively.
func ParsePassword(text string) (Password, error) {
	var p Password
	if len(text) != passwordChars {
		return p, fmt.Errorf("%w: got %d characters", ErrInvalidLength, len(text))
	}
	for i := range p {
		s, err := ParseSymbol(text[2*i : 2*i+2])
		if err != nil {
			return p, err
		}
		p[i] = s
	}
	return p, nil
}

// PasswordFromIndices builds a password from 30 alphabet indices.
func PasswordFromIndices(indices []int) (Password, error) {
	var p Password
	if len(indices) != PasswordSymbols {
		return p, fmt.Errorf("%w: got %d symbols", ErrInvalidLength, len(indices))
	}
	for i, v := range indices {
		if v < 0 || v >= alphabetSize {
			return p, fmt.Errorf("%w: index %d", ErrInvalidSymbol, v)
		}
		p[i] = Symbol(v)
	}
	return p, nil
}

func passwordFromDigits(digits []byte) Password {
	var p Password
	for i := range p {
		p[i] = Symbol(digits[i])
	}
	return p
}

func (p Password) String() string {
	var b strings.Builder
	b.Grow(passwordChars)
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// WithSymbol returns a copy of the password with the symbol at index i
// replaced.
func (p Password) WithSymbol(i int, s Symbol) Password {
	p[i] = s
	return p
}

func (p Password) digits() []byte {
	out := make([]byte, PasswordSymbols)
	for i, s := range p {
		out[i] = byte(s)
	}
	return out
}
