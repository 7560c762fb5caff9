// Package rescue implements the rescue password codec of Pokemon
// Mystery Dungeon: Rescue Team DX: the reversible transform between a
// 30-symbol typeable password and the rescue/revival record it encodes.
//
// A password decodes in five steps: the symbols are mapped to 6-bit
// alphabet indices, unshuffled with a fixed permutation, repacked into
// 8-bit bytes, decrypted with a keystream seeded from the first two
// bytes, and finally split into a checksum byte plus a bit-packed field
// payload. Encoding runs the same pipeline in reverse.
package rescue

import (
	"errors"
	"fmt"
	"hash/crc32"
)

const pkg = "rescue"

var (
	// ErrInvalidLength means the password text is not exactly 60 characters.
	ErrInvalidLength = errors.New(pkg + ": invalid password length")
	// ErrInvalidSymbol means a two-character group is not in the alphabet.
	ErrInvalidSymbol = errors.New(pkg + ": invalid symbol")
	// ErrChecksumMismatch means the stored checksum byte does not match
	// the one recomputed over the payload. Decoding still completes; the
	// record returned alongside this error is the best-effort result.
	ErrChecksumMismatch = errors.New(pkg + ": checksum mismatch")
	// ErrUnencodableCharacter means a team name character is not present
	// in the game's text character map.
	ErrUnencodableCharacter = errors.New(pkg + ": unencodable character")
)

// Codec converts between password text and records. The zero value (or
// NewCodec(nil)) works for all bit-level operations; game data is only
// needed to derive the rescue revive value and render summaries.
type Codec struct {
	data *GameData
}

func NewCodec(data *GameData) *Codec {
	return &Codec{data: data}
}

// GameData returns the lookup tables the codec was built with, if any.
func (c *Codec) GameData() *GameData { return c.data }

// Decode parses and decodes a 60-character password. On checksum
// mismatch it returns both the decoded record and ErrChecksumMismatch,
// so callers can still inspect suspect input.
func (c *Codec) Decode(text string) (Record, error) {
	p, err := ParsePassword(text)
	if err != nil {
		return nil, err
	}
	return c.DecodePassword(p)
}

// DecodePassword decodes an already-parsed password.
func (c *Codec) DecodePassword(p Password) (Record, error) {
	buf := repack(unshuffle(p.digits()), 6, 8)
	buf = applyCrypto(buf, false)

	payload := buf[1:]
	rec := decodeFields(newBitReader(payload, 8))
	b := rec.base()
	b.Checksum = buf[0]
	b.CalcChecksum = checksum(payload)

	if r, ok := rec.(*RescueRecord); ok {
		r.Revive, _ = c.ReviveValue(p)
	}
	if !b.Valid() {
		return rec, fmt.Errorf("%w: stored 0x%02X, calculated 0x%02X",
			ErrChecksumMismatch, b.Checksum, b.CalcChecksum)
	}
	return rec, nil
}

// Encode serializes a record back to password text. With keepChecksum
// the record's stored checksum byte is written verbatim; otherwise the
// checksum is recomputed over the serialized payload.
func (c *Codec) Encode(rec Record, keepChecksum bool) (string, error) {
	w := newBitWriter(8)
	rec.writeFields(w)
	payload := w.finish()

	sum := checksum(payload)
	if keepChecksum {
		sum = rec.base().Checksum
	}

	buf := make([]byte, 0, len(payload)+1)
	buf = append(buf, sum)
	buf = append(buf, payload...)
	buf = applyCrypto(buf, true)

	// The 8-to-6 repack emits one trailing digit of pure padding.
	digits := repack(buf, 8, 6)[:PasswordSymbols]
	return passwordFromDigits(shuffle(digits)).String(), nil
}

// ReviveValue derives the 30-bit revive value of a rescue password: a
// CRC32 over the charmap transliteration of the password text. It
// reports false when no charmap is available.
func (c *Codec) ReviveValue(p Password) (uint32, bool) {
	text, ok := c.data.transliterate(p)
	if !ok {
		return 0, false
	}
	return crc32.ChecksumIEEE([]byte(text)) & reviveMask, true
}
