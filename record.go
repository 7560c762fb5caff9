package rescue

import (
	"encoding/json"
	"fmt"
)

const (
	timestampBits = 32
	typeBits      = 1
	unkBits       = 1
	teamSlots     = 12
	teamCharBits  = 9
	dungeonBits   = 7
	floorBits     = 7
	pokemonBits   = 11
	genderBits    = 2
	rewardBits    = 2
	reviveBits    = 30

	// reviveMask keeps the low 30 bits of the rescue revive CRC.
	reviveMask = 1<<reviveBits - 1
)

var (
	_ json.Marshaler   = RecordType(0)
	_ json.Unmarshaler = (*RecordType)(nil)

	_ Record = (*RescueRecord)(nil)
	_ Record = (*RevivalRecord)(nil)
)

const (
	TypeRescue  = RecordType(0)
	TypeRevival = RecordType(1)
)

// RecordType discriminates the two password payload variants.
type RecordType int

func (t RecordType) Unknown() bool {
	return t != TypeRescue && t != TypeRevival
}

func (t RecordType) String() string {
	switch t {
	case TypeRescue:
		return "rescue"
	case TypeRevival:
		return "revival"
	}
	return fmt.Sprintf("RecordType(%d)", int(t))
}

func (t RecordType) MarshalJSON() ([]byte, error) {
	if t.Unknown() {
		return json.Marshal(int(t))
	}
	return json.Marshal(t.String())
}

func (t *RecordType) UnmarshalJSON(data []byte) error {
	var v int
	err := json.Unmarshal(data, &v)
	if err == nil {
		*t = RecordType(v)
		return nil
	}
	var s string
	err = json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	switch s {
	case "rescue":
		*t = TypeRescue
	case "revival", "revive":
		*t = TypeRevival
	default:
		return fmt.Errorf("unsupported record type value: %q", s)
	}
	return nil
}

// RecordBase carries the fields common to both password variants.
// Team holds up to 12 nine-bit character codes; unused trailing slots
// are zero on the wire. Checksum is the byte read from the password and
// CalcChecksum the one recomputed over the payload.
type RecordBase struct {
	Timestamp    uint32   `json:"timestamp"`
	Unk1         uint8    `json:"unk1"`
	Team         []uint16 `json:"team"`
	Checksum     byte     `json:"incl_checksum"`
	CalcChecksum byte     `json:"calc_checksum"`
}

// Valid reports whether the stored and recomputed checksums match.
func (b *RecordBase) Valid() bool {
	return b.Checksum == b.CalcChecksum
}

// Record is the decoded password payload: either a *RescueRecord or a
// *RevivalRecord.
type Record interface {
	Type() RecordType
	base() *RecordBase
	writeFields(w *bitWriter)
}

// RescueRecord is a request for help (type 0). Revive is not stored in
// the password bits; it is derived from a CRC over the password text
// and links the request to its answering revival password.
type RescueRecord struct {
	RecordBase
	Dungeon uint8  `json:"dungeon"`
	Floor   uint8  `json:"floor"`
	Pokemon uint16 `json:"pokemon"`
	Gender  uint8  `json:"gender"`
	Reward  uint8  `json:"reward"`
	Unk2    uint8  `json:"unk2"`
	Revive  uint32 `json:"revive"`
}

func (r *RescueRecord) Type() RecordType { return TypeRescue }
func (r *RescueRecord) base() *RecordBase {
	return &r.RecordBase
}

func (r *RescueRecord) writeFields(w *bitWriter) {
	writeBase(w, &r.RecordBase, TypeRescue)
	w.write(uint32(r.Dungeon), dungeonBits)
	w.write(uint32(r.Floor), floorBits)
	w.write(uint32(r.Pokemon), pokemonBits)
	w.write(uint32(r.Gender), genderBits)
	w.write(uint32(r.Reward), rewardBits)
	w.write(uint32(r.Unk2), unkBits)
}

// Revival builds the revival record answering this rescue: same team,
// the rescue's derived revive value, and a fresh timestamp.
func (r *RescueRecord) Revival(timestamp uint32) *RevivalRecord {
	team := append([]uint16(nil), r.Team...)
	return &RevivalRecord{
		RecordBase: RecordBase{Timestamp: timestamp, Team: team},
		Revive:     r.Revive,
	}
}

func (r *RescueRecord) MarshalJSON() ([]byte, error) {
	type rescueRecord RescueRecord
	return json.Marshal(struct {
		Type RecordType `json:"type"`
		*rescueRecord
	}{TypeRescue, (*rescueRecord)(r)})
}

// RevivalRecord is the answer to a rescue (type 1), carrying the revive
// value directly in the password bits.
type RevivalRecord struct {
	RecordBase
	Revive uint32 `json:"revive"`
}

func (r *RevivalRecord) Type() RecordType { return TypeRevival }
func (r *RevivalRecord) base() *RecordBase {
	return &r.RecordBase
}

func (r *RevivalRecord) writeFields(w *bitWriter) {
	writeBase(w, &r.RecordBase, TypeRevival)
	w.write(r.Revive, reviveBits)
}

func (r *RevivalRecord) MarshalJSON() ([]byte, error) {
	type revivalRecord RevivalRecord
	return json.Marshal(struct {
		Type RecordType `json:"type"`
		*revivalRecord
	}{TypeRevival, (*revivalRecord)(r)})
}

// MarshalRecord serializes a record to the flat JSON interchange form,
// with a "type" discriminator alongside the fields.
func MarshalRecord(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "\t")
}

// UnmarshalRecord parses the JSON interchange form produced by
// MarshalRecord, picking the variant from the "type" field.
func UnmarshalRecord(data []byte) (Record, error) {
	var probe struct {
		Type RecordType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case TypeRescue:
		var r RescueRecord
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case TypeRevival:
		var r RevivalRecord
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	return nil, fmt.Errorf("unsupported record type value: %d", int(probe.Type))
}

func writeBase(w *bitWriter, b *RecordBase, typ RecordType) {
	w.write(b.Timestamp, timestampBits)
	w.write(uint32(typ), typeBits)
	w.write(uint32(b.Unk1), unkBits)
	for i := 0; i < teamSlots; i++ {
		var c uint16
		if i < len(b.Team) {
			c = b.Team[i]
		}
		w.write(uint32(c), teamCharBits)
	}
}

// decodeFields parses the serialized record that follows the checksum
// byte. It never fails: short input reads as zero bits.
func decodeFields(r *bitReader) Record {
	var b RecordBase
	b.Timestamp = r.read(timestampBits)
	typ := RecordType(r.read(typeBits))
	b.Unk1 = uint8(r.read(unkBits))
	b.Team = make([]uint16, teamSlots)
	for i := range b.Team {
		b.Team[i] = uint16(r.read(teamCharBits))
	}
	if typ == TypeRescue {
		return &RescueRecord{
			RecordBase: b,
			Dungeon:    uint8(r.read(dungeonBits)),
			Floor:      uint8(r.read(floorBits)),
			Pokemon:    uint16(r.read(pokemonBits)),
			Gender:     uint8(r.read(genderBits)),
			Reward:     uint8(r.read(rewardBits)),
			Unk2:       uint8(r.read(unkBits)),
		}
	}
	return &RevivalRecord{
		RecordBase: b,
		Revive:     r.read(reviveBits),
	}
}
