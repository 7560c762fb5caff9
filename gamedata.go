package rescue

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// GameData holds the read-only lookup tables extracted from the game:
// the password charmap, the text charmap for team names, and the
// dungeon/pokemon/gender/reward tables. The codec itself never needs it
// to move bits around; it is used to derive the rescue revive value and
// to render human-readable summaries.
type GameData struct {
	Charmap     []string       `json:"charmap"`
	CharmapText []string       `json:"charmap_text"`
	Dungeons    []DungeonEntry `json:"dungeons"`
	Pokemon     []TableEntry   `json:"pokemon"`
	Genders     []TableEntry   `json:"genders"`
	Rewards     []TableEntry   `json:"rewards"`

	textIndex map[string]uint16
}

// TableEntry is one row of a lookup table. Out-of-range lookups return
// a zero entry with Valid false.
type TableEntry struct {
	Const string `json:"const"`
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

type DungeonEntry struct {
	TableEntry
	Ascending bool `json:"ascending"`
	Floors    int  `json:"floors"`
}

// LoadGameData reads the game data tables from a JSON file in the
// gamedata.json layout.
func LoadGameData(path string) (*GameData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d GameData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &d, nil
}

// Dungeon looks up a dungeon by index.
func (d *GameData) Dungeon(i int) DungeonEntry {
	if d == nil || i < 0 || i >= len(d.Dungeons) {
		return DungeonEntry{}
	}
	return d.Dungeons[i]
}

// Lookup resolves an index in the named category table ("pokemon",
// "genders" or "rewards").
func (d *GameData) Lookup(category string, i int) TableEntry {
	if d == nil {
		return TableEntry{}
	}
	var table []TableEntry
	switch category {
	case "pokemon":
		table = d.Pokemon
	case "genders":
		table = d.Genders
	case "rewards":
		table = d.Rewards
	}
	if i < 0 || i >= len(table) {
		return TableEntry{}
	}
	return table[i]
}

// TeamName renders team character codes as text. Code 0 terminates;
// codes outside the text charmap render as "*".
func (d *GameData) TeamName(codes []uint16) string {
	var b strings.Builder
	for _, c := range codes {
		if c == 0 {
			break
		}
		if d != nil && int(c) < len(d.CharmapText) {
			b.WriteString(d.CharmapText[c])
		} else {
			b.WriteString("*")
		}
	}
	return b.String()
}

// TeamCodes converts a team name to character codes for encoding.
func (d *GameData) TeamCodes(name string) ([]uint16, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: no character map loaded", ErrUnencodableCharacter)
	}
	if d.textIndex == nil {
		d.textIndex = make(map[string]uint16, len(d.CharmapText))
		for i, s := range d.CharmapText {
			if i == 0 || s == "" {
				continue
			}
			if _, ok := d.textIndex[s]; !ok {
				d.textIndex[s] = uint16(i)
			}
		}
	}
	var codes []uint16
	for _, r := range name {
		c, ok := d.textIndex[string(r)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnencodableCharacter, r)
		}
		codes = append(codes, c)
	}
	if len(codes) > teamSlots {
		codes = codes[:teamSlots]
	}
	return codes, nil
}

// transliterate maps password symbols through the charmap, producing
// the text the rescue revive CRC is computed over.
func (d *GameData) transliterate(p Password) (string, bool) {
	if d == nil || len(d.Charmap) < alphabetSize {
		return "", false
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteString(d.Charmap[s.Index()])
	}
	return b.String(), true
}

// Describe renders a record as a human-readable summary. Fields whose
// game-data lookup is out of range or marked invalid are annotated with
// "(!)"; a nil GameData degrades to numeric output.
func Describe(rec Record, data *GameData) string {
	b := rec.base()
	var out strings.Builder

	fmt.Fprintf(&out, "Checksum: 0x%02X (calculated: 0x%02X)\n", b.Checksum, b.CalcChecksum)
	fmt.Fprintf(&out, "Timestamp: %s\n", time.Unix(int64(b.Timestamp), 0).UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&out, "Revive: %v\n", rec.Type() == TypeRevival)
	fmt.Fprintf(&out, "Unk1: 0x%X\n", b.Unk1)
	fmt.Fprintf(&out, "Team Name: %s\n", data.TeamName(b.Team))

	switch r := rec.(type) {
	case *RescueRecord:
		dungeon := data.Dungeon(int(r.Dungeon))
		fmt.Fprintf(&out, "Dungeon (%d): %s%s\n", r.Dungeon, dungeon.Name, invalidMark(dungeon.Valid))

		floor := fmt.Sprintf("%dF", r.Floor)
		if !dungeon.Ascending {
			floor = "B" + floor
		}
		fmt.Fprintf(&out, "Floor: %s%s\n", floor, invalidMark(r.Floor != 0 && int(r.Floor) <= dungeon.Floors))

		pokemon := data.Lookup("pokemon", int(r.Pokemon))
		fmt.Fprintf(&out, "Pokemon (%d): %s%s\n", r.Pokemon, pokemon.Name, invalidMark(pokemon.Valid))

		gender := data.Lookup("genders", int(r.Gender))
		fmt.Fprintf(&out, "Gender: %s%s\n", gender.Name, invalidMark(gender.Valid))

		reward := data.Lookup("rewards", int(r.Reward))
		fmt.Fprintf(&out, "Reward: %s%s\n", reward.Name, invalidMark(reward.Valid))

		fmt.Fprintf(&out, "Unk2: 0x%X\n", r.Unk2)
		fmt.Fprintf(&out, "Revive value: 0x%08X\n", r.Revive)
	case *RevivalRecord:
		fmt.Fprintf(&out, "Revive value: 0x%08X\n", r.Revive)
	}
	return out.String()
}

func invalidMark(valid bool) string {
	if valid {
		return ""
	}
	return " (!)"
}
