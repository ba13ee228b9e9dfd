package melee

// Action state IDs 0x000 through 0x154 are shared by every character.
// Character-specific states occupy IDs immediately above that range, with a
// per-character count.
const maxCommonState uint16 = 0x154

// A few shared states referenced by name elsewhere.
const (
	StateDeadDown     uint16 = 0x000
	StateSleep        uint16 = 0x00C
	StateWait         uint16 = 0x00E
	StateGuard        uint16 = 0x0B3
	StateRebirth      uint16 = 0x00B
	StateEntryStart   uint16 = 0x142
	StateCaptureYoshi uint16 = 0x14B
)

// specificStates counts the character-specific action states above the
// shared range. Characters absent from the table have none.
var specificStates = map[Character]uint16{
	CaptainFalcon: 25,
	DonkeyKong:    29,
	Fox:           30,
	GameAndWatch:  40,
	Kirby:         200,
	Bowser:        25,
	Link:          23,
	Luigi:         18,
	Mario:         12,
	Marth:         15,
	Mewtwo:        25,
	Ness:          25,
	Peach:         21,
	Pikachu:       15,
	IceClimbers:   21,
	Jigglypuff:    22,
	Samus:         16,
	Yoshi:         16,
	Zelda:         9,
	Sheik:         16,
	Falco:         30,
	YoungLink:     23,
	DrMario:       12,
	Roy:           15,
	Pichu:         15,
	Ganondorf:     25,
	Popo:          21,
}

// KnownState reports whether an action state ID is defined for the given
// character. Shared states are valid for everyone; the character-specific
// band depends on who is acting.
func KnownState(id uint16, ch Character) bool {
	if id <= maxCommonState {
		return true
	}
	return id-maxCommonState-1 < specificStates[ch]
}
