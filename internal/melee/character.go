package melee

import "fmt"

// Character is an external character ID as used on the character select
// screen and in game-start player blocks.
type Character uint8

const (
	CaptainFalcon Character = iota
	DonkeyKong
	Fox
	GameAndWatch
	Kirby
	Bowser
	Link
	Luigi
	Mario
	Marth
	Mewtwo
	Ness
	Peach
	Pikachu
	IceClimbers
	Jigglypuff
	Samus
	Yoshi
	Zelda
	Sheik
	Falco
	YoungLink
	DrMario
	Roy
	Pichu
	Ganondorf
	MasterHand
	WireframeMale
	WireframeFemale
	GigaBowser
	CrazyHand
	Sandbag
	Popo
)

var characterNames = [...]string{
	CaptainFalcon:   "Captain Falcon",
	DonkeyKong:      "Donkey Kong",
	Fox:             "Fox",
	GameAndWatch:    "Game and Watch",
	Kirby:           "Kirby",
	Bowser:          "Bowser",
	Link:            "Link",
	Luigi:           "Luigi",
	Mario:           "Mario",
	Marth:           "Marth",
	Mewtwo:          "Mewtwo",
	Ness:            "Ness",
	Peach:           "Peach",
	Pikachu:         "Pikachu",
	IceClimbers:     "Ice Climbers",
	Jigglypuff:      "Jigglypuff",
	Samus:           "Samus",
	Yoshi:           "Yoshi",
	Zelda:           "Zelda",
	Sheik:           "Sheik",
	Falco:           "Falco",
	YoungLink:       "Young Link",
	DrMario:         "Dr. Mario",
	Roy:             "Roy",
	Pichu:           "Pichu",
	Ganondorf:       "Ganondorf",
	MasterHand:      "Master Hand",
	WireframeMale:   "Male Wireframe",
	WireframeFemale: "Female Wireframe",
	GigaBowser:      "Giga Bowser",
	CrazyHand:       "Crazy Hand",
	Sandbag:         "Sandbag",
	Popo:            "Popo",
}

// Known reports whether c is a defined external character ID.
func (c Character) Known() bool {
	return int(c) < len(characterNames)
}

func (c Character) String() string {
	if c.Known() {
		return characterNames[c]
	}
	return fmt.Sprintf("unknown character (%d)", uint8(c))
}

// TransformCounterpart returns the alternate form a character can swap to
// mid-game, if it has one.
func (c Character) TransformCounterpart() (Character, bool) {
	switch c {
	case Zelda:
		return Sheik, true
	case Sheik:
		return Zelda, true
	default:
		return 0, false
	}
}

// InternalCharacter is the in-engine character ID carried by post-frame
// records. The numbering differs from the external table.
type InternalCharacter uint8

// InternalNana is the Ice Climbers follower. It has no external ID of its
// own; follower records are the only place it appears.
const InternalNana InternalCharacter = 11

var internalToExternal = [...]Character{
	0:  Mario,
	1:  Fox,
	2:  CaptainFalcon,
	3:  DonkeyKong,
	4:  Kirby,
	5:  Bowser,
	6:  Link,
	7:  Sheik,
	8:  Ness,
	9:  Peach,
	10: IceClimbers, // leader climber; shares the Ice Climbers state tables
	11: IceClimbers, // follower climber (Nana), same tables
	12: Pikachu,
	13: Samus,
	14: Yoshi,
	15: Jigglypuff,
	16: Mewtwo,
	17: Luigi,
	18: Marth,
	19: Zelda,
	20: YoungLink,
	21: DrMario,
	22: Falco,
	23: Pichu,
	24: GameAndWatch,
	25: Ganondorf,
	26: Roy,
	27: MasterHand,
	28: CrazyHand,
	29: WireframeMale,
	30: WireframeFemale,
	31: GigaBowser,
	32: Sandbag,
}

// External maps an internal ID onto the external character table.
func (ic InternalCharacter) External() (Character, bool) {
	if int(ic) >= len(internalToExternal) {
		return 0, false
	}
	return internalToExternal[ic], true
}

func (ic InternalCharacter) String() string {
	if ic == InternalNana {
		return "Nana"
	}
	if ext, ok := ic.External(); ok {
		return ext.String()
	}
	return fmt.Sprintf("unknown internal character (%d)", uint8(ic))
}
