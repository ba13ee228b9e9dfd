package slp

import (
	"fmt"

	"github.com/danmuck/slpcheck/internal/melee"
)

// PlayerKind is the slot occupancy type from the game-start block.
type PlayerKind uint8

const (
	PlayerHuman PlayerKind = iota
	PlayerCPU
	PlayerDemo
	PlayerEmpty
)

func (k PlayerKind) String() string {
	switch k {
	case PlayerHuman:
		return "human"
	case PlayerCPU:
		return "cpu"
	case PlayerDemo:
		return "demo"
	case PlayerEmpty:
		return "empty"
	default:
		return fmt.Sprintf("invalid kind (%d)", uint8(k))
	}
}

// Active reports whether the slot produces frame records.
func (k PlayerKind) Active() bool {
	return k == PlayerHuman || k == PlayerCPU
}

// TeamShade is the costume shade used when two teammates share a character.
type TeamShade uint8

const (
	ShadeNormal TeamShade = iota
	ShadeLight
	ShadeDark
)

// TeamID is the team color in teams mode.
type TeamID uint8

const (
	TeamRed TeamID = iota
	TeamBlue
	TeamGreen
)

// ControllerFix is a per-input Universal Controller Fix setting.
type ControllerFix uint8

const (
	FixOff ControllerFix = iota
	FixUCF
	FixDween
)

// UCFToggles holds the controller-fix settings for one player.
type UCFToggles struct {
	Dashback   ControllerFix
	ShieldDrop ControllerFix
}

// Player is one roster slot from the game-start block.
type Player struct {
	Port      melee.Port
	Kind      PlayerKind
	Character melee.Character
	Stocks    uint8
	Costume   uint8
	Shade     TeamShade
	Handicap  uint8
	Team      TeamID
	Bitfield  uint8
	CPULevel  uint8

	DamageStart  uint16
	DamageSpawn  uint16
	OffenseRatio float32
	DefenseRatio float32
	ModelScale   float32

	UCF         Opt[UCFToggles]
	DisplayName Opt[string]
	ConnectCode Opt[string]
}

// LegalSettings reports whether the slot uses standard tournament settings:
// a human on a playable character with four stocks, no handicap, no rule
// modifiers, and no pre-set damage. Empty slots pass.
func (p Player) LegalSettings() bool {
	if p.Kind == PlayerEmpty {
		return true
	}
	switch p.Character {
	case melee.MasterHand, melee.GigaBowser, melee.WireframeMale, melee.WireframeFemale:
		return false
	}
	return p.Kind == PlayerHuman &&
		p.Stocks == 4 &&
		p.Handicap == 0 &&
		p.Bitfield>>1 == 0 &&
		p.DamageStart == 0 &&
		p.DamageSpawn == 0
}
