package melee

import "fmt"

// Attack is the "last attack landed" move ID carried by post-frame records.
type Attack uint8

const (
	AttackNone Attack = 0x00
	// 0x01 is the non-staling placeholder the engine writes for hits that
	// do not enter the stale-move queue.
	AttackNonStaling   Attack = 0x01
	AttackJab1         Attack = 0x02
	AttackJab2         Attack = 0x03
	AttackJab3         Attack = 0x04
	AttackRapidJabs    Attack = 0x05
	AttackDashAttack   Attack = 0x06
	AttackFTilt        Attack = 0x07
	AttackUTilt        Attack = 0x08
	AttackDTilt        Attack = 0x09
	AttackFSmash       Attack = 0x0A
	AttackUSmash       Attack = 0x0B
	AttackDSmash       Attack = 0x0C
	AttackNair         Attack = 0x0D
	AttackFair         Attack = 0x0E
	AttackBair         Attack = 0x0F
	AttackUair         Attack = 0x10
	AttackDair         Attack = 0x11
	AttackNeutralB     Attack = 0x12
	AttackSideB        Attack = 0x13
	AttackUpB          Attack = 0x14
	AttackDownB        Attack = 0x15
	AttackGetupBack    Attack = 0x32
	AttackGetupFront   Attack = 0x33
	AttackPummel       Attack = 0x34
	AttackFThrow       Attack = 0x35
	AttackBThrow       Attack = 0x36
	AttackUThrow       Attack = 0x37
	AttackDThrow       Attack = 0x38
	AttackCargoFThrow  Attack = 0x39
	AttackCargoBThrow  Attack = 0x3A
	AttackCargoUThrow  Attack = 0x3B
	AttackCargoDThrow  Attack = 0x3C
	AttackLedgeSlow    Attack = 0x3D
	AttackLedgeQuick   Attack = 0x3E
	maxAttack          Attack = AttackLedgeQuick
)

// Known reports whether a falls inside the defined move table. The band
// between the specials and the getup attacks holds Kirby copy-ability
// moves, all of which are valid.
func (a Attack) Known() bool {
	return a <= maxAttack
}

var attackNames = map[Attack]string{
	AttackNone:        "none",
	AttackNonStaling:  "non-staling",
	AttackJab1:        "jab 1",
	AttackJab2:        "jab 2",
	AttackJab3:        "jab 3",
	AttackRapidJabs:   "rapid jabs",
	AttackDashAttack:  "dash attack",
	AttackFTilt:       "forward tilt",
	AttackUTilt:       "up tilt",
	AttackDTilt:       "down tilt",
	AttackFSmash:      "forward smash",
	AttackUSmash:      "up smash",
	AttackDSmash:      "down smash",
	AttackNair:        "neutral air",
	AttackFair:        "forward air",
	AttackBair:        "back air",
	AttackUair:        "up air",
	AttackDair:        "down air",
	AttackNeutralB:    "neutral special",
	AttackSideB:       "side special",
	AttackUpB:         "up special",
	AttackDownB:       "down special",
	AttackGetupBack:   "getup attack (back)",
	AttackGetupFront:  "getup attack (front)",
	AttackPummel:      "pummel",
	AttackFThrow:      "forward throw",
	AttackBThrow:      "back throw",
	AttackUThrow:      "up throw",
	AttackDThrow:      "down throw",
	AttackCargoFThrow: "cargo forward throw",
	AttackCargoBThrow: "cargo back throw",
	AttackCargoUThrow: "cargo up throw",
	AttackCargoDThrow: "cargo down throw",
	AttackLedgeSlow:   "ledge attack (slow)",
	AttackLedgeQuick:  "ledge attack (quick)",
}

func (a Attack) String() string {
	if n, ok := attackNames[a]; ok {
		return n
	}
	if a.Known() {
		return fmt.Sprintf("copy-ability attack (0x%02X)", uint8(a))
	}
	return fmt.Sprintf("unknown attack (0x%02X)", uint8(a))
}
