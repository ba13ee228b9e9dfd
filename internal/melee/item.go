package melee

import "fmt"

// Item is the item type ID carried by item-update records. The table covers
// regular items, containers, monsters, stage hazards, and character
// projectiles.
type Item uint16

const maxItem Item = 0xD4

// A subset of the table referenced by name. Projectiles and hazards above
// the regular-item band are validated by range only.
const (
	ItemCapsule        Item = 0x00
	ItemBox            Item = 0x01
	ItemBarrel         Item = 0x02
	ItemEgg            Item = 0x03
	ItemPartyBall      Item = 0x04
	ItemBarrelCannon   Item = 0x05
	ItemBobOmb         Item = 0x06
	ItemMrSaturn       Item = 0x07
	ItemHeartContainer Item = 0x08
	ItemMaximTomato    Item = 0x09
	ItemStarman        Item = 0x0A
	ItemHomeRunBat     Item = 0x0B
	ItemBeamSword      Item = 0x0C
	ItemParasol        Item = 0x0D
	ItemGreenShell     Item = 0x0E
	ItemRedShell       Item = 0x0F
	ItemRayGun         Item = 0x10
	ItemFreezie        Item = 0x11
	ItemFood           Item = 0x12
	ItemProxMine       Item = 0x13
	ItemFlipper        Item = 0x14
	ItemSuperScope     Item = 0x15
	ItemStarRod        Item = 0x16
	ItemLipsStick      Item = 0x17
	ItemFan            Item = 0x18
	ItemFireFlower     Item = 0x19
	ItemSuperMushroom  Item = 0x1A
	ItemPoisonMushroom Item = 0x1B
	ItemHammer         Item = 0x1C
	ItemWarpStar       Item = 0x1D
	ItemScrewAttack    Item = 0x1E
	ItemBunnyHood      Item = 0x1F
	ItemMetalBox       Item = 0x20
	ItemCloakingDevice Item = 0x21
	ItemPokeBall       Item = 0x22
)

var itemNames = map[Item]string{
	ItemCapsule:        "capsule",
	ItemBox:            "box",
	ItemBarrel:         "barrel",
	ItemEgg:            "egg",
	ItemPartyBall:      "party ball",
	ItemBarrelCannon:   "barrel cannon",
	ItemBobOmb:         "bob-omb",
	ItemMrSaturn:       "mr. saturn",
	ItemHeartContainer: "heart container",
	ItemMaximTomato:    "maxim tomato",
	ItemStarman:        "starman",
	ItemHomeRunBat:     "home-run bat",
	ItemBeamSword:      "beam sword",
	ItemParasol:        "parasol",
	ItemGreenShell:     "green shell",
	ItemRedShell:       "red shell",
	ItemRayGun:         "ray gun",
	ItemFreezie:        "freezie",
	ItemFood:           "food",
	ItemProxMine:       "proximity mine",
	ItemFlipper:        "flipper",
	ItemSuperScope:     "super scope",
	ItemStarRod:        "star rod",
	ItemLipsStick:      "lip's stick",
	ItemFan:            "fan",
	ItemFireFlower:     "fire flower",
	ItemSuperMushroom:  "super mushroom",
	ItemPoisonMushroom: "poison mushroom",
	ItemHammer:         "hammer",
	ItemWarpStar:       "warp star",
	ItemScrewAttack:    "screw attack",
	ItemBunnyHood:      "bunny hood",
	ItemMetalBox:       "metal box",
	ItemCloakingDevice: "cloaking device",
	ItemPokeBall:       "poke ball",
}

// Known reports whether i falls inside the defined item table.
func (i Item) Known() bool {
	return i <= maxItem
}

func (i Item) String() string {
	if n, ok := itemNames[i]; ok {
		return n
	}
	if i.Known() {
		return fmt.Sprintf("item (0x%02X)", uint16(i))
	}
	return fmt.Sprintf("unknown item (0x%02X)", uint16(i))
}
