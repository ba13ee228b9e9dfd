package slp

import (
	"fmt"

	"github.com/danmuck/slpcheck/internal/melee"
)

// ItemFrame is one item's state for one frame. A frame carries zero or more
// of these, up to the engine cap of 15 live items.
type ItemFrame struct {
	FrameIndex      int32
	Type            melee.Item
	State           uint8
	Orientation     float32
	Velocity        melee.Velocity
	Position        melee.Position
	DamageTaken     uint16
	ExpirationTimer float32
	// SpawnID distinguishes items of the same type alive at once.
	SpawnID uint32

	MissileType Opt[uint8]
	TurnipType  Opt[uint8]
	Launched    Opt[bool]
	ChargePower Opt[uint8]
	Owner       Opt[int8]
	InstanceID  Opt[uint16]
}

func decodeItemFrame(buf []byte, v Version, d *Diag) (ItemFrame, error) {
	w := newWindow(buf)
	f := readItemFrame(w, v)
	if w.err != nil {
		return f, fmt.Errorf("item update: %w", w.err)
	}
	f.validate(d)
	return f, nil
}

func readItemFrame(w *window, v Version) ItemFrame {
	f := ItemFrame{
		FrameIndex:      w.i32(),
		Type:            melee.Item(w.u16()),
		State:           w.u8(),
		Orientation:     w.f32(),
		Velocity:        melee.Velocity{X: w.f32(), Y: w.f32()},
		Position:        melee.Position{X: w.f32(), Y: w.f32()},
		DamageTaken:     w.u16(),
		ExpirationTimer: w.f32(),
		SpawnID:         w.u32(),
	}

	if !v.AtLeast(3, 2, 0) {
		return f
	}
	f.MissileType = opt(w.u8())
	f.TurnipType = opt(w.u8())
	f.Launched = opt(w.u8() != 0)
	f.ChargePower = opt(w.u8())

	if !v.AtLeast(3, 6, 0) {
		return f
	}
	f.Owner = opt(w.i8())

	if !v.AtLeast(3, 16, 0) {
		return f
	}
	f.InstanceID = opt(w.u16())

	return f
}

func (f *ItemFrame) validate(d *Diag) {
	if !f.Type.Known() {
		d.Warn().Int32("frame", f.FrameIndex).Uint16("item", uint16(f.Type)).
			Msg("invalid item id")
	}
}
