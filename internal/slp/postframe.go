package slp

import (
	"fmt"

	"github.com/danmuck/slpcheck/internal/melee"
)

// PostFrame is the engine-state snapshot taken after a player's step.
type PostFrame struct {
	FrameIndex   int32
	Port         melee.Port
	Follower     bool
	Character    melee.InternalCharacter
	State        uint16
	Position     melee.Position
	Orientation  float32
	Percent      float32
	ShieldHealth float32
	LastAttack   melee.Attack
	ComboCount   uint8
	LastHitBy    uint8
	Stocks       uint8

	StateAge        Opt[float32]
	Flags           Opt[uint64]
	MiscActionState Opt[float32]
	Grounded        Opt[bool]
	LastGroundID    Opt[uint16]
	JumpsRemaining  Opt[uint8]
	LCancel         Opt[uint8]
	HurtboxState    Opt[uint8]
	AirVelocity     Opt[melee.Velocity]
	Knockback       Opt[melee.Velocity]
	GroundVelocity  Opt[melee.Velocity]
	HitlagRemaining Opt[float32]
	AnimationIndex  Opt[uint32]
	InstanceHitBy   Opt[uint16]
	InstanceID      Opt[uint16]
}

func decodePostFrame(buf []byte, v Version, d *Diag) (PostFrame, error) {
	w := newWindow(buf)
	p := readPostFrame(w, v)
	if w.err != nil {
		return p, fmt.Errorf("post frame: %w", w.err)
	}
	p.validate(d)
	return p, nil
}

func readPostFrame(w *window, v Version) PostFrame {
	p := PostFrame{
		FrameIndex:   w.i32(),
		Port:         melee.Port(w.u8()),
		Follower:     w.u8() != 0,
		Character:    melee.InternalCharacter(w.u8()),
		State:        w.u16(),
		Position:     melee.Position{X: w.f32(), Y: w.f32()},
		Orientation:  w.f32(),
		Percent:      w.f32(),
		ShieldHealth: w.f32(),
		LastAttack:   melee.Attack(w.u8()),
		ComboCount:   w.u8(),
		LastHitBy:    w.u8(),
		Stocks:       w.u8(),
	}

	if !v.AtLeast(0, 2, 0) {
		return p
	}
	p.StateAge = opt(w.f32())

	if !v.AtLeast(2, 0, 0) {
		return p
	}
	// The state bitflags are five independent bytes, packed low-to-high.
	p.Flags = opt(uint64(w.u8()) |
		uint64(w.u8())<<8 |
		uint64(w.u8())<<16 |
		uint64(w.u8())<<24 |
		uint64(w.u8())<<32)
	p.MiscActionState = opt(w.f32())
	p.Grounded = opt(w.u8() == 0)
	p.LastGroundID = opt(w.u16())
	p.JumpsRemaining = opt(w.u8())
	p.LCancel = opt(w.u8())

	if !v.AtLeast(3, 1, 0) {
		return p
	}
	p.HurtboxState = opt(w.u8())

	if !v.AtLeast(3, 5, 0) {
		return p
	}
	air := melee.Velocity{X: w.f32(), Y: w.f32()}
	p.AirVelocity = opt(air)
	p.Knockback = opt(melee.Velocity{X: w.f32(), Y: w.f32()})
	// ground speed reuses the air Y component; only X is stored
	p.GroundVelocity = opt(melee.Velocity{X: w.f32(), Y: air.Y})

	if !v.AtLeast(3, 8, 0) {
		return p
	}
	p.HitlagRemaining = opt(w.f32())

	if !v.AtLeast(3, 11, 0) {
		return p
	}
	p.AnimationIndex = opt(w.u32())

	if !v.AtLeast(3, 16, 0) {
		return p
	}
	p.InstanceHitBy = opt(w.u16())
	p.InstanceID = opt(w.u16())

	return p
}

func (p *PostFrame) validate(d *Diag) {
	if p.Follower && p.Character != melee.InternalNana {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("character", p.Character.String()).
			Msg("follower frame for non-follower character")
	}

	if ext, ok := p.Character.External(); !ok {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint8("character", uint8(p.Character)).
			Msg("unknown internal character")
	} else if !melee.KnownState(p.State, ext) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint16("state", p.State).Str("character", ext.String()).
			Msg("unknown action state")
	}

	if !(p.Orientation == -1 || p.Orientation == 0 || p.Orientation == 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("orientation", p.Orientation).
			Msg("invalid orientation")
	}
	if !(p.Percent >= 0 && p.Percent < 1000) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("percent", p.Percent).
			Msg("invalid percent")
	}
	if !inRange(p.ShieldHealth, 0, 60) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("shield", p.ShieldHealth).
			Msg("invalid shield health")
	}
	if !p.LastAttack.Known() {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint8("attack", uint8(p.LastAttack)).
			Msg("invalid attack id")
	}
	if p.Flags.Set && p.Flags.Val>>40 != 0 {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("flags", fmt.Sprintf("%040b", p.Flags.Val)).
			Msg("invalid flag bits set")
	}
	if p.LCancel.Set && p.LCancel.Val > 2 {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint8("l_cancel", p.LCancel.Val).
			Msg("invalid l-cancel value")
	}
	if p.HurtboxState.Set && p.HurtboxState.Val > 2 {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint8("hurtbox", p.HurtboxState.Val).
			Msg("invalid hurtbox value")
	}
}
