package slp

import (
	"fmt"

	"github.com/danmuck/slpcheck/internal/melee"
)

// invalidEngineButtons are the bits the engine never sets in the processed
// button mask.
const invalidEngineButtons uint32 = 0x7F00_E080

// PreFrame is the controller snapshot taken before a player's engine step.
type PreFrame struct {
	FrameIndex int32
	Port       melee.Port
	Follower   bool
	RandomSeed uint32
	State      uint16
	Position   melee.Position
	// Orientation is -1 (left) or 1 (right); 0 appears in warp-like states.
	Orientation       float32
	Joystick          melee.Stick
	CStick            melee.Stick
	EngineTrigger     float32
	EngineButtons     uint32
	ControllerButtons uint16
	TriggerL          float32
	TriggerR          float32

	RawStickX Opt[int8]
	Percent   Opt[float32]
	RawStickY Opt[int8]
}

// decodePreFrame reads one pre-frame payload, then checks its values
// against the roster. Range findings are warnings; a follower record for a
// player who cannot have one marks the file broken.
func decodePreFrame(buf []byte, v Version, roster *[4]Player, d *Diag) (PreFrame, error) {
	w := newWindow(buf)
	p := readPreFrame(w, v)
	if w.err != nil {
		return p, fmt.Errorf("pre frame: %w", w.err)
	}
	p.validate(d, roster)
	return p, nil
}

func readPreFrame(w *window, v Version) PreFrame {
	p := PreFrame{
		FrameIndex:        w.i32(),
		Port:              melee.Port(w.u8()),
		Follower:          w.u8() == 1,
		RandomSeed:        w.u32(),
		State:             w.u16(),
		Position:          melee.Position{X: w.f32(), Y: w.f32()},
		Orientation:       w.f32(),
		Joystick:          melee.Stick{X: w.f32(), Y: w.f32()},
		CStick:            melee.Stick{X: w.f32(), Y: w.f32()},
		EngineTrigger:     w.f32(),
		EngineButtons:     w.u32(),
		ControllerButtons: w.u16(),
		TriggerL:          w.f32(),
		TriggerR:          w.f32(),
	}

	if !v.AtLeast(1, 2, 0) {
		return p
	}
	p.RawStickX = opt(w.i8())

	if !v.AtLeast(1, 4, 0) {
		return p
	}
	p.Percent = opt(w.f32())

	if !v.AtLeast(3, 15, 0) {
		return p
	}
	p.RawStickY = opt(w.i8())

	return p
}

func (p *PreFrame) validate(d *Diag, roster *[4]Player) {
	if int(p.Port) >= len(roster) {
		d.Warn().Int32("frame", p.FrameIndex).Uint8("port", uint8(p.Port)).
			Msg("pre frame port out of range")
		return
	}
	ch := roster[p.Port].Character

	if p.Follower && ch != melee.IceClimbers {
		d.Error().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("character", ch.String()).
			Msg("follower frame for a player without a follower")
	}

	// A mid-game transform leaves the game-start character stale, so an
	// out-of-band state gets one retry against the alternate form.
	known := melee.KnownState(p.State, ch)
	if !known {
		if alt, ok := ch.TransformCounterpart(); ok {
			known = melee.KnownState(p.State, alt)
		}
	}
	if !known {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Uint16("state", p.State).Str("character", ch.String()).
			Msg("unknown action state")
	}

	if !(p.Orientation == -1 || p.Orientation == 0 || p.Orientation == 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("orientation", p.Orientation).
			Msg("invalid orientation")
	}
	if !inRange(p.Joystick.X, -1, 1) || !inRange(p.Joystick.Y, -1, 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("joystick", p.Joystick.String()).
			Msg("invalid joystick coordinates")
	}
	if !inRange(p.CStick.X, -1, 1) || !inRange(p.CStick.Y, -1, 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("cstick", p.CStick.String()).
			Msg("invalid cstick coordinates")
	}
	if !inRange(p.EngineTrigger, 0, 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("trigger", p.EngineTrigger).
			Msg("invalid engine trigger value")
	}
	if p.EngineButtons&invalidEngineButtons != 0 {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Str("buttons", fmt.Sprintf("%032b", p.EngineButtons)).
			Msg("invalid bits set in engine buttons")
	}
	if !inRange(p.TriggerL, 0, 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("trigger_l", p.TriggerL).
			Msg("invalid controller L value")
	}
	if !inRange(p.TriggerR, 0, 1) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("trigger_r", p.TriggerR).
			Msg("invalid controller R value")
	}
	if p.Percent.Set && !(p.Percent.Val >= 0 && p.Percent.Val < 1000) {
		d.Warn().Int32("frame", p.FrameIndex).Str("port", p.Port.String()).
			Float32("percent", p.Percent.Val).
			Msg("invalid percent")
	}
}

// inRange is a closed-interval check written so NaN fails it.
func inRange(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}
