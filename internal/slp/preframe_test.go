package slp

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/slpcheck/internal/melee"
)

// preFields holds every pre-frame value so tests can corrupt one at a time.
type preFields struct {
	frame       int32
	port        uint8
	follower    bool
	state       uint16
	orientation float32
	joy         [2]float32
	cstick      [2]float32
	trigger     float32
	buttons     uint32
	l, r        float32
	percent     float32
}

func cleanPre() preFields {
	return preFields{
		frame:       -100,
		state:       melee.StateWait,
		orientation: 1,
	}
}

func (f preFields) payload() []byte {
	s := &sink{}
	s.i32(f.frame)
	s.u8(f.port)
	s.bool8(f.follower)
	s.u32(0) // random seed
	s.u16(f.state)
	s.f32(0) // position x
	s.f32(0) // position y
	s.f32(f.orientation)
	s.f32(f.joy[0])
	s.f32(f.joy[1])
	s.f32(f.cstick[0])
	s.f32(f.cstick[1])
	s.f32(f.trigger)
	s.u32(f.buttons)
	s.u16(0) // controller buttons
	s.f32(f.l)
	s.f32(f.r)
	s.i8(0) // raw stick x
	s.f32(f.percent)
	s.i8(0) // raw stick y
	return s.b
}

var v316 = Version{3, 16, 0}

func testRoster() [4]Player {
	return [4]Player{
		{Port: 0, Kind: PlayerHuman, Character: melee.Fox},
		{Port: 1, Kind: PlayerHuman, Character: melee.Marth},
		{Port: 2, Kind: PlayerEmpty},
		{Port: 3, Kind: PlayerEmpty},
	}
}

func TestDecodePreFrameClean(t *testing.T) {
	roster := testRoster()
	d := NewDiag(zerolog.Nop())
	p, err := decodePreFrame(cleanPre().payload(), v316, &roster, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.FrameIndex != -100 || p.Port != 0 || p.Follower {
		t.Fatalf("identity: got %+v", p)
	}
	if !p.Percent.Set || !p.RawStickX.Set || !p.RawStickY.Set {
		t.Fatal("gated fields should be present at v3.16.0")
	}
	if d.Errors() != 0 || d.Warnings() != 0 {
		t.Fatalf("diagnostics: %d errors, %d warnings", d.Errors(), d.Warnings())
	}
}

func TestDecodePreFrameOldVersionSkipsGates(t *testing.T) {
	roster := testRoster()
	d := NewDiag(zerolog.Nop())
	fields := cleanPre()
	payload := fields.payload()
	// strip the gated tail: raw x (1), percent (4), raw y (1)
	payload = payload[:len(payload)-6]

	p, err := decodePreFrame(payload, Version{1, 0, 0}, &roster, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.RawStickX.Set || p.Percent.Set || p.RawStickY.Set {
		t.Fatal("gated fields should be absent at v1.0.0")
	}
}

func TestDecodePreFrameTruncated(t *testing.T) {
	roster := testRoster()
	d := NewDiag(zerolog.Nop())
	if _, err := decodePreFrame(cleanPre().payload()[:20], v316, &roster, d); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestPreFrameRangeWarnings(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*preFields)
	}{
		{"orientation", func(f *preFields) { f.orientation = 0.5 }},
		{"joystick", func(f *preFields) { f.joy = [2]float32{1.5, 0} }},
		{"cstick", func(f *preFields) { f.cstick = [2]float32{0, -2} }},
		{"engine trigger", func(f *preFields) { f.trigger = 1.25 }},
		{"engine buttons", func(f *preFields) { f.buttons = 0x0100_0000 }},
		{"controller l", func(f *preFields) { f.l = -0.5 }},
		{"controller r", func(f *preFields) { f.r = 2 }},
		{"percent", func(f *preFields) { f.percent = -1 }},
		{"state", func(f *preFields) { f.state = 0x0900 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roster := testRoster()
			fields := cleanPre()
			tc.mut(&fields)
			d := NewDiag(zerolog.Nop())
			if _, err := decodePreFrame(fields.payload(), v316, &roster, d); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if d.Warnings() != 1 {
				t.Fatalf("warnings: got %d, want 1", d.Warnings())
			}
			if d.Errors() != 0 {
				t.Fatalf("errors: got %d, want 0", d.Errors())
			}
		})
	}
}

func TestPreFrameFollowerForNonClimber(t *testing.T) {
	roster := testRoster()
	fields := cleanPre()
	fields.follower = true
	d := NewDiag(zerolog.Nop())
	if _, err := decodePreFrame(fields.payload(), v316, &roster, d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Errors() != 1 {
		t.Fatalf("errors: got %d, want 1", d.Errors())
	}
}

func TestPreFrameFollowerForClimber(t *testing.T) {
	roster := testRoster()
	roster[0].Character = melee.IceClimbers
	fields := cleanPre()
	fields.follower = true
	d := NewDiag(zerolog.Nop())
	if _, err := decodePreFrame(fields.payload(), v316, &roster, d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Errors() != 0 || d.Warnings() != 0 {
		t.Fatalf("diagnostics: %d errors, %d warnings", d.Errors(), d.Warnings())
	}
}

func TestPreFrameTransformRetry(t *testing.T) {
	roster := testRoster()
	roster[0].Character = melee.Zelda

	// a state inside Sheik's band but past Zelda's
	fields := cleanPre()
	fields.state = 0x0154 + 12

	d := NewDiag(zerolog.Nop())
	if _, err := decodePreFrame(fields.payload(), v316, &roster, d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Warnings() != 0 {
		t.Fatalf("transform state should resolve, got %d warnings", d.Warnings())
	}

	// past both bands still warns
	fields.state = 0x0400
	d = NewDiag(zerolog.Nop())
	if _, err := decodePreFrame(fields.payload(), v316, &roster, d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Warnings() != 1 {
		t.Fatalf("warnings: got %d, want 1", d.Warnings())
	}
}

func TestPreFramePortOutOfRange(t *testing.T) {
	roster := testRoster()
	fields := cleanPre()
	fields.port = 6
	d := NewDiag(zerolog.Nop())
	p, err := decodePreFrame(fields.payload(), v316, &roster, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Port != 6 {
		t.Fatalf("port: got %d", p.Port)
	}
	if d.Warnings() != 1 || d.Errors() != 0 {
		t.Fatalf("diagnostics: %d errors, %d warnings", d.Errors(), d.Warnings())
	}
}
