package slp

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func itemPayload(itemType uint16) []byte {
	s := &sink{}
	s.i32(-90)
	s.u16(itemType)
	s.u8(0)      // state
	s.f32(1)     // orientation
	s.f32(0.5)   // velocity x
	s.f32(-0.25) // velocity y
	s.f32(10)    // position x
	s.f32(20)    // position y
	s.u16(0)     // damage taken
	s.f32(300)   // expiration timer
	s.u32(7)     // spawn id
	s.u8(0)      // missile type
	s.u8(0)      // turnip face
	s.bool8(true)
	s.u8(0) // charge power
	s.i8(2) // owner
	s.u16(9)
	return s.b
}

func TestDecodeItemFrame(t *testing.T) {
	d := NewDiag(zerolog.Nop())
	f, err := decodeItemFrame(itemPayload(0x10), v316, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.FrameIndex != -90 || f.Type != 0x10 || f.SpawnID != 7 {
		t.Fatalf("identity: got %+v", f)
	}
	if !f.Launched.Set || !f.Launched.Val {
		t.Fatalf("launched: %+v", f.Launched)
	}
	if !f.Owner.Set || f.Owner.Val != 2 {
		t.Fatalf("owner: %+v", f.Owner)
	}
	if !f.InstanceID.Set || f.InstanceID.Val != 9 {
		t.Fatalf("instance id: %+v", f.InstanceID)
	}
	if d.Warnings() != 0 {
		t.Fatalf("warnings: got %d, want 0", d.Warnings())
	}
}

func TestDecodeItemFrameOldVersion(t *testing.T) {
	d := NewDiag(zerolog.Nop())
	payload := itemPayload(0x10)[:37] // fixed block only
	f, err := decodeItemFrame(payload, Version{3, 0, 0}, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.MissileType.Set || f.Owner.Set || f.InstanceID.Set {
		t.Fatal("gated fields should be absent at v3.0.0")
	}
}

func TestDecodeItemFrameMidVersion(t *testing.T) {
	d := NewDiag(zerolog.Nop())
	payload := itemPayload(0x10)[:41] // through charge power
	f, err := decodeItemFrame(payload, Version{3, 5, 0}, d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !f.ChargePower.Set {
		t.Fatal("charge power should be present at v3.5.0")
	}
	if f.Owner.Set {
		t.Fatal("owner should be absent before v3.6.0")
	}
}

func TestDecodeItemFrameUnknownType(t *testing.T) {
	d := NewDiag(zerolog.Nop())
	if _, err := decodeItemFrame(itemPayload(0x200), v316, d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Warnings() != 1 {
		t.Fatalf("warnings: got %d, want 1", d.Warnings())
	}
}

func TestDecodeItemFrameTruncated(t *testing.T) {
	d := NewDiag(zerolog.Nop())
	if _, err := decodeItemFrame(itemPayload(0x10)[:8], v316, d); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
