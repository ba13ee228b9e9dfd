package slp

import (
	"errors"
	"testing"
)

func TestWindowReads(t *testing.T) {
	w := newWindow([]byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x3F, 0x80, 0x00, 0x00, // 1.0f
		0xFF,
	})
	if got := w.u8(); got != 0x01 {
		t.Fatalf("u8: got %#x", got)
	}
	if got := w.u16(); got != 0x0203 {
		t.Fatalf("u16: got %#x", got)
	}
	if got := w.u32(); got != 0x04050607 {
		t.Fatalf("u32: got %#x", got)
	}
	if got := w.f32(); got != 1.0 {
		t.Fatalf("f32: got %v", got)
	}
	if got := w.i8(); got != -1 {
		t.Fatalf("i8: got %d", got)
	}
	if w.err != nil {
		t.Fatalf("unexpected error: %v", w.err)
	}
	if w.remaining() != 0 {
		t.Fatalf("remaining: got %d", w.remaining())
	}
}

func TestWindowTruncationLatches(t *testing.T) {
	w := newWindow([]byte{0x0A, 0x0B})
	_ = w.u8()
	if got := w.u32(); got != 0 {
		t.Fatalf("truncated u32 should be zero, got %#x", got)
	}
	if !errors.Is(w.err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", w.err)
	}
	// later reads stay zero even though a byte remains
	if got := w.u8(); got != 0 {
		t.Fatalf("read after latch should be zero, got %#x", got)
	}
	if b := w.bytes(4); len(b) != 4 || b[0] != 0 {
		t.Fatalf("bytes after latch should be zeroed, got %v", b)
	}
}

func TestWindowNegativeFrameIndex(t *testing.T) {
	w := newWindow([]byte{0xFF, 0xFF, 0xFF, 0x85})
	if got := w.i32(); got != -123 {
		t.Fatalf("i32: got %d", got)
	}
}
