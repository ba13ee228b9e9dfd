package slp

import (
	"encoding/binary"
	"math"
)

// window is a bounds-checked big-endian cursor over a byte slice. The first
// read past the end latches ErrTruncated; every later read returns zero
// values, so decode sequences can run unchecked and test err once at the
// end.
type window struct {
	buf []byte
	pos int
	err error
}

func newWindow(buf []byte) *window {
	return &window{buf: buf}
}

func (w *window) take(n int) []byte {
	if w.err != nil {
		return nil
	}
	if n < 0 || len(w.buf)-w.pos < n {
		w.err = ErrTruncated
		return nil
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b
}

func (w *window) u8() uint8 {
	b := w.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (w *window) i8() int8 {
	return int8(w.u8())
}

func (w *window) u16() uint16 {
	b := w.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (w *window) u32() uint32 {
	b := w.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (w *window) i32() int32 {
	return int32(w.u32())
}

func (w *window) f32() float32 {
	return math.Float32frombits(w.u32())
}

// bytes returns the next n bytes. After truncation it returns a zeroed
// slice of the requested length so fixed-width field decodes stay safe.
func (w *window) bytes(n int) []byte {
	if b := w.take(n); b != nil {
		return b
	}
	if n < 0 {
		n = 0
	}
	return make([]byte, n)
}

func (w *window) skip(n int) {
	w.take(n)
}

func (w *window) remaining() int {
	return len(w.buf) - w.pos
}
