package slp

import "fmt"

// Event command bytes. Every record in the raw block starts with one of
// these, followed by the payload length declared in the size table.
const (
	EventMessageSplit byte = 0x10
	EventPayloads     byte = 0x35
	EventGameStart    byte = 0x36
	EventPreFrame     byte = 0x37
	EventPostFrame    byte = 0x38
	EventGameEnd      byte = 0x39
	EventFrameStart   byte = 0x3A
	EventItem         byte = 0x3B
	EventFrameEnd     byte = 0x3C
	EventGeckoList    byte = 0x3D
)

var eventNames = map[byte]string{
	EventMessageSplit: "message splitter",
	EventPayloads:     "event payloads",
	EventGameStart:    "game start",
	EventPreFrame:     "pre frame",
	EventPostFrame:    "post frame",
	EventGameEnd:      "game end",
	EventFrameStart:   "frame start",
	EventItem:         "item update",
	EventFrameEnd:     "frame end",
	EventGeckoList:    "gecko code list",
}

func eventName(code byte) string {
	if n, ok := eventNames[code]; ok {
		return n
	}
	return fmt.Sprintf("event 0x%02X", code)
}

// SizeTable maps an event command byte to its declared payload size. The
// table is the first record of the raw block and is the only way to walk
// events the decoder does not otherwise understand.
type SizeTable map[byte]uint16

// readSizeTable decodes the self-describing payload-size record. Its own
// length byte counts itself plus three bytes per table entry. Duplicate
// entries keep the last declaration.
func readSizeTable(w *window) (SizeTable, error) {
	if code := w.u8(); code != EventPayloads {
		return nil, fmt.Errorf("%w: first event is 0x%02X, want 0x%02X", ErrBadSizeTable, code, EventPayloads)
	}
	n := int(w.u8()) - 1
	if n < 0 || n%3 != 0 {
		return nil, fmt.Errorf("%w: payload length %d does not divide into entries", ErrBadSizeTable, n+1)
	}
	table := make(SizeTable, n/3)
	for i := 0; i < n/3; i++ {
		code := w.u8()
		table[code] = w.u16()
	}
	if w.err != nil {
		return nil, fmt.Errorf("read payload table: %w", w.err)
	}
	return table, nil
}
