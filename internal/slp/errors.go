package slp

import "errors"

var (
	// ErrTruncated reports a read past the end of the file or of a
	// record's declared payload.
	ErrTruncated = errors.New("slp: truncated input")
	// ErrBadEnvelope reports a missing or malformed raw-block header.
	ErrBadEnvelope = errors.New("slp: invalid raw block header")
	// ErrBadMetadata reports a missing or malformed metadata block.
	ErrBadMetadata = errors.New("slp: invalid metadata block")
	// ErrBadSizeTable reports a malformed event payload-size table.
	ErrBadSizeTable = errors.New("slp: invalid event payload table")
	// ErrNoGameStart reports that the event after the payload table is
	// not a game-start record.
	ErrNoGameStart = errors.New("slp: missing game start event")
	// ErrUnknownEventSize reports an event whose payload size was never
	// declared, which makes the rest of the stream unwalkable.
	ErrUnknownEventSize = errors.New("slp: event size not in payload table")
)
