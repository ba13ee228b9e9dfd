package slp

import "fmt"

// FrameStart opens one simulation frame. Frame indexes begin at -123; index
// 0 is when "GO" disappears and control begins.
type FrameStart struct {
	FrameIndex   int32
	FrameCounter Opt[uint32]
}

func decodeFrameStart(buf []byte, v Version) (FrameStart, error) {
	w := newWindow(buf)
	f := FrameStart{FrameIndex: w.i32()}
	w.skip(4) // random seed

	if v.AtLeast(3, 10, 0) {
		f.FrameCounter = opt(w.u32())
	}
	if w.err != nil {
		return f, fmt.Errorf("frame start: %w", w.err)
	}
	return f, nil
}

// FrameEnd closes one simulation frame.
type FrameEnd struct {
	FrameIndex int32
	// LatestFinalized is the newest frame the engine can no longer roll
	// back to, used by netplay writers.
	LatestFinalized Opt[int32]
}

func decodeFrameEnd(buf []byte, v Version) (FrameEnd, error) {
	w := newWindow(buf)
	f := FrameEnd{FrameIndex: w.i32()}

	if v.AtLeast(3, 7, 0) {
		f.LatestFinalized = opt(w.i32())
	}
	if w.err != nil {
		return f, fmt.Errorf("frame end: %w", w.err)
	}
	return f, nil
}
