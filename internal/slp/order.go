package slp

import (
	"fmt"

	"github.com/danmuck/slpcheck/internal/melee"
)

// firstFrame is the index of the first recorded frame. Index 0 is when
// control begins; everything before it is the entry animation.
const firstFrame int32 = -123

// Slot is one position in the per-frame event cycle. Player events are
// keyed by port and follower flag so records from the wrong slot cannot
// satisfy the cycle.
type Slot struct {
	Code     byte
	Port     melee.Port
	Follower bool
}

func (s Slot) String() string {
	switch s.Code {
	case EventPreFrame, EventPostFrame:
		if s.Follower {
			return fmt.Sprintf("%s %s follower", eventName(s.Code), s.Port)
		}
		return fmt.Sprintf("%s %s", eventName(s.Code), s.Port)
	default:
		return eventName(s.Code)
	}
}

// skippable reports whether the slot may be absent on any given frame.
// Follower records vanish while a follower is dead, and most frames carry
// no items at all.
func (s Slot) skippable() bool {
	return s.Follower || s.Code == EventItem
}

// ExpectedOrder builds the canonical event cycle for one frame: a start
// marker, pre-frames in port order, an item placeholder, post-frames in
// port order, and an end marker. Ice Climbers contribute a follower slot
// right after their leader.
func ExpectedOrder(roster *[4]Player) []Slot {
	order := []Slot{{Code: EventFrameStart}}
	for _, p := range roster {
		if !p.Kind.Active() {
			continue
		}
		order = append(order, Slot{Code: EventPreFrame, Port: p.Port})
		if p.Character == melee.IceClimbers {
			order = append(order, Slot{Code: EventPreFrame, Port: p.Port, Follower: true})
		}
	}
	order = append(order, Slot{Code: EventItem})
	for _, p := range roster {
		if !p.Kind.Active() {
			continue
		}
		order = append(order, Slot{Code: EventPostFrame, Port: p.Port})
		if p.Character == melee.IceClimbers {
			order = append(order, Slot{Code: EventPostFrame, Port: p.Port, Follower: true})
		}
	}
	return append(order, Slot{Code: EventFrameEnd})
}

// session is the mutable state of one file's ordering check.
type session struct {
	order    []Slot
	cursor   int
	needSync bool
	// twoPlayers gates the mid-frame ordering errors; rosters with more
	// or fewer active slots produce layouts the cycle model does not
	// cover reliably.
	twoPlayers bool

	prevFrame  int32
	frames     int
	rolledBack int64
	sawEnd     bool
}

func newSession(roster *[4]Player) *session {
	active := 0
	for _, p := range roster {
		if p.Kind.Active() {
			active++
		}
	}
	return &session{
		order:      ExpectedOrder(roster),
		twoPlayers: active == 2,
		// matches the first real index, so the opening frame checks clean
		prevFrame: firstFrame,
	}
}

func (s *session) advance() {
	s.cursor = (s.cursor + 1) % len(s.order)
}

// matchSlot compares an observed event against the cursor. When the cursor
// sits on a skippable slot, the observation may instead match the slot after
// it; the skipped slot is consumed.
func (s *session) matchSlot(obs Slot) bool {
	if s.order[s.cursor] == obs {
		return true
	}
	if s.order[s.cursor].skippable() {
		next := (s.cursor + 1) % len(s.order)
		if s.order[next] == obs {
			s.cursor = next
			return true
		}
	}
	return false
}

// expectedString names the slot the cursor wants, including the alternative
// when the slot is skippable.
func (s *session) expectedString() string {
	cur := s.order[s.cursor]
	if cur.skippable() {
		next := s.order[(s.cursor+1)%len(s.order)]
		return fmt.Sprintf("%s or %s", cur, next)
	}
	return cur.String()
}

// observeFrameStart checks frame progression and re-anchors the cycle. The
// start marker is the resynchronization point, so its ordering error fires
// regardless of roster size.
func (s *session) observeFrameStart(pos int, f FrameStart, d *Diag) {
	old := s.prevFrame
	s.frames++

	delta := f.FrameIndex - old
	if delta > 1 || delta < -10 {
		d.Error().Int("pos", pos).Int32("prev", old).Int32("frame", f.FrameIndex).
			Msg("unexpected frame ordering")
	}
	if delta < 0 {
		d.Debug().Int("pos", pos).Int32("from", old).Int32("to", f.FrameIndex).
			Msg("rollback")
		// indexes f.FrameIndex through old all replay
		s.rolledBack += int64(old-f.FrameIndex) + 1
	}

	if s.needSync || !s.matchSlot(Slot{Code: EventFrameStart}) {
		d.Error().Int("pos", pos).Str("expected", s.expectedString()).
			Str("got", eventName(EventFrameStart)).Int32("frame", f.FrameIndex).
			Msg("unexpected event ordering")
		s.cursor = 0
		s.needSync = false
	}

	s.prevFrame = f.FrameIndex
	s.advance()
}

// observe runs the shared slot comparison for pre-frame, post-frame, item,
// and frame-end events. While desynchronized the cycle stays quiet until
// the next start marker re-anchors it.
func (s *session) observe(pos int, frame int32, obs Slot, d *Diag) {
	if !s.needSync && !s.matchSlot(obs) {
		if s.twoPlayers {
			s.needSync = true
			d.Error().Int("pos", pos).Str("expected", s.expectedString()).
				Str("got", obs.String()).Int32("frame", frame).
				Msg("unexpected event ordering")
		}
	}

	switch obs.Code {
	case EventPreFrame, EventPostFrame:
		s.advance()
	case EventFrameEnd:
		// the cycle restarts whether or not it was in sync
		s.cursor = 0
	case EventItem:
		// item updates repeat; the cursor waits on the placeholder
	}
}

// observeGameEnd records the terminal event.
func (s *session) observeGameEnd(pos int, d *Diag) {
	if s.sawEnd {
		d.Warn().Int("pos", pos).Msg("duplicate game end event")
	}
	s.sawEnd = true
}
