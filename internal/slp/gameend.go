package slp

import "fmt"

// EndMethod is how a match concluded. Values 0 and 3 are the pre-2.0.0
// encodings; 1, 2, and 7 replaced them.
type EndMethod uint8

const (
	EndUnresolved EndMethod = 0
	EndTime       EndMethod = 1
	EndGame       EndMethod = 2
	EndResolved   EndMethod = 3
	EndNoContest  EndMethod = 7
)

func (m EndMethod) String() string {
	switch m {
	case EndUnresolved:
		return "unresolved"
	case EndTime:
		return "time"
	case EndGame:
		return "game"
	case EndResolved:
		return "resolved"
	case EndNoContest:
		return "no contest"
	default:
		return fmt.Sprintf("unknown method (%d)", uint8(m))
	}
}

func (m EndMethod) known() bool {
	switch m {
	case EndUnresolved, EndTime, EndGame, EndResolved, EndNoContest:
		return true
	default:
		return false
	}
}

// GameEnd is the match conclusion record.
type GameEnd struct {
	Method EndMethod
	// LRASInitiator is the port that quit out, or -1 when nobody did.
	LRASInitiator Opt[int8]
	// Placements maps each port to its final standing, -1 for absent
	// players.
	Placements Opt[[4]int8]
}

func decodeGameEnd(buf []byte, v Version, d *Diag) (GameEnd, error) {
	w := newWindow(buf)
	g := GameEnd{Method: EndMethod(w.u8())}

	if v.AtLeast(2, 0, 0) {
		g.LRASInitiator = opt(w.i8())
	}
	if v.AtLeast(3, 13, 0) {
		var places [4]int8
		for i := range places {
			places[i] = w.i8()
		}
		g.Placements = opt(places)
	}
	if w.err != nil {
		return g, fmt.Errorf("game end: %w", w.err)
	}

	if !g.Method.known() {
		d.Warn().Uint8("method", uint8(g.Method)).Msg("unknown game end method")
	}
	return g, nil
}
