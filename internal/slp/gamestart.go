package slp

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"

	"github.com/danmuck/slpcheck/internal/melee"
)

// MatchType is the queue a netplay match was played in, taken from the
// sixth byte of the match ID ("mode.unranked-..." and friends).
type MatchType uint8

const (
	MatchUnknown  MatchType = 0
	MatchDirect   MatchType = 'd'
	MatchRanked   MatchType = 'r'
	MatchUnranked MatchType = 'u'
)

func (m MatchType) String() string {
	switch m {
	case MatchUnranked:
		return "unranked"
	case MatchRanked:
		return "ranked"
	case MatchDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// GameStart is the match settings record. Gated fields are absent on files
// older than the revision that introduced them.
type GameStart struct {
	Version     Version
	Teams       bool
	Stage       melee.Stage
	Timer       time.Duration
	DamageRatio float32
	RandomSeed  uint32

	PAL           Opt[bool]
	FrozenStadium Opt[bool]
	Netplay       Opt[bool]

	MatchID        string
	MatchType      MatchType
	GameNumber     Opt[uint32]
	TiebreakNumber Opt[uint32]
}

// decodeGameStart reads the game-start payload and the four-slot roster.
// The roster travels beside the record because every later frame event is
// interpreted against it.
func decodeGameStart(buf []byte, d *Diag) (GameStart, [4]Player, error) {
	w := newWindow(buf)
	gs, roster := readGameStart(w, d)
	if w.err != nil {
		return gs, roster, fmt.Errorf("game start: %w", w.err)
	}
	return gs, roster, nil
}

func readGameStart(w *window, d *Diag) (GameStart, [4]Player) {
	var gs GameStart
	var roster [4]Player

	gs.Version = Version{w.u8(), w.u8(), w.u8()}
	w.skip(9) // revision number, game bitfields 1-4, bomb rain

	gs.Teams = w.u8() != 0
	w.skip(5) // item spawn rate, self-destruct score value

	gs.Stage = melee.Stage(w.u16())
	if !gs.Stage.Known() {
		d.Warn().Uint16("stage", uint16(gs.Stage)).Msg("unknown stage id")
	}

	// timer is stored in seconds, adjustable only in whole minutes
	gs.Timer = time.Duration(w.u32()) * time.Second
	w.skip(28) // item spawn bitfields

	gs.DamageRatio = w.f32()
	w.skip(44)

	for i := range roster {
		p := &roster[i]
		p.Port = melee.Port(i)
		p.Character = melee.Character(w.u8())
		p.Kind = PlayerKind(w.u8())
		if p.Kind > PlayerEmpty {
			d.Warn().Str("port", p.Port.String()).Uint8("kind", uint8(p.Kind)).Msg("invalid player type")
		}
		p.Stocks = w.u8()
		p.Costume = w.u8()
		p.Shade = TeamShade(w.u8())
		if p.Kind.Active() && p.Shade > ShadeDark {
			d.Warn().Str("port", p.Port.String()).Uint8("shade", uint8(p.Shade)).Msg("invalid team shade")
		}
		p.Handicap = w.u8()
		p.Team = TeamID(w.u8())
		if p.Kind.Active() && p.Team > TeamGreen {
			d.Warn().Str("port", p.Port.String()).Uint8("team", uint8(p.Team)).Msg("invalid team id")
		}
		p.Bitfield = w.u8()
		p.CPULevel = w.u8()
		p.DamageStart = w.u16()
		p.DamageSpawn = w.u16()
		p.OffenseRatio = w.f32()
		p.DefenseRatio = w.f32()
		p.ModelScale = w.f32()
		w.skip(11)
	}
	w.skip(72) // slots 5 and 6

	gs.RandomSeed = w.u32()

	if !gs.Version.AtLeast(1, 0, 0) {
		return gs, roster
	}
	for i := range roster {
		roster[i].UCF = opt(UCFToggles{
			Dashback:   ControllerFix(w.u32()),
			ShieldDrop: ControllerFix(w.u32()),
		})
	}

	if !gs.Version.AtLeast(1, 3, 0) {
		return gs, roster
	}
	w.skip(64) // in-game tags

	if !gs.Version.AtLeast(1, 5, 0) {
		return gs, roster
	}
	gs.PAL = opt(w.u8() != 0)

	if !gs.Version.AtLeast(2, 0, 0) {
		return gs, roster
	}
	gs.FrozenStadium = opt(w.u8() != 0)

	if !gs.Version.AtLeast(3, 7, 0) {
		return gs, roster
	}
	w.skip(1) // minor scene
	gs.Netplay = opt(w.u8() == 8)

	if !gs.Version.AtLeast(3, 9, 0) {
		return gs, roster
	}
	for i := range roster {
		name := truncateNul(w.bytes(31), 30)
		roster[i].DisplayName = opt(decodeShiftJIS(name))
	}
	for i := range roster {
		code := decodeShiftJIS(truncateNul(w.bytes(10), 10))
		// replace the full-width hash so connect codes stay typeable
		roster[i].ConnectCode = opt(strings.ReplaceAll(code, "＃", "#"))
	}

	if !gs.Version.AtLeast(3, 11, 0) {
		return gs, roster
	}
	w.skip(29 * 4) // slippi uid strings

	if !gs.Version.AtLeast(3, 12, 0) {
		return gs, roster
	}
	w.skip(1) // language option

	if !gs.Version.AtLeast(3, 14, 0) {
		return gs, roster
	}
	gs.MatchID = string(truncateNul(w.bytes(51), 50))
	gs.GameNumber = opt(w.u32())
	gs.TiebreakNumber = opt(w.u32())
	if len(gs.MatchID) > 5 {
		gs.MatchType = matchTypeFrom(gs.MatchID[5])
	}

	return gs, roster
}

func matchTypeFrom(b byte) MatchType {
	switch MatchType(b) {
	case MatchUnranked, MatchRanked, MatchDirect:
		return MatchType(b)
	default:
		return MatchUnknown
	}
}

// truncateNul cuts b at the first zero byte, or at max bytes when no
// terminator is present.
func truncateNul(b []byte, max int) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	if len(b) > max {
		return b[:max]
	}
	return b
}

// decodeShiftJIS converts an in-game Shift-JIS string. Undecodable input
// falls back to the raw bytes rather than failing the record.
func decodeShiftJIS(b []byte) string {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
