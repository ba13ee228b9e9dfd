package slp

import (
	"encoding/binary"
	"math"

	"github.com/danmuck/slpcheck/internal/melee"
)

// sink builds big-endian event payloads for tests.
type sink struct {
	b []byte
}

func (s *sink) u8(v uint8)   { s.b = append(s.b, v) }
func (s *sink) u16(v uint16) { s.b = binary.BigEndian.AppendUint16(s.b, v) }
func (s *sink) u32(v uint32) { s.b = binary.BigEndian.AppendUint32(s.b, v) }
func (s *sink) i8(v int8)    { s.u8(uint8(v)) }
func (s *sink) i32(v int32)  { s.u32(uint32(v)) }
func (s *sink) f32(v float32) {
	s.u32(math.Float32bits(v))
}
func (s *sink) pad(n int)    { s.b = append(s.b, make([]byte, n)...) }
func (s *sink) raw(b []byte) { s.b = append(s.b, b...) }

// fixedStr emits v NUL-padded to width bytes.
func (s *sink) fixedStr(v string, width int) {
	b := make([]byte, width)
	copy(b, v)
	s.b = append(s.b, b...)
}

func (s *sink) bool8(v bool) {
	if v {
		s.u8(1)
	} else {
		s.u8(0)
	}
}

// testPlayer is one roster slot for the game-start builder.
type testPlayer struct {
	kind PlayerKind
	char melee.Character
	name string
	code string
}

// testGame drives the game-start payload builder. The zero value is not
// useful; start from defaultTestGame.
type testGame struct {
	ver     Version
	stage   melee.Stage
	teams   bool
	players [4]testPlayer
	matchID string

	// raw overrides for fault-injection tests
	shadeOverride map[int]uint8
	kindOverride  map[int]uint8
}

func defaultTestGame() testGame {
	return testGame{
		ver:   Version{3, 16, 0},
		stage: melee.FinalDestination,
		players: [4]testPlayer{
			{kind: PlayerHuman, char: melee.Fox, name: "lovage", code: "FOX#101"},
			{kind: PlayerHuman, char: melee.Marth, name: "emperor", code: "MAR#202"},
			{kind: PlayerEmpty, char: melee.CaptainFalcon},
			{kind: PlayerEmpty, char: melee.CaptainFalcon},
		},
		matchID: "mode.unranked-2023-07-01T12:00:00.00-0",
	}
}

// payload emits a game-start payload for the builder's version, stopping at
// the same gate boundary the decoder would.
func (g testGame) payload() []byte {
	s := &sink{}
	s.u8(g.ver.Major)
	s.u8(g.ver.Minor)
	s.u8(g.ver.Build)
	s.pad(9)
	s.bool8(g.teams)
	s.pad(5)
	s.u16(uint16(g.stage))
	s.u32(480) // timer seconds
	s.pad(28)
	s.f32(1) // damage ratio
	s.pad(44)

	for i, p := range g.players {
		s.u8(uint8(p.char))
		kind := uint8(p.kind)
		if v, ok := g.kindOverride[i]; ok {
			kind = v
		}
		s.u8(kind)
		s.u8(4) // stocks
		s.u8(0) // costume
		shade := uint8(0)
		if v, ok := g.shadeOverride[i]; ok {
			shade = v
		}
		s.u8(shade)
		s.u8(0) // handicap
		s.u8(0) // team
		s.u8(0) // bitfield
		s.u8(0) // cpu level
		s.u16(0)
		s.u16(0)
		s.f32(1)
		s.f32(1)
		s.f32(1)
		s.pad(11)
	}
	s.pad(72)
	s.u32(0x12345678) // random seed

	if !g.ver.AtLeast(1, 0, 0) {
		return s.b
	}
	for range g.players {
		s.u32(uint32(FixUCF))
		s.u32(uint32(FixUCF))
	}

	if !g.ver.AtLeast(1, 3, 0) {
		return s.b
	}
	s.pad(64) // in-game tags

	if !g.ver.AtLeast(1, 5, 0) {
		return s.b
	}
	s.u8(0) // pal

	if !g.ver.AtLeast(2, 0, 0) {
		return s.b
	}
	s.u8(0) // frozen stadium

	if !g.ver.AtLeast(3, 7, 0) {
		return s.b
	}
	s.u8(0) // minor scene
	s.u8(8) // major scene: netplay

	if !g.ver.AtLeast(3, 9, 0) {
		return s.b
	}
	for _, p := range g.players {
		s.fixedStr(p.name, 31)
	}
	for _, p := range g.players {
		s.fixedStr(p.code, 10)
	}

	if !g.ver.AtLeast(3, 11, 0) {
		return s.b
	}
	s.pad(29 * 4) // uid strings

	if !g.ver.AtLeast(3, 12, 0) {
		return s.b
	}
	s.u8(1) // language

	if !g.ver.AtLeast(3, 14, 0) {
		return s.b
	}
	s.fixedStr(g.matchID, 51)
	s.u32(1) // game number
	s.u32(0) // tiebreak number

	return s.b
}

// Event emitters matching the v3.16.0 payload sizes declared by
// testSizeTable. Each writes the command byte plus its payload.

func emitFrameStart(s *sink, frame int32) {
	s.u8(EventFrameStart)
	s.i32(frame)
	s.u32(0xABCD)              // random seed
	s.u32(uint32(frame + 123)) // scene frame counter
}

func emitPreFrame(s *sink, frame int32, port uint8, follower bool) {
	s.u8(EventPreFrame)
	s.i32(frame)
	s.u8(port)
	s.bool8(follower)
	s.u32(0xABCD) // random seed
	s.u16(0x000E) // wait
	s.f32(0)      // position x
	s.f32(0)      // position y
	s.f32(1)      // orientation
	s.f32(0)      // joystick x
	s.f32(0)      // joystick y
	s.f32(0)      // cstick x
	s.f32(0)      // cstick y
	s.f32(0)      // engine trigger
	s.u32(0)      // engine buttons
	s.u16(0)      // controller buttons
	s.f32(0)      // trigger l
	s.f32(0)      // trigger r
	s.i8(0)       // raw stick x
	s.f32(42)     // percent
	s.i8(0)       // raw stick y
}

func emitPostFrame(s *sink, frame int32, port uint8, follower bool, char melee.InternalCharacter) {
	s.u8(EventPostFrame)
	s.i32(frame)
	s.u8(port)
	s.bool8(follower)
	s.u8(uint8(char))
	s.u16(0x000E) // wait
	s.f32(0)      // position x
	s.f32(0)      // position y
	s.f32(1)      // orientation
	s.f32(42)     // percent
	s.f32(60)     // shield health
	s.u8(0)       // last attack landed
	s.u8(0)       // combo count
	s.u8(6)       // last hit by
	s.u8(4)       // stocks
	s.f32(1)      // state age
	s.pad(5)      // state flags
	s.f32(0)      // misc action state
	s.u8(0)       // grounded
	s.u16(0)      // last ground id
	s.u8(2)       // jumps remaining
	s.u8(0)       // l-cancel
	s.u8(0)       // hurtbox state
	s.f32(0)      // air velocity x
	s.f32(0)      // air velocity y
	s.f32(0)      // knockback x
	s.f32(0)      // knockback y
	s.f32(0)      // ground velocity x
	s.f32(0)      // hitlag remaining
	s.u32(0)      // animation index
	s.u16(0)      // instance hit by
	s.u16(1)      // instance id
}

func emitItem(s *sink, frame int32, spawnID uint32) {
	s.u8(EventItem)
	s.i32(frame)
	s.u16(uint16(melee.ItemFood))
	s.u8(0)   // state
	s.f32(1)  // orientation
	s.f32(0)  // velocity x
	s.f32(0)  // velocity y
	s.f32(0)  // position x
	s.f32(0)  // position y
	s.u16(0)  // damage taken
	s.f32(60) // expiration timer
	s.u32(spawnID)
	s.u8(0)  // missile type
	s.u8(0)  // turnip type
	s.u8(0)  // launched
	s.u8(0)  // charge power
	s.i8(0)  // owner
	s.u16(2) // instance id
}

func emitFrameEnd(s *sink, frame int32) {
	s.u8(EventFrameEnd)
	s.i32(frame)
	s.i32(frame) // latest finalized
}

func emitGameEnd(s *sink) {
	s.u8(EventGameEnd)
	s.u8(uint8(EndGame))
	s.i8(-1) // lras initiator
	for _, place := range []int8{0, 1, -1, -1} {
		s.i8(place)
	}
}

// emitFrame writes one complete clean 1v1 frame for ports 0 and 1.
func emitFrame(s *sink, frame int32) {
	emitFrameStart(s, frame)
	emitPreFrame(s, frame, 0, false)
	emitPreFrame(s, frame, 1, false)
	emitPostFrame(s, frame, 0, false, 1)  // internal Fox
	emitPostFrame(s, frame, 1, false, 18) // internal Marth
	emitFrameEnd(s, frame)
}

// testSizeTable declares the payload sizes the emitters above produce.
func testSizeTable(gameStartSize int) []byte {
	s := &sink{}
	entries := []struct {
		code byte
		size uint16
	}{
		{EventGameStart, uint16(gameStartSize)},
		{EventFrameStart, 12},
		{EventPreFrame, 64},
		{EventPostFrame, 84},
		{EventItem, 44},
		{EventFrameEnd, 8},
		{EventGameEnd, 6},
	}
	s.u8(EventPayloads)
	s.u8(uint8(1 + 3*len(entries)))
	for _, e := range entries {
		s.u8(e.code)
		s.u16(e.size)
	}
	return s.b
}

// ubjKey emits a metadata object key.
func ubjKey(k string) []byte {
	return append([]byte{'U', byte(len(k))}, k...)
}

// buildMetadata emits the metadata block, header included.
func buildMetadata(lastFrame int32) []byte {
	s := &sink{}
	s.raw(metadataHeader)
	s.raw(ubjKey("startAt"))
	start := "2023-07-01T12:00:00Z"
	s.u8('S')
	s.u8('U')
	s.u8(uint8(len(start)))
	s.raw([]byte(start))
	s.raw(ubjKey("lastFrame"))
	s.u8('l')
	s.i32(lastFrame)
	s.raw(ubjKey("playedOn"))
	s.u8('S')
	s.u8('U')
	s.u8(uint8(len("network")))
	s.raw([]byte("network"))
	s.u8('}')
	return s.b
}

// wrapReplay assembles a complete file: envelope, raw block, metadata.
func wrapReplay(rawBlock []byte, lastFrame int32) []byte {
	s := &sink{}
	s.raw(rawHeader)
	s.u32(uint32(len(rawBlock)))
	s.raw(rawBlock)
	s.raw(buildMetadata(lastFrame))
	return s.b
}

// buildReplay assembles a full file from a game-start spec and an event
// stream produced by the emitters above.
func buildReplay(game testGame, events []byte, lastFrame int32) []byte {
	gs := game.payload()
	raw := &sink{}
	raw.raw(testSizeTable(len(gs)))
	raw.u8(EventGameStart)
	raw.raw(gs)
	raw.raw(events)
	return wrapReplay(raw.b, lastFrame)
}
