package slp

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/danmuck/slpcheck/internal/ubjson"
)

// rawHeader opens every replay: a UBJSON object with a "raw" key typed as a
// u32-counted byte array. The count follows immediately.
var rawHeader = []byte{0x7b, 0x55, 0x03, 0x72, 0x61, 0x77, 0x5b, 0x24, 0x55, 0x23, 0x6c}

// metadataHeader is the "metadata" key and its object marker, found right
// after the raw block.
var metadataHeader = []byte{0x55, 0x08, 0x6d, 0x65, 0x74, 0x61, 0x64, 0x61, 0x74, 0x61, 0x7b}

// Result summarizes one validated file. Errors and Warnings count logged
// findings; a non-zero Errors means the file is malformed even though it
// decoded end to end.
type Result struct {
	Version  Version
	Expected int // frame count implied by metadata
	Observed int // frame-start events seen, rollback repeats included
	// RolledBack is how many of the observed frames were re-simulations.
	RolledBack int64
	Errors     int
	Warnings   int
}

// ValidateFile loads one replay from disk and validates it.
func ValidateFile(path string, log zerolog.Logger) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read replay: %w", err)
	}
	return Validate(data, log)
}

// Validate checks one complete replay held in memory. Structural faults
// return an error and stop the decode; semantic findings are logged and
// counted in the Result, which is filled as far as the decode got.
func Validate(data []byte, log zerolog.Logger) (Result, error) {
	d := NewDiag(log)
	res, err := validateGame(data, d)
	res.Errors = d.Errors()
	res.Warnings = d.Warnings()
	return res, err
}

func validateGame(data []byte, d *Diag) (Result, error) {
	var res Result
	w := newWindow(data)

	if !bytes.Equal(w.bytes(len(rawHeader)), rawHeader) {
		return res, fmt.Errorf("%w: no raw block key", ErrBadEnvelope)
	}
	rawEnd := int(w.u32()) + 15
	if w.err != nil {
		return res, fmt.Errorf("read raw block length: %w", w.err)
	}
	d.Trace().Int("raw_end", rawEnd).Msg("raw block bounds")

	expected, err := readMetadata(data, rawEnd, d)
	if err != nil {
		return res, err
	}
	res.Expected = expected

	// bound the event walk to the declared raw block, so a record that runs
	// past it fails as truncated instead of eating into the metadata
	w.buf = data[:rawEnd]

	sizes, err := readSizeTable(w)
	if err != nil {
		return res, err
	}

	if code := w.u8(); code != EventGameStart {
		if w.err != nil {
			return res, fmt.Errorf("read game start: %w", w.err)
		}
		return res, fmt.Errorf("%w: got %s", ErrNoGameStart, eventName(code))
	}
	gsSize, ok := sizes[EventGameStart]
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownEventSize, eventName(EventGameStart))
	}
	payload := w.bytes(int(gsSize))
	if w.err != nil {
		return res, fmt.Errorf("read game start: %w", w.err)
	}
	gs, roster, err := decodeGameStart(payload, d)
	if err != nil {
		return res, err
	}
	res.Version = gs.Version

	d.Info().Str("max_supported", maxSupported.String()).
		Str("replay", gs.Version.String()).Msg("replay version")
	logRoster(gs, roster, d)

	sess := newSession(&roster)

	for w.remaining() > 0 && !sess.sawEnd {
		pos := w.pos
		code := w.u8()
		size, ok := sizes[code]
		if !ok {
			return res, fmt.Errorf("%w: %s at offset %d", ErrUnknownEventSize, eventName(code), pos)
		}
		payload := w.bytes(int(size))
		if w.err != nil {
			return res, fmt.Errorf("read %s at offset %d: %w", eventName(code), pos, w.err)
		}

		switch code {
		case EventFrameStart:
			f, err := decodeFrameStart(payload, gs.Version)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observeFrameStart(pos, f, d)

		case EventPreFrame:
			p, err := decodePreFrame(payload, gs.Version, &roster, d)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observe(pos, p.FrameIndex, Slot{Code: EventPreFrame, Port: p.Port, Follower: p.Follower}, d)

		case EventPostFrame:
			p, err := decodePostFrame(payload, gs.Version, d)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observe(pos, p.FrameIndex, Slot{Code: EventPostFrame, Port: p.Port, Follower: p.Follower}, d)

		case EventItem:
			f, err := decodeItemFrame(payload, gs.Version, d)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observe(pos, f.FrameIndex, Slot{Code: EventItem}, d)

		case EventFrameEnd:
			f, err := decodeFrameEnd(payload, gs.Version)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observe(pos, f.FrameIndex, Slot{Code: EventFrameEnd}, d)

		case EventGameEnd:
			g, err := decodeGameEnd(payload, gs.Version, d)
			if err != nil {
				return res, fmt.Errorf("offset %d: %w", pos, err)
			}
			sess.observeGameEnd(pos, d)
			ev := d.Debug().Str("method", g.Method.String())
			if g.LRASInitiator.Set {
				ev = ev.Int8("lras", g.LRASInitiator.Val)
			}
			ev.Msg("game end")

		case EventPayloads, EventGameStart, EventGeckoList, EventMessageSplit:
			// declared, understood, nothing to check; payload already skipped

		default:
			d.Warn().Int("pos", pos).Uint8("code", code).Msg("unknown event type")
		}
	}

	res.Observed = sess.frames
	res.RolledBack = sess.rolledBack

	pct := float64(0)
	if sess.frames > 0 {
		pct = 100 * float64(sess.rolledBack) / float64(sess.frames)
	}
	d.Info().Int("expected", res.Expected).Int("observed", res.Observed).
		Int64("rolled_back", res.RolledBack).
		Str("rollback_pct", fmt.Sprintf("%.1f%%", pct)).
		Msg("frame summary")

	return res, nil
}

// readMetadata decodes the trailing metadata object and returns the frame
// count it implies. The metadata sits outside the raw block, so it is
// checked up front before the event walk begins.
func readMetadata(data []byte, rawEnd int, d *Diag) (int, error) {
	if rawEnd < 0 || rawEnd+len(metadataHeader) > len(data) {
		return 0, fmt.Errorf("%w: raw block runs past end of file", ErrBadMetadata)
	}
	meta := data[rawEnd:]
	if !bytes.HasPrefix(meta, metadataHeader) {
		return 0, fmt.Errorf("%w: no metadata key after raw block", ErrBadMetadata)
	}
	fields, err := ubjson.ToMap(meta[len(metadataHeader):])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadMetadata, err)
	}

	expected := 0
	if last, ok := fields["lastFrame"].(int64); ok {
		// the timer starts 123 frames after recording begins
		expected = int(last) + 124
	} else {
		d.Warn().Msg("metadata has no lastFrame, expected frame count unknown")
	}
	d.Trace().Int("expected_frames", expected).Msg("metadata frame count")
	if start, ok := fields["startAt"].(string); ok {
		d.Trace().Str("start_at", start).Msg("match start time")
	}
	return expected, nil
}

// logRoster emits one debug line per active player plus one for the match
// settings, with the tournament-legality probes attached.
func logRoster(gs GameStart, roster [4]Player, d *Diag) {
	for _, p := range roster {
		if !p.Kind.Active() {
			continue
		}
		ev := d.Debug().Str("port", p.Port.String()).
			Str("character", p.Character.String()).
			Str("kind", p.Kind.String())
		if p.ConnectCode.Set && p.ConnectCode.Val != "" {
			ev = ev.Str("connect_code", p.ConnectCode.Val)
		}
		if p.DisplayName.Set && p.DisplayName.Val != "" {
			ev = ev.Str("display_name", p.DisplayName.Val)
		}
		ev.Bool("legal_settings", p.LegalSettings()).Msg("player")
	}

	ev := d.Debug().Str("stage", gs.Stage.String()).
		Bool("legal_stage", gs.Stage.TournamentLegal()).
		Bool("teams", gs.Teams).
		Str("timer", gs.Timer.String())
	if gs.Netplay.Set {
		ev = ev.Bool("netplay", gs.Netplay.Val)
	}
	if gs.MatchID != "" {
		ev = ev.Str("match_id", gs.MatchID).Str("match_type", gs.MatchType.String())
	}
	ev.Msg("match settings")
}
