package slp

import "github.com/rs/zerolog"

// Diag wraps a per-file logger and counts emitted anomalies so the driver
// can report totals. Error marks findings that indicate a broken writer or
// a damaged file; Warn marks values that are outside the known tables but
// survivable.
type Diag struct {
	log      zerolog.Logger
	errors   int
	warnings int
}

func NewDiag(log zerolog.Logger) *Diag {
	return &Diag{log: log}
}

func (d *Diag) Error() *zerolog.Event {
	d.errors++
	return d.log.Error()
}

func (d *Diag) Warn() *zerolog.Event {
	d.warnings++
	return d.log.Warn()
}

func (d *Diag) Info() *zerolog.Event {
	return d.log.Info()
}

func (d *Diag) Debug() *zerolog.Event {
	return d.log.Debug()
}

func (d *Diag) Trace() *zerolog.Event {
	return d.log.Trace()
}

func (d *Diag) Errors() int   { return d.errors }
func (d *Diag) Warnings() int { return d.warnings }
