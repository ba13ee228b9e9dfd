// Package testlog routes zerolog output through the test log, so validator
// noise only shows up on failure or with -v.
package testlog

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type writer struct {
	t *testing.T
}

func (w writer) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// New returns a logger bound to t. It must not be used after the test
// returns.
func New(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.ConsoleWriter{Out: writer{t: t}, NoColor: true})
}
