// Package testlog wires package tests into the test runner's output.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"
)

// Start returns a debug-level logger that writes through t.Log, so
// library log lines show up interleaved with test output and only on
// failure.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
