// Package logx provides the minimal operator-progress logging sink
// used by IndexWriter and IndexMerger. The corpus never reaches for a
// structured logging library anywhere (teacher and siblings alike log
// via fmt/log), so this stays on the standard log package.
package logx

import (
	"log"
	"os"
)

// Logger is the sink for operator-facing progress messages emitted on
// commit and merge. It is intentionally narrow so callers can plug in
// whatever logging they already have (the CLI wires it to NewStd when
// verbose and to Nop otherwise).
type Logger interface {
	Printf(format string, args ...any)
}

// Std wraps the standard library logger.
type Std struct {
	*log.Logger
}

// NewStd returns a Logger that writes to stderr with no extra prefix,
// matching the CLI's default verbosity.
func NewStd() Std {
	return Std{Logger: log.New(os.Stderr, "", 0)}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Nop is a Logger that discards every message. It is the default for
// IndexWriter and IndexMerger when no logger is configured.
var Nop Logger = nopLogger{}
