// Package diag provides the ambient logging and debug-dump facilities
// used while building and querying dictionaries: leveled structured
// logs, and a pretty-printer for lattices/candidates during
// investigation.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k0kubun/colorstring"
	"github.com/k0kubun/pp"
)

// Logger wraps a slog.Logger for the build/query error taxonomy of
// spec §7: build-time problems are fatal, query-time problems are
// logged but never panic.
type Logger struct {
	slog *slog.Logger
}

// NewLogger returns a Logger writing leveled text logs to stderr.
func NewLogger() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(os.Stderr, nil))}
}

// NewLoggerWithWriter returns a Logger writing to w, for tests that want
// to capture output.
func NewLoggerWithWriter(w io.Writer) *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(w, nil))}
}

// Info logs at info level with structured key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs at warn level, used for query-time range/logic errors that
// are dropped rather than faulted per spec §7.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Fatalf logs at error level then panics, for build-time format/logic
// errors that spec §7 requires to fail fast.
func (l *Logger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.slog.Error(msg)
	panic(msg)
}

// Dump pretty-prints v (a lattice, candidate list, or dictionary
// fragment) to stderr for interactive debugging, the direct descendant
// of the teacher's pp.Print(person.index)-style dumps.
func Dump(v any) {
	pp.Print(v)
}

// Highlight wraps s in colorstring markup and resolves it, used to call
// out a fallback/unknown-word arc or dropped candidate in a Dump.
func Highlight(tag, s string) string {
	return colorstring.Color(fmt.Sprintf("[%s]%s[reset]", tag, s))
}
