// Package logging builds the structured loggers used by the vocal binaries.
package logging

import (
	"io"
	log "log/slog"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// ParseLevel returns the level with the given name. Unknown names are info.
func ParseLevel(name string) (log.Level, bool) {
	l, ok := logLevelMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return log.LevelInfo, false
	}
	return l, true
}

// New creates a colorized logger writing to w at the named level.
func New(w io.Writer, level string) *log.Logger {
	l, _ := ParseLevel(level)
	return log.New(tint.NewHandler(w, &tint.Options{
		Level:   l,
		NoColor: !isTerminal(w),
	}))
}

// isTerminal reports whether w is a terminal, so that color is only written
// where it can be shown.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
