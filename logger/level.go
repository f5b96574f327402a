package logger

import (
	"log/slog"
	"strings"
)

// LevelCritical sits above slog's built-in range. slog treats levels as an
// open integer scale, so handlers compare it like any other level.
const LevelCritical = slog.LevelError + 4

// DefaultLevel is substituted for unrecognized level strings.
const DefaultLevel = slog.LevelInfo

// ParseLevel maps a level name to its slog value. Matching is
// case-insensitive; unknown or empty input falls back to DefaultLevel rather
// than failing.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "CRIT", "CRITICAL":
		return LevelCritical
	default:
		return DefaultLevel
	}
}

// levelName renders the five level names used on both output paths. The
// thresholds make it total over the whole slog.Level range.
func levelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	case l < LevelCritical:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}

const ansiReset = "\x1b[0m"

// levelColor returns the ANSI start sequence for a level, using the same
// thresholds as levelName.
func levelColor(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "\x1b[36m" // cyan
	case l < slog.LevelWarn:
		return "\x1b[32m" // green
	case l < slog.LevelError:
		return "\x1b[33m" // yellow
	case l < LevelCritical:
		return "\x1b[31m" // red
	default:
		return "\x1b[1;91m" // bold bright red
	}
}

// colorize wraps a formatted console line in the level's color pair. With
// color disabled the line passes through untouched. File output never goes
// through here.
func colorize(l slog.Level, line string, enabled bool) string {
	if !enabled {
		return line
	}
	return levelColor(l) + line + ansiReset
}
