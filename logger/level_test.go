package logger

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"critical", LevelCritical},
		{"CRIT", LevelCritical},
		{"  info  ", slog.LevelInfo},
		{"", DefaultLevel},
		{"verbose", DefaultLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelNameTotal(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelInfo + 1, "INFO"},
		{slog.LevelWarn, "WARNING"},
		{slog.LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{LevelCritical + 100, "CRITICAL"},
		{slog.LevelDebug - 100, "DEBUG"},
	}
	for _, tt := range tests {
		if got := levelName(tt.in); got != tt.want {
			t.Errorf("levelName(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColorizeDistinctPerLevel(t *testing.T) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, LevelCritical}
	seen := map[string]slog.Level{}
	for _, lvl := range levels {
		wrapped := colorize(lvl, "x", true)
		if wrapped == "x" {
			t.Fatalf("level %v: no wrapping applied", lvl)
		}
		if !strings.HasSuffix(wrapped, "x"+ansiReset) {
			t.Fatalf("level %v: missing reset sequence in %q", lvl, wrapped)
		}
		start := strings.TrimSuffix(wrapped, "x"+ansiReset)
		if start == "" {
			t.Fatalf("level %v: empty start sequence", lvl)
		}
		if prev, dup := seen[start]; dup {
			t.Fatalf("levels %v and %v share color %q", prev, lvl, start)
		}
		seen[start] = lvl
	}
}

func TestColorizeDisabledReturnsInput(t *testing.T) {
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelWarn, LevelCritical} {
		if got := colorize(lvl, "plain line", false); got != "plain line" {
			t.Fatalf("colorize(%v, disabled) = %q", lvl, got)
		}
	}
}
