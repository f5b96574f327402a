package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"

	"tidylog/internal/sanitize"
)

// journalHandler forwards records to systemd-journald. Timestamps and
// storage are the journal's business; only the sanitized message, the
// key=value fields, and a mapped syslog priority go over.
type journalHandler struct {
	level slog.Level
	name  string

	attrs []slog.Attr
	group string
}

// newJournalHandler returns nil when no journal socket is present.
func newJournalHandler(name string, level slog.Level) *journalHandler {
	if !journal.Enabled() {
		return nil
	}
	return &journalHandler{level: level, name: name}
}

func (h *journalHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *journalHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(sanitize.Clean(r.Message))
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	return journal.Send(b.String(), journalPriority(r.Level), map[string]string{
		"SYSLOG_IDENTIFIER": h.name,
	})
}

func (h *journalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := *h
	cp.attrs = appendAttrs(h.attrs, h.group, attrs)
	return &cp
}

func (h *journalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.group = joinGroup(h.group, name)
	return &cp
}

func journalPriority(l slog.Level) journal.Priority {
	switch {
	case l < slog.LevelInfo:
		return journal.PriDebug
	case l < slog.LevelWarn:
		return journal.PriInfo
	case l < slog.LevelError:
		return journal.PriWarning
	case l < LevelCritical:
		return journal.PriErr
	default:
		return journal.PriCrit
	}
}
