package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tidylog/internal/sanitize"
)

const timeFormat = "2006-01-02T15:04:05.000"

// formatLine renders the line shared by the console and file paths:
//
//	<ts> [<LEVEL>] <name>: <message> key=value ...
//
// The message and string attribute values pass through sanitize.Clean before
// reaching any sink. fixed holds attributes baked in via WithAttrs (already
// group-prefixed); group prefixes the record's own attributes.
func formatLine(r slog.Record, name string, fixed []slog.Attr, group string) string {
	var b strings.Builder
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString(ts.Format(timeFormat))
	b.WriteString(" [")
	b.WriteString(levelName(r.Level))
	b.WriteString("] ")
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(sanitize.Clean(r.Message))
	for _, a := range fixed {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, group, a)
		return true
	})
	return b.String()
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		p := a.Key
		if prefix != "" {
			p = prefix + "." + p
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, p, ga)
		}
		return
	}
	b.WriteString(" ")
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(".")
	}
	b.WriteString(a.Key)
	b.WriteString("=")
	b.WriteString(attrValue(a.Value))
}

func attrValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return fmt.Sprintf("%q", sanitize.Clean(v.String()))
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		if err, ok := v.Any().(error); ok {
			return fmt.Sprintf("%q", sanitize.Clean(err.Error()))
		}
		return fmt.Sprint(v.Any())
	}
}

// appendAttrs merges WithAttrs additions into the baked attribute list,
// flattening the current group into key prefixes.
func appendAttrs(base []slog.Attr, group string, attrs []slog.Attr) []slog.Attr {
	out := append([]slog.Attr(nil), base...)
	for _, a := range attrs {
		if group != "" && a.Value.Kind() != slog.KindGroup {
			a.Key = group + "." + a.Key
		}
		out = append(out, a)
	}
	return out
}

func joinGroup(g, name string) string {
	if g == "" {
		return name
	}
	return g + "." + name
}
