package logger

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// fileHandler writes the same line format as the console, without color, to
// the rotating file writer.
type fileHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	name  string

	attrs []slog.Attr
	group string
}

func newFileHandler(name string, level slog.Level, w io.Writer) *fileHandler {
	return &fileHandler{
		w:     w,
		mu:    &sync.Mutex{},
		level: level,
		name:  name,
	}
}

func (h *fileHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *fileHandler) Handle(_ context.Context, r slog.Record) error {
	line := formatLine(r, h.name, h.attrs, h.group)
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *fileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := *h
	cp.attrs = appendAttrs(h.attrs, h.group, attrs)
	return &cp
}

func (h *fileHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.group = joinGroup(h.group, name)
	return &cp
}
