package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"
)

// consoleOut is swappable so tests can capture output. The default passes
// through go-colorable so ANSI sequences render on legacy Windows consoles.
var consoleOut io.Writer = defaultConsoleOut()

// stdoutIsTTY answers the capability query behind color auto-detection.
// Swappable for tests.
var stdoutIsTTY = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func defaultConsoleOut() io.Writer {
	if fd := os.Stdout.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return colorable.NewColorable(os.Stdout)
	}
	return os.Stdout
}

// consoleHandler renders colorized single-line records to the console.
type consoleHandler struct {
	w       io.Writer
	mu      *sync.Mutex
	level   slog.Level
	name    string
	color   bool
	limiter *rate.Limiter // nil means unthrottled

	attrs []slog.Attr
	group string
}

func newConsoleHandler(name string, level slog.Level, color bool, throttle int) *consoleHandler {
	h := &consoleHandler{
		w:     consoleOut,
		mu:    &sync.Mutex{},
		level: level,
		name:  name,
		color: color,
	}
	if throttle > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(throttle), throttle)
	}
	return h
}

func (h *consoleHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	// Storm protection: over-budget records are dropped, never queued.
	if h.limiter != nil && !h.limiter.Allow() {
		return nil
	}
	line := colorize(r.Level, formatLine(r, h.name, h.attrs, h.group), h.color)
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := *h
	cp.attrs = appendAttrs(h.attrs, h.group, attrs)
	return &cp
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.group = joinGroup(h.group, name)
	return &cp
}
