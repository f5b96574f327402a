package logger

import (
	"context"
	"log/slog"
	"sync"
)

// atomicHandler lets Configure swap a logger's output set while handles
// returned from earlier calls keep working. Derived loggers (With/WithGroup)
// bind to the set current at derivation time and detach from later swaps.
type atomicHandler struct {
	mu sync.RWMutex
	h  slog.Handler
}

func newAtomicHandler(h slog.Handler) *atomicHandler { return &atomicHandler{h: h} }

func (a *atomicHandler) Swap(h slog.Handler) {
	a.mu.Lock()
	a.h = h
	a.mu.Unlock()
}

func (a *atomicHandler) cur() slog.Handler {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.h
}

func (a *atomicHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return a.cur().Enabled(ctx, level)
}
func (a *atomicHandler) Handle(ctx context.Context, r slog.Record) error {
	return a.cur().Handle(ctx, r)
}
func (a *atomicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return a.cur().WithAttrs(attrs)
}
func (a *atomicHandler) WithGroup(name string) slog.Handler {
	return a.cur().WithGroup(name)
}

// fanout dispatches one record to every attached output component. Each
// component applies its own minimum-level gate.
type fanout struct{ hs []slog.Handler }

func newFanout(hs ...slog.Handler) slog.Handler { return &fanout{hs: hs} }

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(f.hs))
	for i, h := range f.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &fanout{hs: hs}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(f.hs))
	for i, h := range f.hs {
		hs[i] = h.WithGroup(name)
	}
	return &fanout{hs: hs}
}
