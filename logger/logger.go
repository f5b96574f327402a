package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"tidylog/internal/rotate"
	"tidylog/internal/sanitize"
)

// entry is the live state behind one named logger.
type entry struct {
	handler *atomicHandler
	logger  *slog.Logger
	file    *rotate.Writer
}

// Process-wide registry. Entries are created on the first Configure call for
// a name and persist for the process lifetime (or until Shutdown).
var (
	regMu    sync.Mutex
	registry = map[string]*entry{}
)

// New configures the named logger with the four common knobs: console output
// always, file output in dir when save is set.
func New(name, dir, level string, save bool) (*slog.Logger, error) {
	return Configure(Config{Name: name, Dir: dir, Level: level, Save: save})
}

// Configure builds (or rebuilds) the named logger described by cfg and
// returns its handle. A repeat call for the same name replaces the previous
// output set — never stacks onto it — and returns the same handle, which
// picks up the new configuration immediately. Directory creation failures
// are returned as *DirectoryError; the previous configuration, if any, stays
// in effect.
func Configure(cfg Config) (*slog.Logger, error) {
	cfg = cfg.withDefaults()
	level := ParseLevel(cfg.Level)

	regMu.Lock()
	defer regMu.Unlock()

	color := stdoutIsTTY()
	if cfg.ForceColor != nil {
		color = *cfg.ForceColor
	}
	handlers := []slog.Handler{newConsoleHandler(cfg.Name, level, color, cfg.ThrottlePerSec)}

	var fw *rotate.Writer
	if cfg.Save {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, &DirectoryError{Path: cfg.Dir, Err: err}
		}
		base := sanitize.Filename(cfg.Name) + ".log"
		if cfg.ArchiveOld {
			if err := rotate.ArchiveOld(cfg.Dir, base); err != nil {
				fmt.Fprintf(os.Stderr, "tidylog: archiving old logs in %s: %v\n", cfg.Dir, err)
			}
		}
		fw = rotate.New(filepath.Join(cfg.Dir, base), cfg.Backups)
		handlers = append(handlers, newFileHandler(cfg.Name, level, fw))
	}

	if cfg.Journal {
		if jh := newJournalHandler(cfg.Name, level); jh != nil {
			handlers = append(handlers, jh)
		}
	}

	e, ok := registry[cfg.Name]
	if !ok {
		e = &entry{handler: newAtomicHandler(newFanout(handlers...))}
		e.logger = slog.New(e.handler)
		registry[cfg.Name] = e
	} else {
		// Detach the previous set before the new one takes over.
		if e.file != nil {
			_ = e.file.Close()
		}
		e.handler.Swap(newFanout(handlers...))
	}
	e.file = fw
	return e.logger, nil
}

// Shutdown closes every file writer and clears the registry. Meant for
// process shutdown and tests; handlers otherwise persist for the process
// lifetime.
func Shutdown() {
	regMu.Lock()
	defer regMu.Unlock()
	for name, e := range registry {
		if e.file != nil {
			_ = e.file.Close()
		}
		delete(registry, name)
	}
}
