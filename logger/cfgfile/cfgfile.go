// Package cfgfile loads logger configuration from a YAML file and can watch
// it for edits, re-applying the configuration on change.
package cfgfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	yaml "go.yaml.in/yaml/v3"

	"tidylog/logger"
)

// Load reads path and decodes it into a logger.Config.
func Load(path string) (logger.Config, error) {
	var cfg logger.Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Apply loads path and configures the logger it describes.
func Apply(path string) (*slog.Logger, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return logger.Configure(cfg)
}

// settle debounces the event bursts editors produce on save (partial writes,
// rename-over-replace).
const settle = 200 * time.Millisecond

// Watch re-applies the configuration whenever the file changes, until ctx is
// done. A failed reload keeps the previous configuration and is reported to
// stderr.
func Watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: editors replace files by rename, which drops a
	// watch placed on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	base := filepath.Base(path)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "tidylog: config watch: %v\n", err)
		case <-timer.C:
			if _, err := Apply(path); err != nil {
				fmt.Fprintf(os.Stderr, "tidylog: reloading %s: %v\n", path, err)
			}
		}
	}
}
