// Package rotate provides the daily-rotating log file writer: lumberjack
// handles archiving and retention, a cron trigger fires the rotation at each
// local midnight.
package rotate

import (
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

// maxFileMB keeps lumberjack's size trigger effectively disabled; rotation
// here is time-driven only.
const maxFileMB = 1 << 20

// Writer appends to a single active log file, rotates it at local midnight,
// and deletes the oldest archive once the backup count is exceeded. Archives
// carry lumberjack's local-time date suffix.
type Writer struct {
	lj *lumberjack.Logger
	c  *cron.Cron
}

// New builds a Writer for path keeping at most backups rotated files. The
// active file is created on first write.
func New(path string, backups int) *Writer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxFileMB,
		MaxBackups: backups,
		LocalTime:  true,
	}
	c := cron.New()
	// The wall-clock day boundary. Rotation failures are reported, not
	// retried; the next write keeps appending to the current file.
	_, _ = c.AddFunc("0 0 * * *", func() {
		if err := lj.Rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "tidylog: rotating %s: %v\n", path, err)
		}
	})
	c.Start()
	return &Writer{lj: lj, c: c}
}

func (w *Writer) Write(p []byte) (int, error) { return w.lj.Write(p) }

// Rotate forces an immediate rotation, exactly as the midnight trigger does.
func (w *Writer) Rotate() error { return w.lj.Rotate() }

// Close stops the midnight trigger, waits for an in-flight rotation, and
// closes the active file.
func (w *Writer) Close() error {
	<-w.c.Stop().Done()
	return w.lj.Close()
}
