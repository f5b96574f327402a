// Package logger configures named console-and-file loggers on top of
// log/slog.
//
// Configure attaches a colorized console handler and, on request, a
// daily-rotating file handler to a named logger. Repeated calls for the same
// name replace the previous outputs instead of stacking them, so a logger
// never emits duplicate lines, and handles returned from earlier calls keep
// working. Messages are sanitized (emoji and control characters removed)
// before they reach any output.
//
//	log, err := logger.New("app", "logs", "info", true)
//	if err != nil {
//		// the log directory could not be created
//	}
//	log.Info("service ready", "port", 8080)
//
// Console lines are wrapped in a per-level color when stdout is a terminal;
// Config.ForceColor overrides the detection in either direction. File output
// is always plain text, rotates at local midnight, and keeps a bounded
// number of dated archives.
package logger
