package logger

// DefaultBackups is the rotated-file retention count used when Config leaves
// Backups unset.
const DefaultBackups = 7

// Config describes one named logger. The zero value plus a Name is usable:
// console only, INFO level, auto-detected color.
type Config struct {
	// Name identifies the logger and, sanitized, names its log file.
	Name string `yaml:"name"`
	// Dir is the log directory, created when Save is set. Defaults to "logs".
	Dir string `yaml:"dir"`
	// Level is the minimum severity (DEBUG, INFO, WARNING, ERROR, CRITICAL).
	// Unrecognized values default to INFO.
	Level string `yaml:"level"`
	// Save attaches the rotating file output.
	Save bool `yaml:"save"`
	// ForceColor overrides TTY auto-detection in either direction; nil keeps
	// auto-detection.
	ForceColor *bool `yaml:"force_color"`
	// Backups is the number of rotated files kept before the oldest is
	// deleted; zero or negative means DefaultBackups.
	Backups int `yaml:"backups"`
	// Journal forwards records to systemd-journald when its socket exists.
	Journal bool `yaml:"journal"`
	// ArchiveOld packs stale *.log files in Dir into a tar.gz before the
	// file output opens.
	ArchiveOld bool `yaml:"archive_old"`
	// ThrottlePerSec bounds console lines per second; zero disables
	// throttling. File output is never throttled.
	ThrottlePerSec int `yaml:"throttle_per_sec"`
}

func (c Config) withDefaults() Config {
	if c.Dir == "" {
		c.Dir = "logs"
	}
	if c.Backups <= 0 {
		c.Backups = DefaultBackups
	}
	return c
}
