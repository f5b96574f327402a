// Package sanitize filters log message text and logger names before they
// reach any output. Both functions are total and idempotent.
package sanitize

import (
	"regexp"
	"strings"
)

// emojiClass matches the emoji and symbol ranges stripped from log output,
// including everything above the Basic Multilingual Plane.
var emojiClass = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}` +
	`\x{200D}\x{23CF}\x{23E9}\x{23EA}-\x{23ED}\x{23EF}\x{23F0}-\x{23F3}` +
	`\x{25A0}-\x{25FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}\x{2B00}-\x{2BFF}` +
	`\x{10000}-\x{10FFFF}` +
	`]+`)

// controlClass matches C0 controls (minus tab and newline) and DEL. These
// corrupt both terminals and plain-text log files.
var controlClass = regexp.MustCompile(`[\x00-\x08\x0B-\x1F\x7F]`)

// unsafeFilename matches every character outside the file name allow-list.
var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// fallbackName is used when a logger name sanitizes away entirely.
const fallbackName = "logger"

// Clean returns s with the arrow character rewritten to "-->", control
// characters removed, and emoji stripped. The all-ASCII fast path skips the
// emoji pass.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "→", "-->")
	s = controlClass.ReplaceAllString(s, "")
	if hasNonASCII(s) {
		s = emojiClass.ReplaceAllString(s, "")
	}
	return s
}

// Filename maps an arbitrary logger name to a filesystem-safe token.
// Characters outside [A-Za-z0-9._-] become underscores; the empty string
// maps to a fixed fallback.
func Filename(s string) string {
	if s == "" {
		return fallbackName
	}
	return unsafeFilename.ReplaceAllString(s, "_")
}

func hasNonASCII(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r > 0x7F }) >= 0
}
