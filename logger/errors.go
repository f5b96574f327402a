package logger

import "fmt"

// DirectoryError reports that the log directory could not be created or is
// not usable (for example, a path component is a regular file).
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("log directory %q: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }
