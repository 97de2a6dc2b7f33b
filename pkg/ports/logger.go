// Package ports defines interfaces for external dependencies.
package ports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLogLevel is returned by ParseLogLevel for unrecognized names.
var ErrUnknownLogLevel = errors.New("ports: unknown log level")

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug covers per-frame and per-block details from stages and the muxer.
	LevelDebug LogLevel = iota
	// LevelInfo covers pipeline progress.
	LevelInfo
	// LevelWarn covers problems the run recovers from, such as a resized frame.
	LevelWarn
	// LevelError covers failures that abort the run.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel parses a level name, case-insensitively. "warning" is accepted
// as an alias of "warn".
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, s)
}

// Logger abstracts logging operations with multi-language support.
// msg is a translation key; args are applied after translation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
