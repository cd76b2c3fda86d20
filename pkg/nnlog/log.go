// Package nnlog is the runtime's internal logger: a level-gated writer to
// stderr, tagged with the component that produced the line so a guard
// failure can be traced back to its subsystem.
package nnlog

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Log levels, lowest-to-highest verbosity.
const (
	Error = iota
	Warn
	Info
	Debug
)

// Level is the process-wide verbosity gate. Messages above Level are dropped.
var Level = Warn

// Component names used as the bracketed prefix on every log line.
const (
	Tensor    = "tensor"
	Op        = "op"
	Graph     = "graph"
	Backend   = "backend"
	Registry  = "backend-registry"
	ExtLoad   = "ext-load"
	Cache     = "cache"
	Compiler  = "compiler"
	Executor  = "executor"
)

func levelToString(level int) string {
	switch level {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Printf logs a message at the given level, tagged with component.
func Printf(component string, level int, format string, args ...interface{}) {
	if level <= Level {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", levelToString(level), component, fmt.Sprintf(format, args...))
	}
}

// NewCorrelationID returns a short random tag callers thread through the
// log lines of one compile or run, so interleaved invocations can be told
// apart in a shared stderr stream.
func NewCorrelationID() string {
	return uuid.NewString()[:8]
}

func Errorf(component, format string, args ...interface{}) { Printf(component, Error, format, args...) }
func Warnf(component, format string, args ...interface{})  { Printf(component, Warn, format, args...) }
func Infof(component, format string, args ...interface{})  { Printf(component, Info, format, args...) }
func Debugf(component, format string, args ...interface{}) { Printf(component, Debug, format, args...) }
