// Package logger provides the diagnostic logging used by lookfor.
//
// Diagnostics always go to a separate writer (stderr in the CLI) so they never
// mix with the path listing on stdout. The default level is warn, which keeps
// a normal run silent.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "warn"

// Logger is the logging surface the search pipeline depends on.
type Logger interface {
	Enabled(level string) bool
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogSkipped(path string, err error)
	LogSummary(summary Summary)
}

// Summary describes a finished walk.
type Summary struct {
	Root     string
	Visited  int
	Matched  int
	Skipped  int
	Duration time.Duration
}

// ConsoleLogger writes levelled diagnostics with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to DefaultLevel.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// SetColor forces color output on or off, overriding terminal detection.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// Enabled reports whether messages at level would be written.
// Callers use it to skip building messages on hot paths.
func (cl *ConsoleLogger) Enabled(level string) bool {
	return cl.writer != nil && cl.shouldLog(strings.ToLower(level))
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// fatih/color already folds in TTY detection and NO_COLOR
		return !color.NoColor
	}

	return false
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return DefaultLevel
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelWarn
	}
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogSkipped records a node dropped by the walker. Debug level only.
func (cl *ConsoleLogger) LogSkipped(path string, err error) {
	cl.logWithLevel("DEBUG", fmt.Sprintf("skipped %s: %v", path, err))
}

// LogSummary logs the counters of a finished walk at debug level.
// Format: "[HH:MM:SS] [DEBUG] <root>: 12 matched / 40 visited, 1 skipped (3ms)"
func (cl *ConsoleLogger) LogSummary(summary Summary) {
	if !cl.Enabled("debug") {
		return
	}

	matched := fmt.Sprintf("%d matched", summary.Matched)
	skipped := fmt.Sprintf("%d skipped", summary.Skipped)
	if cl.colorOutput {
		matched = color.New(color.FgGreen).Sprint(matched)
		if summary.Skipped > 0 {
			skipped = color.New(color.FgYellow).Sprint(skipped)
		}
	}

	cl.logWithLevel("DEBUG", fmt.Sprintf("%s: %s / %d visited, %s (%s)",
		summary.Root, matched, summary.Visited, skipped, summary.Duration.Round(time.Microsecond)))
}

// logWithLevel is a helper that logs a message at the specified level if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}

	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

// formatWithColor formats a log message with ANSI color codes.
func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch level {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// NoOpLogger is a Logger implementation that discards all log messages.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) Enabled(level string) bool         { return false }
func (n *NoOpLogger) LogTrace(message string)           {}
func (n *NoOpLogger) LogDebug(message string)           {}
func (n *NoOpLogger) LogInfo(message string)            {}
func (n *NoOpLogger) LogSkipped(path string, err error) {}
func (n *NoOpLogger) LogSummary(summary Summary)        {}

var (
	_ Logger = (*ConsoleLogger)(nil)
	_ Logger = (*NoOpLogger)(nil)
)
