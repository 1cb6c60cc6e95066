package logging

import (
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes leveled messages, discarding anything below its minimum level
type Logger struct {
	level int
	l     *log.Logger
}

// CreateLogger returns a new Logger writing to standard error at the given
// minimum level
func CreateLogger(level int) *Logger {
	return &Logger{level: level, l: log.New(os.Stderr, "", log.LstdFlags)}
}

// CreateLoggerTo returns a new Logger writing to w at the given minimum level
func CreateLoggerTo(w io.Writer, level int) *Logger {
	return &Logger{level: level, l: log.New(w, "", log.LstdFlags)}
}

// Logf logs a message at the given level
func (lg *Logger) Logf(level int, format string, args ...interface{}) {
	if lg == nil || level < lg.level {
		return
	}
	lg.l.Printf("level [%s]: "+format, append([]interface{}{LogLevelToString(level)}, args...)...)
}
