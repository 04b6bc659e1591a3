package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime

var (
	nullWriter   = &NullWriter{}
	currentLevel = ERROR
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	InitializeWithWriters(ERROR, nullWriter, nullWriter)
}

// Initialize enables every logger up to and including logLevel. Errors go
// to stderr, everything else to stdout.
func Initialize(logLevel LogLevel) {
	InitializeWithWriters(logLevel, os.Stdout, os.Stderr)
}

func InitializeWithWriters(logLevel LogLevel, out io.Writer, errOut io.Writer) {
	currentLevel = logLevel

	Error = newLogger(logLevel >= ERROR, errOut, "ERROR: ")
	Warn = newLogger(logLevel >= WARN, out, "WARN:  ")
	Info = newLogger(logLevel >= INFO, out, "INFO:  ")
	Debug = newLogger(logLevel >= DEBUG, out, "DEBUG: ")
	Trace = newLogger(logLevel >= TRACE, out, "TRACE: ")
}

func newLogger(enabled bool, writer io.Writer, prefix string) *log.Logger {
	if !enabled {
		writer = nullWriter
	}
	return log.New(writer, prefix, logFlags)
}

// IsLogLevel tells if messages of the given level are written anywhere.
func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}
