package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

type Logger struct {
	mu        sync.Mutex
	logger    *log.Logger
	level     LogLevel
	closer    io.Closer
	debugMode bool
}

// The TUI owns stdout, so the global logger only ever writes to a file.
var globalLogger *Logger

// InitLogger initializes the global logger
func InitLogger(logPath string, level LogLevel, debugMode bool) error {
	l, err := NewFileLogger(logPath, level)
	if err != nil {
		return err
	}
	l.debugMode = debugMode
	globalLogger = l
	return nil
}

// SetGlobal replaces the global logger. Passing nil silences logging.
func SetGlobal(l *Logger) {
	globalLogger = l
}

// CloseLogger closes the global logger
func CloseLogger() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

func Debug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.debugMode {
		globalLogger.log(DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(INFO, format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(WARN, format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(ERROR, format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(FATAL, format, args...)
	}
	os.Exit(1)
}

// NewFileLogger creates a logger that appends to logPath
func NewFileLogger(logPath string, level LogLevel) (*Logger, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriterLogger(file, level)
	l.closer = file
	return l, nil
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		logger:    log.New(w, "", 0),
		level:     level,
		debugMode: level == DEBUG,
	}
}

// Close closes the underlying file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// SetDebugMode enables/disables debug mode
func (l *Logger) SetDebugMode(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugMode = enable
}

// log writes one line. Callers sit two frames above it, either a package
// level helper or a Logger method.
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var caller string
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
	}

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s]%s %s", timestamp, level, caller, message)
}

// Debug logs a debug message (only if debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debugMode {
		l.log(DEBUG, format, args...)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}
