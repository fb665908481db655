package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogPath = "logs/coachmark.log"

// logSink is the shared destination of both loggers: stdout, plus the log
// file when it can be opened.
type logSink struct {
	once sync.Once
	path string
	file *os.File
	out  io.Writer
}

func (s *logSink) writer() io.Writer {
	s.once.Do(func() {
		s.out = os.Stdout

		path := s.path
		if path == "" {
			path = defaultLogPath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		s.file = f
		s.out = io.MultiWriter(os.Stdout, f)
	})
	return s.out
}

func (s *logSink) close() {
	if s.file != nil {
		_ = s.file.Close()
		s.file = nil
	}
}

// leveledLogger is a JSON logger whose level can change after creation.
type leveledLogger struct {
	once   sync.Once
	level  slog.LevelVar
	start  slog.Level
	attrs  []any
	logger *slog.Logger
}

func (l *leveledLogger) get() *slog.Logger {
	l.once.Do(func() {
		l.level.Set(l.start)
		handler := slog.NewJSONHandler(sink.writer(), &slog.HandlerOptions{Level: &l.level})
		l.logger = slog.New(handler).With(l.attrs...)
	})
	return l.logger
}

func (l *leveledLogger) setLevel(level slog.Level) {
	l.get()
	l.level.Set(level)
}

var (
	sink = &logSink{}

	appLogger = &leveledLogger{start: slog.LevelInfo}

	// The host logger stays at errors unless debugging, so frame level output
	// does not flood the application's log.
	hostLogger = &leveledLogger{start: slog.LevelError, attrs: []any{"component", "coachmark"}}
)

// SetLogPath sets the full path for the log file, including filename.
// Must be called before the first logger is requested.
func SetLogPath(path string) {
	sink.path = path
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	return appLogger.get()
}

// GetInternalLogger returns the logger used by the overlay host itself.
func GetInternalLogger() *slog.Logger {
	return hostLogger.get()
}

func SetLogLevel(level slog.Level) {
	appLogger.setLevel(level)
}

func SetInternalLogLevel(level slog.Level) {
	hostLogger.setLevel(level)
}

// ParseLogLevel maps a level name to a slog.Level. Unknown names are Info.
func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLogLevel(rawLevel))
}

func CloseLogger() {
	sink.close()
}
