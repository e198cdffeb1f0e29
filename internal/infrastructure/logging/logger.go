package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/andrescamacho/fuelplan-go/internal/application/common"
	"github.com/andrescamacho/fuelplan-go/internal/infrastructure/config"
)

// Logger wraps slog and keeps the rotating file writer, if any, so it can be
// closed on shutdown
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New builds a logger from the logging configuration
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer
		closer io.Closer
	)
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging.file_path is required when output is file")
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.Rotation.MaxSize, // MB
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAge,
			Compress:   cfg.Rotation.Compress,
		}
		w, closer = lj, lj
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	return &Logger{
		Logger: slog.New(newHandler(w, cfg.Format, level, cfg.IncludeCaller)),
		closer: closer,
	}, nil
}

// NewWithWriter builds a logger writing to w, for tests and embedding
func NewWithWriter(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: slog.New(newHandler(w, format, lvl, false))}, nil
}

func newHandler(w io.Writer, format string, level slog.Level, addSource bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps a configured level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
}

// Close flushes and closes the log file when logging to a file
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// PlanLogger adapts the logger to common.PlanLogger
func (l *Logger) PlanLogger() common.PlanLogger {
	return &slogPlanLogger{logger: l.Logger}
}

// WithContext stores the logger in ctx for application handlers
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return common.WithLogger(ctx, l.PlanLogger())
}

type slogPlanLogger struct {
	logger *slog.Logger
}

// Log maps the handler level names onto slog levels and metadata onto attributes
func (s *slogPlanLogger) Log(level, message string, metadata map[string]interface{}) {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARNING", "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	attrs := make([]slog.Attr, 0, len(metadata))
	for k, v := range metadata {
		attrs = append(attrs, slog.Any(k, v))
	}
	s.logger.LogAttrs(context.Background(), lvl, message, attrs...)
}
