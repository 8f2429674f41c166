// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is attached to every log line.
const ServiceName = "bag-pricing-service"

// Init configures the global logger. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	InitWithWriter(level, pretty, os.Stderr)
}

// InitWithWriter is Init with an explicit output.
func InitWithWriter(level string, pretty bool, w io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
	// Contexts without a request logger fall back to the global one.
	zerolog.DefaultContextLogger = &log.Logger
}

// ParseLevel maps debug, info, warn and error to zerolog levels.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithContext returns a logger carrying fields.
func WithContext(fields map[string]interface{}) zerolog.Logger {
	return log.Logger.With().Fields(fields).Logger()
}

// OpenAuditSink opens the destination of audit entries. An empty path means
// stderr, which is never closed.
func OpenAuditSink(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
