package service

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// ErrNilAuditEntry is returned when Write receives a nil entry.
var ErrNilAuditEntry = errors.New("audit entry is nil")

// AuditWriter persists audit entries.
// This interface can be mocked for testing.
type AuditWriter interface {
	Write(ctx context.Context, entry *model.AuditEntry) error
}

// ZerologAuditWriter writes audit entries as JSON lines through zerolog.
type ZerologAuditWriter struct {
	logger zerolog.Logger
}

// NewAuditWriter creates an audit writer on w. Concurrent writes are
// serialized so lines never interleave.
func NewAuditWriter(w io.Writer) *ZerologAuditWriter {
	return &ZerologAuditWriter{
		logger: zerolog.New(zerolog.SyncWriter(w)).With().Str("channel", "audit").Logger(),
	}
}

// Write emits entry. A cancelled context drops the entry.
func (w *ZerologAuditWriter) Write(ctx context.Context, entry *model.AuditEntry) error {
	if entry == nil {
		return ErrNilAuditEntry
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Log bypasses the global level so LOG_LEVEL never silences the trail.
	event := w.logger.Log().
		Str(zerolog.LevelFieldName, auditLevel(entry.Level).String()).
		Time("timestamp", entry.Timestamp).
		Str("action_type", entry.ActionType).
		Str("request_id", entry.RequestID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent)
	if entry.Subject != "" {
		event = event.Str("subject", entry.Subject)
	}
	if entry.Error != "" {
		event = event.Str("error", entry.Error)
	}
	if len(entry.Fields) > 0 {
		event = event.Fields(entry.Fields)
	}
	event.Msg(entry.Message)
	return nil
}

func auditLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
