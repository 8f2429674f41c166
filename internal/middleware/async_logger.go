package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/logger"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async audit logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines draining the buffer.
	NumWorkers int
	// WriteTimeout bounds a single write to the audit sink.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger feeds audit entries to a fixed worker pool. When the buffer is
// full new entries are dropped rather than blocking the request.
type AsyncLogger struct {
	writer       service.AuditWriter
	entryCh      chan *model.AuditEntry
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	writeTimeout time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger creates an async logger writing to writer. It returns nil
// when writer is nil.
func NewAsyncLogger(writer service.AuditWriter, cfg AsyncLoggerConfig) *AsyncLogger {
	if writer == nil {
		return nil
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.BufferSize < 0 {
		cfg.BufferSize = 0
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultAsyncLoggerConfig().WriteTimeout
	}

	al := &AsyncLogger{
		writer:       writer,
		entryCh:      make(chan *model.AuditEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.writeEntry(entry)
		case <-al.stopCh:
			// Drain what is left before exiting.
			for {
				select {
				case entry := <-al.entryCh:
					al.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.writer.Write(ctx, entry); err != nil {
		al.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).Str("action_type", entry.ActionType).Msg("Failed to write audit entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues an entry. It returns false when the buffer is full or the
// logger is stopped.
func (al *AsyncLogger) Log(entry *model.AuditEntry) bool {
	select {
	case <-al.stopCh:
		al.dropped.Add(1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop waits for pending entries to be written. It is safe to call twice.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns current async logger counters.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.errors.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the global async logger, stopping any previous one.
func InitAsyncLogger(writer service.AuditWriter, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(writer, cfg)
}

// GetAsyncLogger returns the global async logger instance, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger gracefully shuts down the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
