// Package app provides logger initialization.
package app

import (
	"io"

	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/logger"
	"github.com/guttosm/bag-pricing-service/internal/middleware"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}

// AuditComponents holds the audit trail writer and its sink.
type AuditComponents struct {
	Writer service.AuditWriter
	sink   io.Closer
}

// InitializeAudit opens the audit sink and starts the async audit workers.
func InitializeAudit(cfg config.AuditConfig) (*AuditComponents, error) {
	sink, err := logger.OpenAuditSink(cfg.File)
	if err != nil {
		return nil, err
	}
	writer := service.NewAuditWriter(sink)

	asyncCfg := middleware.DefaultAsyncLoggerConfig()
	if cfg.Workers > 0 {
		asyncCfg.NumWorkers = cfg.Workers
	}
	if cfg.BufferSize > 0 {
		asyncCfg.BufferSize = cfg.BufferSize
	}
	middleware.InitAsyncLogger(writer, asyncCfg)

	return &AuditComponents{Writer: writer, sink: sink}, nil
}

// Close drains pending audit entries and closes the sink.
func (a *AuditComponents) Close() error {
	middleware.StopAsyncLogger()
	if a.sink == nil {
		return nil
	}
	return a.sink.Close()
}
