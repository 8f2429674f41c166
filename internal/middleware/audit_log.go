package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// Audit action types.
const (
	ActionUpdateConfig = "update_config"
	ActionExport       = "export"
)

// AuditLog records a successful action such as a configuration replacement
// or a spreadsheet export.
func AuditLog(writer service.AuditWriter, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	record(writer, newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed action.
func AuditLogError(writer service.AuditWriter, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	record(writer, entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.AuditEntry {
	return &model.AuditEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Subject:    GetSubject(c),
		ActionType: actionType,
		Fields:     fields,
	}
}

// record hands entry to the global async logger, or writes it from a
// goroutine when none is installed.
func record(writer service.AuditWriter, entry *model.AuditEntry) {
	if writer == nil {
		return
	}
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = writer.Write(ctx, entry)
	}()
}
