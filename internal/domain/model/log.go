package model

import "time"

// AuditEntry records an economist or manager action worth keeping a trail of,
// such as a configuration replacement or a spreadsheet export.
type AuditEntry struct {
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Subject    string                 `json:"subject,omitempty"`
	ActionType string                 `json:"action_type,omitempty"` // e.g. "update_config", "export"
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}
