package shared

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a single entry in the activity history.
type AuditLog struct {
	ID       uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Meta     map[string]any
	At       time.Time
}

// AuditLogger keeps an append-only, in-memory activity history.
type AuditLogger struct {
	mu      sync.RWMutex
	entries []AuditLog
	now     func() time.Time
}

// NewAuditLogger returns a new AuditLogger.
func NewAuditLogger() *AuditLogger {
	return &AuditLogger{now: time.Now}
}

// Record appends the log entry. ID and At are filled in when left empty.
func (l *AuditLogger) Record(ctx context.Context, log AuditLog) error {
	if l == nil {
		return errors.New("audit logger not initialised")
	}
	if log.Action == "" || log.Entity == "" || log.EntityID == "" {
		return errors.New("audit log requires action/entity/entity_id")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.At.IsZero() {
		log.At = l.now()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, log)
	return nil
}

// Entries returns a snapshot of the history, oldest first.
func (l *AuditLogger) Entries() []AuditLog {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]AuditLog(nil), l.entries...)
}
