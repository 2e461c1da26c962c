package audit

import (
	"context"
	"fmt"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

const (
	defaultLogPage = 50
	maxLogPage     = 500
)

type reader interface {
	List(ctx context.Context, action domain.AuditAction, limit, offset int) ([]domain.AuditRecord, error)
}

// Log serves the stored audit trail to the clerk.
type Log struct {
	store reader
}

// NewLog creates a Log over the given store.
func NewLog(store reader) *Log {
	return &Log{store: store}
}

// List returns audit records newest first. An empty action lists every
// action.
func (l *Log) List(ctx context.Context, action domain.AuditAction, limit, offset int) ([]domain.AuditRecord, error) {
	if _, err := authz.Require(ctx, authz.Admins); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	switch {
	case limit <= 0:
		limit = defaultLogPage
	case limit > maxLogPage:
		limit = maxLogPage
	}

	records, err := l.store.List(ctx, action, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return records, nil
}
