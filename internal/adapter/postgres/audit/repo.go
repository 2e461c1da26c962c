// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO audit_log (id, actor_id, action, details, ip_address, user_agent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const listSQL = `
SELECT id, actor_id, action, details, ip_address, user_agent, created_at
FROM audit_log
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

const listByActionSQL = `
SELECT id, actor_id, action, details, ip_address, user_agent, created_at
FROM audit_log
WHERE action = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// Name identifies this sink in logs and metrics.
func (r *Repo) Name() string { return "postgres" }

// Write appends an audit record.
func (r *Repo) Write(ctx context.Context, rec domain.AuditRecord) error {
	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	details := rec.Details
	if details == nil {
		details = map[string]any{}
	}

	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		id, rec.ActorID, string(rec.Action), details, rec.IPAddress, rec.UserAgent, rec.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", id)
	}
	return nil
}

// List returns audit records newest first. An empty action lists all.
func (r *Repo) List(ctx context.Context, action domain.AuditAction, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	records := make([]domain.AuditRecord, 0)

	var err error
	if action == "" {
		err = pgxscan.Select(ctx, q, &records, listSQL, limit, offset)
	} else {
		err = pgxscan.Select(ctx, q, &records, listByActionSQL, string(action), limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	return records, nil
}
