// Package matter implements the Matter repository using PostgreSQL, including
// the session_matters link table.
package matter

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides matter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new matter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const matterColumns = `id, title, description, type, status, voting_started_at, voting_ended_at, created_by, created_at, updated_at`

const createSQL = `
INSERT INTO matters (id, title, description, type, status, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + matterColumns

const getByIDSQL = `
SELECT ` + matterColumns + `
FROM matters
WHERE id = $1`

const startVotingSQL = `
UPDATE matters
SET status = 'VOTING', voting_started_at = $2, voting_ended_at = NULL, updated_at = now()
WHERE id = $1`

const endVotingSQL = `
UPDATE matters
SET status = $2, voting_ended_at = $3, updated_at = now()
WHERE id = $1`

const attachSQL = `
INSERT INTO session_matters (session_id, matter_id)
VALUES ($1, $2)
ON CONFLICT (session_id, matter_id) DO NOTHING`

const detachSQL = `DELETE FROM session_matters WHERE session_id = $1 AND matter_id = $2`

// GetByID returns a matter by primary key.
// Returns domain.ErrNotFound if the matter does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	m, err := scanMatter(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "matter", id)
	}
	return m, nil
}

// List returns matters matching the filter, newest first. A SessionID
// restricts the result to matters attached to that session.
func (r *Repo) List(ctx context.Context, filter domain.MatterFilter) ([]domain.Matter, error) {
	q := postgres.Builder.
		Select(matterColumns).
		From("matters").
		OrderBy("created_at DESC", "id")

	if filter.SessionID != nil {
		q = q.Where(sq.Expr("id IN (SELECT matter_id FROM session_matters WHERE session_id = ?)", *filter.SessionID))
	}
	if filter.Status != nil {
		q = q.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list matters: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list matters: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Matter, 0)
	for rows.Next() {
		m, err := scanMatter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan matter: %w", err)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matters: %w", err)
	}

	return result, nil
}

// Create inserts a new matter.
func (r *Repo) Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := m.Status
	if status == "" {
		status = domain.MatterStatusDraft
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		id, m.Title, m.Description, m.Type, string(status), m.CreatedBy,
	)

	created, err := scanMatter(row)
	if err != nil {
		return nil, postgres.MapError(err, "matter", id)
	}
	return created, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MatterUpdateParams) (*domain.Matter, error) {
	q := postgres.Builder.Update("matters").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + matterColumns)

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Description != nil {
		if *params.Description == "" {
			q = q.Set("description", nil)
		} else {
			q = q.Set("description", *params.Description)
		}
	}
	if params.Type != nil {
		q = q.Set("type", *params.Type)
	}
	if params.Status != nil {
		q = q.Set("status", string(*params.Status))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update matter: %w", err)
	}

	m, err := scanMatter(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "matter", id)
	}
	return m, nil
}

// MarkVotingStarted moves the matter to VOTING and stamps voting_started_at.
func (r *Repo) MarkVotingStarted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.execOne(ctx, startVotingSQL, id, at)
}

// MarkVotingEnded records the final status and voting_ended_at.
func (r *Repo) MarkVotingEnded(ctx context.Context, id uuid.UUID, status domain.MatterStatus, at time.Time) error {
	return r.execOne(ctx, endVotingSQL, id, string(status), at)
}

// Attach links a matter to a session. Linking twice is a no-op.
func (r *Repo) Attach(ctx context.Context, sessionID, matterID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, attachSQL, sessionID, matterID); err != nil {
		return postgres.MapError(err, "matter", matterID)
	}
	return nil
}

// Detach removes the link between a matter and a session.
// Returns domain.ErrNotFound if they were not linked.
func (r *Repo) Detach(ctx context.Context, sessionID, matterID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, detachSQL, sessionID, matterID)
	if err != nil {
		return postgres.MapError(err, "matter", matterID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matter %s in session %s: %w", matterID, sessionID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) execOne(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, "matter", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("matter %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanMatter(row postgres.Row) (*domain.Matter, error) {
	var (
		m      domain.Matter
		status string
	)

	err := row.Scan(
		&m.ID, &m.Title, &m.Description, &m.Type, &status,
		&m.VotingStartedAt, &m.VotingEndedAt, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Status = domain.MatterStatus(status)
	return &m, nil
}
