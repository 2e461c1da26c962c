// Package speech implements the SpeechRequest repository using PostgreSQL.
// is_speaking is derived from the council control record.
package speech

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides speech request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new speech request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const requestColumns = `r.id, r.session_id, r.user_id, r.citizen_name, r.citizen_profession, r.type, r.subject,
    r.is_approved, r.order_index,
    COALESCE(c.speaking_request_id = r.id, false) AS is_speaking,
    r.has_spoken, r.time_limit_minutes, r.started_at, r.ended_at, r.created_at`

const createSQL = `
WITH r AS (
    INSERT INTO speech_requests (id, session_id, user_id, citizen_name, citizen_profession, type, subject, is_approved, order_index)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING *
)
SELECT ` + requestColumns + `
FROM r CROSS JOIN council_control c`

const getByIDSQL = `
SELECT ` + requestColumns + `
FROM speech_requests r CROSS JOIN council_control c
WHERE r.id = $1`

const nextOrderIndexSQL = `
SELECT COALESCE(max(order_index), 0) + 1
FROM speech_requests
WHERE session_id = $1 AND type = $2`

const setApprovedSQL = `UPDATE speech_requests SET is_approved = $2 WHERE id = $1`

const setOrderIndexSQL = `UPDATE speech_requests SET order_index = $2 WHERE id = $1`

const markStartedSQL = `
UPDATE speech_requests
SET started_at = $2, time_limit_minutes = $3, ended_at = NULL
WHERE id = $1`

const markEndedSQL = `
UPDATE speech_requests
SET has_spoken = true, ended_at = $2
WHERE id = $1`

const deleteSQL = `DELETE FROM speech_requests WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a speech request with its derived speaking flag.
// Returns domain.ErrNotFound if the request does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error) {
	req, err := scanRequest(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "speech_request", id)
	}
	return req, nil
}

// List returns the requests of a session ordered by type and order_index.
func (r *Repo) List(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error) {
	q := postgres.Builder.
		Select(requestColumns).
		From("speech_requests r").
		Join("council_control c ON true").
		Where(sq.Eq{"r.session_id": filter.SessionID}).
		OrderBy("r.type ASC", "r.order_index ASC", "r.created_at ASC")

	if filter.Type != nil {
		q = q.Where(sq.Eq{"r.type": string(*filter.Type)})
	}
	if filter.OnlyApproved {
		q = q.Where(sq.Eq{"r.is_approved": true})
	}
	if filter.UserID != nil {
		q = q.Where(sq.Eq{"r.user_id": *filter.UserID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list speech requests: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list speech requests: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SpeechRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan speech request: %w", err)
		}
		result = append(result, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list speech requests: %w", err)
	}

	return result, nil
}

// NextOrderIndex returns one past the highest order_index for the session
// and type.
func (r *Repo) NextOrderIndex(ctx context.Context, sessionID uuid.UUID, speechType domain.SpeechType) (int, error) {
	var idx int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, nextOrderIndexSQL, sessionID, string(speechType)).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("next speech order index: %w", err)
	}
	return idx, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new speech request.
func (r *Repo) Create(ctx context.Context, req *domain.SpeechRequest) (*domain.SpeechRequest, error) {
	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		id, req.SessionID, req.UserID, req.CitizenName, req.CitizenProfession,
		string(req.Type), req.Subject, req.IsApproved, req.OrderIndex,
	)

	created, err := scanRequest(row)
	if err != nil {
		return nil, postgres.MapError(err, "speech_request", id)
	}
	return created, nil
}

// SetApproved grants or revokes approval.
func (r *Repo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	return r.execOne(ctx, setApprovedSQL, id, approved)
}

// SetOrderIndex moves the request within its queue.
func (r *Repo) SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error {
	return r.execOne(ctx, setOrderIndexSQL, id, orderIndex)
}

// MarkStarted stamps started_at, stores the time limit and clears ended_at.
func (r *Repo) MarkStarted(ctx context.Context, id uuid.UUID, at time.Time, timeLimitMinutes int) error {
	return r.execOne(ctx, markStartedSQL, id, at, timeLimitMinutes)
}

// MarkEnded flags the request as spoken and stamps ended_at.
func (r *Repo) MarkEnded(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.execOne(ctx, markEndedSQL, id, at)
}

// Delete removes a speech request. Returns domain.ErrNotFound if nothing was
// deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, deleteSQL, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) execOne(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, "speech_request", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("speech_request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRequest(row postgres.Row) (*domain.SpeechRequest, error) {
	var (
		req        domain.SpeechRequest
		speechType string
	)

	err := row.Scan(
		&req.ID, &req.SessionID, &req.UserID, &req.CitizenName, &req.CitizenProfession, &speechType, &req.Subject,
		&req.IsApproved, &req.OrderIndex,
		&req.IsSpeaking,
		&req.HasSpoken, &req.TimeLimit, &req.StartedAt, &req.EndedAt, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Type = domain.SpeechType(speechType)
	return &req, nil
}
