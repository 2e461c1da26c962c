// Package session implements the council Session repository using PostgreSQL.
// Fixed statements are raw SQL; list queries are composed with squirrel.
package session

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// SingleOpenIndex is the partial unique index allowing one non-CLOSED session.
const SingleOpenIndex = "sessions_single_open_idx"

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, number_seq, number_year, title, description, scheduled_at, status, quorum,
    is_attendance_open, attendance_started_at, attendance_ended_at, is_speech_requests_open,
    timer_started_at, timer_duration_seconds, timer_phase, started_at, closed_at,
    created_by, created_at, updated_at`

const createSQL = `
INSERT INTO sessions (id, number_seq, number_year, title, description, scheduled_at, status, quorum, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getCurrentSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE status <> 'CLOSED'
LIMIT 1`

const existsOpenSQL = `
SELECT EXISTS (SELECT 1 FROM sessions WHERE status <> 'CLOSED')`

const maxNumberSeqSQL = `
SELECT COALESCE(max(number_seq), 0) FROM sessions WHERE number_year = $1`

const saveStateSQL = `
UPDATE sessions
SET status = $2,
    is_attendance_open = $3,
    attendance_started_at = $4,
    attendance_ended_at = $5,
    is_speech_requests_open = $6,
    timer_started_at = $7,
    timer_duration_seconds = $8,
    timer_phase = $9,
    started_at = $10,
    closed_at = $11,
    updated_at = now()
WHERE id = $1
RETURNING ` + sessionColumns

const deleteSQL = `DELETE FROM sessions WHERE id = $1`

const documentCountExpr = `(SELECT count(*) FROM documents d WHERE d.session_id = sessions.id) AS document_count`

const presentCountExpr = `(SELECT count(*) FROM attendance a WHERE a.session_id = sessions.id AND a.is_present) AS present_count`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key.
// Returns domain.ErrNotFound if the session does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetByIDForUpdate returns a session and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return r.getOne(ctx, getByIDForUpdateSQL, id)
}

// GetCurrent returns the session whose status is not CLOSED.
// Returns domain.ErrNotFound when every session is closed.
func (r *Repo) GetCurrent(ctx context.Context) (*domain.Session, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getCurrentSQL)

	s, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "current session", uuid.Nil)
	}
	return s, nil
}

// ExistsOpen reports whether any session is not CLOSED.
func (r *Repo) ExistsOpen(ctx context.Context) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsOpenSQL).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists open session: %w", err)
	}
	return exists, nil
}

// MaxNumberSeq returns the highest sequence number used in year, or 0.
func (r *Repo) MaxNumberSeq(ctx context.Context, year int) (int, error) {
	var seq int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, maxNumberSeqSQL, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("max session number for %d: %w", year, err)
	}
	return seq, nil
}

// List returns sessions matching the filter, newest number first, together
// with their document and presence counters.
func (r *Repo) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionSummary, error) {
	q := postgres.Builder.
		Select(sessionColumns, documentCountExpr, presentCountExpr).
		From("sessions").
		OrderBy("number_year DESC", "number_seq DESC")
	q = applyFilter(q, filter)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sessions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SessionSummary, 0)
	for rows.Next() {
		var sum domain.SessionSummary
		if err := scanSessionInto(rows, &sum.Session, &sum.DocumentCount, &sum.PresentCount); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		result = append(result, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return result, nil
}

// Count returns the number of sessions matching the filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, filter domain.SessionFilter) (int, error) {
	q := applyFilter(postgres.Builder.Select("count(*)").From("sessions"), filter)

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count sessions: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session. A second non-CLOSED session violates
// SingleOpenIndex and is reported as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		id, s.Number.Seq, s.Number.Year, s.Title, s.Description, s.ScheduledAt,
		string(s.Status), s.Quorum, s.CreatedBy,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return created, nil
}

// Update applies the non-nil fields of params. An empty Description clears it.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SessionUpdateParams) (*domain.Session, error) {
	q := postgres.Builder.Update("sessions").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + sessionColumns)

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
	if params.ScheduledAt != nil {
		q = q.Set("scheduled_at", *params.ScheduledAt)
	}
	if params.Quorum != nil {
		q = q.Set("quorum", *params.Quorum)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update session: %w", err)
	}

	s, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// SaveState persists the phase, toggles, attendance window, timer and
// lifecycle timestamps of s.
func (r *Repo) SaveState(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, saveStateSQL,
		s.ID,
		string(s.Status),
		s.IsAttendanceOpen,
		s.AttendanceStartedAt,
		s.AttendanceEndedAt,
		s.IsSpeechRequestsOpen,
		s.Timer.StartedAt,
		int(s.Timer.Duration/time.Second),
		s.Timer.Phase,
		s.StartedAt,
		s.ClosedAt,
	)

	saved, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return saved, nil
}

// Delete removes a session and, by cascade, its documents, attendance and
// speech requests. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Session, error) {
	s, err := scanSession(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

func applyFilter(q sq.SelectBuilder, f domain.SessionFilter) sq.SelectBuilder {
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.Year != nil {
		q = q.Where(sq.Eq{"number_year": *f.Year})
	}
	return q
}

func scanSession(row postgres.Row) (*domain.Session, error) {
	var s domain.Session
	if err := scanSessionInto(row, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// scanSessionInto scans sessionColumns into s followed by any extra targets.
func scanSessionInto(row postgres.Row, s *domain.Session, extra ...any) error {
	var (
		status       string
		timerSeconds int
	)

	dest := []any{
		&s.ID, &s.Number.Seq, &s.Number.Year, &s.Title, &s.Description, &s.ScheduledAt, &status, &s.Quorum,
		&s.IsAttendanceOpen, &s.AttendanceStartedAt, &s.AttendanceEndedAt, &s.IsSpeechRequestsOpen,
		&s.Timer.StartedAt, &timerSeconds, &s.Timer.Phase, &s.StartedAt, &s.ClosedAt,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}

	s.Status = domain.SessionStatus(status)
	s.Timer.Duration = time.Duration(timerSeconds) * time.Second
	return nil
}
