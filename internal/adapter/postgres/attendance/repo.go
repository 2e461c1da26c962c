// Package attendance implements the session presence repository using
// PostgreSQL.
package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides attendance persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new attendance repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const attendanceColumns = `id, session_id, voter_id, is_present, arrived_at, created_at, updated_at`

// markPresentSQL returns no row when the voter is already present, so a
// repeated mark never changes arrived_at.
const markPresentSQL = `
INSERT INTO attendance (session_id, voter_id, is_present, arrived_at)
VALUES ($1, $2, true, $3)
ON CONFLICT (session_id, voter_id) DO UPDATE
SET is_present = true, arrived_at = EXCLUDED.arrived_at, updated_at = now()
WHERE attendance.is_present = false
RETURNING ` + attendanceColumns

const getSQL = `
SELECT ` + attendanceColumns + `
FROM attendance
WHERE session_id = $1 AND voter_id = $2`

const countPresentSQL = `
SELECT count(*) FROM attendance WHERE session_id = $1 AND is_present`

const listSQL = `
SELECT voter_id, is_present, arrived_at
FROM attendance
WHERE session_id = $1
ORDER BY arrived_at ASC NULLS LAST, voter_id`

// MarkPresent records the voter as present at the given time.
// Returns domain.ErrAlreadyExists if the voter was already present and
// domain.ErrNotFound if the session does not exist.
func (r *Repo) MarkPresent(ctx context.Context, sessionID, voterID uuid.UUID, at time.Time) (*domain.Attendance, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, markPresentSQL, sessionID, voterID, at)

	a, err := scanAttendance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("attendance %s/%s: %w", sessionID, voterID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return a, nil
}

// Get returns the attendance row of a voter in a session.
// Returns domain.ErrNotFound if the voter never marked presence.
func (r *Repo) Get(ctx context.Context, sessionID, voterID uuid.UUID) (*domain.Attendance, error) {
	a, err := scanAttendance(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, sessionID, voterID))
	if err != nil {
		return nil, postgres.MapError(err, "attendance", voterID)
	}
	return a, nil
}

// CountPresent returns the number of voters present in a session.
func (r *Repo) CountPresent(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countPresentSQL, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count present in %s: %w", sessionID, err)
	}
	return n, nil
}

// List returns the attendance board of a session in arrival order.
func (r *Repo) List(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error) {
	entries := make([]domain.AttendanceEntry, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &entries, listSQL, sessionID); err != nil {
		return nil, fmt.Errorf("list attendance of %s: %w", sessionID, err)
	}
	return entries, nil
}

func scanAttendance(row postgres.Row) (*domain.Attendance, error) {
	var a domain.Attendance
	err := row.Scan(&a.ID, &a.SessionID, &a.VoterID, &a.IsPresent, &a.ArrivedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
