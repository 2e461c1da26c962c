// Package control implements the council control record repository.
// The record is a single row holding the active reader, speaker and vote
// pointers; callers lock it for the duration of a transaction before
// swapping a pointer.
package control

import (
	"context"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides access to the council_control row.
type Repo struct {
	db postgres.Querier
}

// New creates a new control repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const controlColumns = `reading_document_id, speaking_request_id, voting_document_id, voting_matter_id`

const getSQL = `SELECT ` + controlColumns + `, now() FROM council_control WHERE id = 1`

const lockSQL = getSQL + ` FOR UPDATE`

const lockSharedSQL = getSQL + ` FOR SHARE`

const saveSQL = `
UPDATE council_control
SET reading_document_id = $1,
    speaking_request_id = $2,
    voting_document_id = $3,
    voting_matter_id = $4,
    updated_at = now()
WHERE id = 1`

// Get reads the control record without locking. The second result is the
// database clock at the time of the read.
func (r *Repo) Get(ctx context.Context) (domain.Control, time.Time, error) {
	return r.read(ctx, getSQL)
}

// Lock reads the control record and holds an exclusive row lock until the
// surrounding transaction ends. The second result is the database clock,
// which callers use to stamp start and end times.
func (r *Repo) Lock(ctx context.Context) (domain.Control, time.Time, error) {
	return r.read(ctx, lockSQL)
}

// LockShared reads the control record with a share lock: concurrent voters
// proceed together while a pointer swap waits for them.
func (r *Repo) LockShared(ctx context.Context) (domain.Control, error) {
	c, _, err := r.read(ctx, lockSharedSQL)
	return c, err
}

// Save writes every pointer of c.
func (r *Repo) Save(ctx context.Context, c domain.Control) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, saveSQL,
		c.ReadingDocumentID, c.SpeakingRequestID, c.VotingDocumentID, c.VotingMatterID,
	)
	if err != nil {
		return fmt.Errorf("save council control: %w", err)
	}
	return nil
}

func (r *Repo) read(ctx context.Context, query string) (domain.Control, time.Time, error) {
	var (
		c   domain.Control
		now time.Time
	)

	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query).Scan(
		&c.ReadingDocumentID, &c.SpeakingRequestID, &c.VotingDocumentID, &c.VotingMatterID, &now,
	)
	if err != nil {
		return domain.Control{}, time.Time{}, fmt.Errorf("read council control: %w", err)
	}
	return c, now, nil
}
