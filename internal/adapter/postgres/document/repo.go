// Package document implements the Document repository using PostgreSQL.
// The is_being_read and is_voting flags are not stored on the row; they are
// derived by joining the council control record.
package document

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const documentColumns = `d.id, d.session_id, d.title, d.type, d.phase, d.author, d.description,
    d.order_index, d.is_ordem_do_dia, d.approval,
    COALESCE(c.reading_document_id = d.id, false) AS is_being_read,
    COALESCE(c.voting_document_id = d.id, false) AS is_voting,
    d.voting_started_at, d.voting_ended_at, d.created_by, d.created_at, d.updated_at`

const createSQL = `
WITH d AS (
    INSERT INTO documents (id, session_id, title, type, phase, author, description, order_index, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING *
)
SELECT ` + documentColumns + `
FROM d CROSS JOIN council_control c`

const getByIDSQL = `
SELECT ` + documentColumns + `
FROM documents d CROSS JOIN council_control c
WHERE d.id = $1`

const nextOrderIndexSQL = `
SELECT COALESCE(max(order_index), 0) + 1 FROM documents WHERE session_id = $1`

const setAgendaSQL = `
UPDATE documents d
SET is_ordem_do_dia = $2,
    approval = 'UNDECIDED',
    voting_started_at = NULL,
    voting_ended_at = NULL,
    updated_at = now()
FROM council_control c
WHERE d.id = $1
RETURNING ` + documentColumns

const startVotingSQL = `
UPDATE documents
SET voting_started_at = $2, voting_ended_at = NULL, updated_at = now()
WHERE id = $1`

const finishVotingSQL = `
UPDATE documents
SET approval = $2, voting_ended_at = $3, updated_at = now()
WHERE id = $1`

const deleteSQL = `DELETE FROM documents WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a document with its derived flags.
// Returns domain.ErrNotFound if the document does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	d, err := scanDocument(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return d, nil
}

// List returns the documents of a session ordered by order_index.
func (r *Repo) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	q := postgres.Builder.
		Select(documentColumns).
		From("documents d").
		Join("council_control c ON true").
		Where(sq.Eq{"d.session_id": filter.SessionID}).
		OrderBy("d.order_index ASC", "d.created_at ASC")

	if filter.OnlyAgenda {
		q = q.Where(sq.Eq{"d.is_ordem_do_dia": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list documents: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return result, nil
}

// NextOrderIndex returns one past the highest order_index in the session.
func (r *Repo) NextOrderIndex(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var idx int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, nextOrderIndexSQL, sessionID).Scan(&idx); err != nil {
		return 0, fmt.Errorf("next document order index: %w", err)
	}
	return idx, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new document. Returns domain.ErrNotFound when the session
// does not exist.
func (r *Repo) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		id, d.SessionID, d.Title, d.Type, d.Phase, d.Author, d.Description, d.OrderIndex, d.CreatedBy,
	)

	created, err := scanDocument(row)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return created, nil
}

// Update applies the non-nil fields of params. Empty Author or Description
// clear the column.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DocumentUpdateParams) (*domain.Document, error) {
	q := postgres.Builder.Update("documents").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Type != nil {
		q = q.Set("type", *params.Type)
	}
	if params.Phase != nil {
		q = q.Set("phase", *params.Phase)
	}
	if params.Author != nil {
		q = q.Set("author", nullIfEmpty(*params.Author))
	}
	if params.Description != nil {
		q = q.Set("description", nullIfEmpty(*params.Description))
	}
	if params.OrderIndex != nil {
		q = q.Set("order_index", *params.OrderIndex)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update document: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// SetAgenda moves the document into or out of the agenda and resets its
// voting state to UNDECIDED.
func (r *Repo) SetAgenda(ctx context.Context, id uuid.UUID, onAgenda bool) (*domain.Document, error) {
	d, err := scanDocument(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, setAgendaSQL, id, onAgenda))
	if err != nil {
		return nil, postgres.MapError(err, "document", id)
	}
	return d, nil
}

// MarkVotingStarted stamps voting_started_at and clears voting_ended_at.
func (r *Repo) MarkVotingStarted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.execOne(ctx, startVotingSQL, id, at)
}

// MarkVotingEnded records the approval outcome and voting_ended_at.
func (r *Repo) MarkVotingEnded(ctx context.Context, id uuid.UUID, approval domain.Approval, at time.Time) error {
	return r.execOne(ctx, finishVotingSQL, id, string(approval), at)
}

// Delete removes a document. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, deleteSQL, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) execOne(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanDocument(row postgres.Row) (*domain.Document, error) {
	var (
		d        domain.Document
		approval string
	)

	err := row.Scan(
		&d.ID, &d.SessionID, &d.Title, &d.Type, &d.Phase, &d.Author, &d.Description,
		&d.OrderIndex, &d.IsOrdemDoDia, &approval,
		&d.IsBeingRead, &d.IsVoting,
		&d.VotingStartedAt, &d.VotingEndedAt, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Approval = domain.Approval(approval)
	return &d, nil
}
