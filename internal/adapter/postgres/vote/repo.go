// Package vote implements the append-only ballot repository. It exposes no
// update or delete operation; a database trigger rejects both as well.
package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// Repo provides ballot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const voteColumns = `id, item_type, item_id, voter_id, vote_type, created_at`

const insertSQL = `
INSERT INTO votes (id, item_type, item_id, voter_id, vote_type)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + voteColumns

const tallySQL = `
SELECT vote_type, count(*)
FROM votes
WHERE item_id = $1
GROUP BY vote_type`

const getByVoterSQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE item_id = $1 AND voter_id = $2`

const existsForItemSQL = `
SELECT EXISTS (SELECT 1 FROM votes WHERE item_id = $1)`

// Insert records a ballot. A second ballot by the same voter on the same
// item is reported as domain.ErrAlreadyExists.
func (r *Repo) Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		id, string(v.ItemType), v.ItemID, v.VoterID, string(v.VoteType),
	)

	created, err := scanVote(row)
	if err != nil {
		return nil, postgres.MapError(err, "vote", id)
	}
	return created, nil
}

// Tally counts the ballots cast on an item by vote type.
func (r *Repo) Tally(ctx context.Context, itemID uuid.UUID) (domain.Tally, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, tallySQL, itemID)
	if err != nil {
		return domain.Tally{}, fmt.Errorf("tally item %s: %w", itemID, err)
	}
	defer rows.Close()

	var tally domain.Tally
	for rows.Next() {
		var (
			voteType string
			n        int
		)
		if err := rows.Scan(&voteType, &n); err != nil {
			return domain.Tally{}, fmt.Errorf("scan tally: %w", err)
		}
		tally.Add(domain.VoteType(voteType), n)
	}
	if err := rows.Err(); err != nil {
		return domain.Tally{}, fmt.Errorf("tally item %s: %w", itemID, err)
	}

	return tally, nil
}

// GetByVoter returns the ballot a voter cast on an item.
// Returns domain.ErrNotFound if the voter has not voted.
func (r *Repo) GetByVoter(ctx context.Context, itemID, voterID uuid.UUID) (*domain.Vote, error) {
	v, err := scanVote(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByVoterSQL, itemID, voterID))
	if err != nil {
		return nil, postgres.MapError(err, "vote", itemID)
	}
	return v, nil
}

// ExistsForItem reports whether any ballot was cast on the item.
func (r *Repo) ExistsForItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsForItemSQL, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("votes exist for %s: %w", itemID, err)
	}
	return exists, nil
}

func scanVote(row postgres.Row) (*domain.Vote, error) {
	var (
		v                  domain.Vote
		itemType, voteType string
	)

	if err := row.Scan(&v.ID, &itemType, &v.ItemID, &v.VoterID, &voteType, &v.CreatedAt); err != nil {
		return nil, err
	}

	v.ItemType = domain.ItemType(itemType)
	v.VoteType = domain.VoteType(voteType)
	return &v, nil
}
