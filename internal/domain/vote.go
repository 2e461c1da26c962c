package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a single immutable ballot.
type Vote struct {
	ID        uuid.UUID
	ItemType  ItemType
	ItemID    uuid.UUID
	VoterID   uuid.UUID
	VoteType  VoteType
	CreatedAt time.Time
}

// Tally is the count of cast votes by type. It is always recomputed from
// the stored ballots.
type Tally struct {
	Yes        int
	No         int
	Abstention int
}

// Total returns the number of ballots cast.
func (t Tally) Total() int {
	return t.Yes + t.No + t.Abstention
}

// Approved reports a simple relative majority of YES over NO.
func (t Tally) Approved() bool {
	return t.Yes > t.No
}

// Add counts n ballots of the given type.
func (t *Tally) Add(v VoteType, n int) {
	switch v {
	case VoteTypeYes:
		t.Yes += n
	case VoteTypeNo:
		t.No += n
	case VoteTypeAbstention:
		t.Abstention += n
	}
}

// VotingItem identifies a votable entity.
type VotingItem struct {
	Type ItemType
	ID   uuid.UUID
}

// VoteResult is the outcome returned when voting ends or a result is shown.
type VoteResult struct {
	Item     VotingItem
	Title    string
	Tally    Tally
	Approved bool
	EndedAt  *time.Time
}

// ActiveVote describes the item currently open for voting and its live
// tally.
type ActiveVote struct {
	Item      VotingItem
	Title     string
	StartedAt *time.Time
	Tally     Tally
	Eligible  int
}
