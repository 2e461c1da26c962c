package domain

import "github.com/google/uuid"

// Control is the council-wide record holding the single active reader,
// speaker and vote. Each pointer is swapped atomically under a row lock.
type Control struct {
	ReadingDocumentID *uuid.UUID
	SpeakingRequestID *uuid.UUID
	VotingDocumentID  *uuid.UUID
	VotingMatterID    *uuid.UUID
}

// VotingItem returns the item currently in voting, if any.
func (c Control) VotingItem() (VotingItem, bool) {
	switch {
	case c.VotingDocumentID != nil:
		return VotingItem{Type: ItemTypeDocument, ID: *c.VotingDocumentID}, true
	case c.VotingMatterID != nil:
		return VotingItem{Type: ItemTypeMatter, ID: *c.VotingMatterID}, true
	}
	return VotingItem{}, false
}

// IsVoting reports whether item is the one currently open for voting.
func (c Control) IsVoting(item VotingItem) bool {
	cur, ok := c.VotingItem()
	return ok && cur == item
}
