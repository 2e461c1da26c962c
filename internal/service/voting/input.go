package voting

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

// ItemInput names the document or matter an operation targets.
type ItemInput struct {
	ItemType domain.ItemType
	ItemID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ItemInput) Validate() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ItemInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "item_type", Message: "must be DOCUMENT or MATTER"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	return errs
}

// Item returns the input as a domain.VotingItem.
func (i ItemInput) Item() domain.VotingItem {
	return domain.VotingItem{Type: i.ItemType, ID: i.ItemID}
}

// CastVoteInput is a ballot for the item currently in voting.
type CastVoteInput struct {
	ItemInput
	VoteType domain.VoteType
}

// Validate checks all fields and collects all errors.
func (i CastVoteInput) Validate() error {
	errs := i.fieldErrors()
	if !i.VoteType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "vote_type", Message: "must be YES, NO or ABSTENTION"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
