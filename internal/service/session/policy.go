package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

// TransitionPolicy decides whether a session may move from one phase to
// another. A non-nil error is returned to the caller unchanged.
type TransitionPolicy interface {
	Allow(from, to domain.SessionStatus) error
}

// PermissivePolicy lets an operator move a session to any phase, including
// back to an earlier one and into or out of CLOSED.
type PermissivePolicy struct{}

func (PermissivePolicy) Allow(_, to domain.SessionStatus) error {
	if !to.IsValid() {
		return domain.NewValidationError("status", "unknown phase")
	}
	return nil
}

// SequentialPolicy only allows staying put, stepping to the next phase in
// domain.SessionPhases or closing. A closed session stays closed.
type SequentialPolicy struct{}

func (SequentialPolicy) Allow(from, to domain.SessionStatus) error {
	if !to.IsValid() {
		return domain.NewValidationError("status", "unknown phase")
	}
	if from == to {
		return nil
	}
	if from == domain.SessionStatusClosed {
		return domain.NewConflictError(domain.ReasonSessionClosed)
	}
	if to == domain.SessionStatusClosed {
		return nil
	}
	i := slices.Index(domain.SessionPhases, from)
	if i >= 0 && i+1 < len(domain.SessionPhases) && domain.SessionPhases[i+1] == to {
		return nil
	}
	return domain.NewConflictError(fmt.Sprintf("cannot move from %s to %s", from, to))
}

// NewPolicy returns the policy registered under name ("permissive" or
// "sequential").
func NewPolicy(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "permissive":
		return PermissivePolicy{}, nil
	case "sequential":
		return SequentialPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown transition policy %q", name)
}
