package voting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	MarkVotingStartedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkVotingEndedFunc   func(ctx context.Context, id uuid.UUID, approval domain.Approval, at time.Time) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkVotingStarted []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		MarkVotingEnded []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Approval domain.Approval
			At       time.Time
		}
	}
	lockGetByID           sync.RWMutex
	lockMarkVotingStarted sync.RWMutex
	lockMarkVotingEnded   sync.RWMutex
}

func (mock *documentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetByIDFunc == nil {
		panic("documentRepoMock.GetByIDFunc: method is nil but documentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *documentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *documentRepoMock) MarkVotingStarted(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkVotingStartedFunc == nil {
		panic("documentRepoMock.MarkVotingStartedFunc: method is nil but documentRepo.MarkVotingStarted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockMarkVotingStarted.Lock()
	mock.calls.MarkVotingStarted = append(mock.calls.MarkVotingStarted, callInfo)
	mock.lockMarkVotingStarted.Unlock()
	return mock.MarkVotingStartedFunc(ctx, id, at)
}

func (mock *documentRepoMock) MarkVotingStartedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkVotingStarted.RLock()
	calls := mock.calls.MarkVotingStarted
	mock.lockMarkVotingStarted.RUnlock()
	return calls
}

func (mock *documentRepoMock) MarkVotingEnded(ctx context.Context, id uuid.UUID, approval domain.Approval, at time.Time) error {
	if mock.MarkVotingEndedFunc == nil {
		panic("documentRepoMock.MarkVotingEndedFunc: method is nil but documentRepo.MarkVotingEnded was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Approval domain.Approval
		At       time.Time
	}{
		Ctx:      ctx,
		ID:       id,
		Approval: approval,
		At:       at,
	}
	mock.lockMarkVotingEnded.Lock()
	mock.calls.MarkVotingEnded = append(mock.calls.MarkVotingEnded, callInfo)
	mock.lockMarkVotingEnded.Unlock()
	return mock.MarkVotingEndedFunc(ctx, id, approval, at)
}

func (mock *documentRepoMock) MarkVotingEndedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Approval domain.Approval
	At       time.Time
} {
	mock.lockMarkVotingEnded.RLock()
	calls := mock.calls.MarkVotingEnded
	mock.lockMarkVotingEnded.RUnlock()
	return calls
}
