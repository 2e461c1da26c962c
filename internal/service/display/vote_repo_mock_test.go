package display

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	TallyFunc      func(ctx context.Context, itemID uuid.UUID) (domain.Tally, error)
	GetByVoterFunc func(ctx context.Context, itemID uuid.UUID, voterID uuid.UUID) (*domain.Vote, error)

	calls struct {
		Tally []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		GetByVoter []struct {
			Ctx     context.Context
			ItemID  uuid.UUID
			VoterID uuid.UUID
		}
	}
	lockTally      sync.RWMutex
	lockGetByVoter sync.RWMutex
}

func (mock *voteRepoMock) Tally(ctx context.Context, itemID uuid.UUID) (domain.Tally, error) {
	if mock.TallyFunc == nil {
		panic("voteRepoMock.TallyFunc: method is nil but voteRepo.Tally was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockTally.Lock()
	mock.calls.Tally = append(mock.calls.Tally, callInfo)
	mock.lockTally.Unlock()
	return mock.TallyFunc(ctx, itemID)
}

func (mock *voteRepoMock) TallyCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockTally.RLock()
	calls := mock.calls.Tally
	mock.lockTally.RUnlock()
	return calls
}

func (mock *voteRepoMock) GetByVoter(ctx context.Context, itemID uuid.UUID, voterID uuid.UUID) (*domain.Vote, error) {
	if mock.GetByVoterFunc == nil {
		panic("voteRepoMock.GetByVoterFunc: method is nil but voteRepo.GetByVoter was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ItemID  uuid.UUID
		VoterID uuid.UUID
	}{
		Ctx:     ctx,
		ItemID:  itemID,
		VoterID: voterID,
	}
	mock.lockGetByVoter.Lock()
	mock.calls.GetByVoter = append(mock.calls.GetByVoter, callInfo)
	mock.lockGetByVoter.Unlock()
	return mock.GetByVoterFunc(ctx, itemID, voterID)
}

func (mock *voteRepoMock) GetByVoterCalls() []struct {
	Ctx     context.Context
	ItemID  uuid.UUID
	VoterID uuid.UUID
} {
	mock.lockGetByVoter.RLock()
	calls := mock.calls.GetByVoter
	mock.lockGetByVoter.RUnlock()
	return calls
}
