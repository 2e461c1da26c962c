package voting

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	InsertFunc func(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	TallyFunc  func(ctx context.Context, itemID uuid.UUID) (domain.Tally, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			V   *domain.Vote
		}
		Tally []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockInsert sync.RWMutex
	lockTally  sync.RWMutex
}

func (mock *voteRepoMock) Insert(ctx context.Context, v *domain.Vote) (*domain.Vote, error) {
	if mock.InsertFunc == nil {
		panic("voteRepoMock.InsertFunc: method is nil but voteRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Vote
	}{
		Ctx: ctx,
		V:   v,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, v)
}

func (mock *voteRepoMock) InsertCalls() []struct {
	Ctx context.Context
	V   *domain.Vote
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
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
