package agenda

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	ExistsForItemFunc func(ctx context.Context, itemID uuid.UUID) (bool, error)

	calls struct {
		ExistsForItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockExistsForItem sync.RWMutex
}

func (mock *voteRepoMock) ExistsForItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	if mock.ExistsForItemFunc == nil {
		panic("voteRepoMock.ExistsForItemFunc: method is nil but voteRepo.ExistsForItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockExistsForItem.Lock()
	mock.calls.ExistsForItem = append(mock.calls.ExistsForItem, callInfo)
	mock.lockExistsForItem.Unlock()
	return mock.ExistsForItemFunc(ctx, itemID)
}

func (mock *voteRepoMock) ExistsForItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockExistsForItem.RLock()
	calls := mock.calls.ExistsForItem
	mock.lockExistsForItem.RUnlock()
	return calls
}
