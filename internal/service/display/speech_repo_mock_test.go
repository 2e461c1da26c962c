package display

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ speechRepo = &speechRepoMock{}

type speechRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error)
	ListFunc    func(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SpeechFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *speechRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error) {
	if mock.GetByIDFunc == nil {
		panic("speechRepoMock.GetByIDFunc: method is nil but speechRepo.GetByID was just called")
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

func (mock *speechRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *speechRepoMock) List(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error) {
	if mock.ListFunc == nil {
		panic("speechRepoMock.ListFunc: method is nil but speechRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SpeechFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *speechRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SpeechFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
