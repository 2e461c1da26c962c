package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	ExistsOpenFunc       func(ctx context.Context) (bool, error)
	MaxNumberSeqFunc     func(ctx context.Context, year int) (int, error)
	ListFunc             func(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionSummary, error)
	CountFunc            func(ctx context.Context, filter domain.SessionFilter) (int, error)
	CreateFunc           func(ctx context.Context, s *domain.Session) (*domain.Session, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, params domain.SessionUpdateParams) (*domain.Session, error)
	SaveStateFunc        func(ctx context.Context, s *domain.Session) (*domain.Session, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ExistsOpen []struct {
			Ctx context.Context
		}
		MaxNumberSeq []struct {
			Ctx  context.Context
			Year int
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SessionFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.SessionFilter
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Session
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.SessionUpdateParams
		}
		SaveState []struct {
			Ctx context.Context
			S   *domain.Session
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockExistsOpen       sync.RWMutex
	lockMaxNumberSeq     sync.RWMutex
	lockList             sync.RWMutex
	lockCount            sync.RWMutex
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockSaveState        sync.RWMutex
	lockDelete           sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
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

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("sessionRepoMock.GetByIDForUpdateFunc: method is nil but sessionRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ExistsOpen(ctx context.Context) (bool, error) {
	if mock.ExistsOpenFunc == nil {
		panic("sessionRepoMock.ExistsOpenFunc: method is nil but sessionRepo.ExistsOpen was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockExistsOpen.Lock()
	mock.calls.ExistsOpen = append(mock.calls.ExistsOpen, callInfo)
	mock.lockExistsOpen.Unlock()
	return mock.ExistsOpenFunc(ctx)
}

func (mock *sessionRepoMock) ExistsOpenCalls() []struct{ Ctx context.Context } {
	mock.lockExistsOpen.RLock()
	calls := mock.calls.ExistsOpen
	mock.lockExistsOpen.RUnlock()
	return calls
}

func (mock *sessionRepoMock) MaxNumberSeq(ctx context.Context, year int) (int, error) {
	if mock.MaxNumberSeqFunc == nil {
		panic("sessionRepoMock.MaxNumberSeqFunc: method is nil but sessionRepo.MaxNumberSeq was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{
		Ctx:  ctx,
		Year: year,
	}
	mock.lockMaxNumberSeq.Lock()
	mock.calls.MaxNumberSeq = append(mock.calls.MaxNumberSeq, callInfo)
	mock.lockMaxNumberSeq.Unlock()
	return mock.MaxNumberSeqFunc(ctx, year)
}

func (mock *sessionRepoMock) MaxNumberSeqCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockMaxNumberSeq.RLock()
	calls := mock.calls.MaxNumberSeq
	mock.lockMaxNumberSeq.RUnlock()
	return calls
}

func (mock *sessionRepoMock) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionSummary, error) {
	if mock.ListFunc == nil {
		panic("sessionRepoMock.ListFunc: method is nil but sessionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SessionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *sessionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.SessionFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Count(ctx context.Context, filter domain.SessionFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("sessionRepoMock.CountFunc: method is nil but sessionRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.SessionFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *sessionRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.SessionFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SessionUpdateParams) (*domain.Session, error) {
	if mock.UpdateFunc == nil {
		panic("sessionRepoMock.UpdateFunc: method is nil but sessionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.SessionUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *sessionRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.SessionUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) SaveState(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	if mock.SaveStateFunc == nil {
		panic("sessionRepoMock.SaveStateFunc: method is nil but sessionRepo.SaveState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Session
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockSaveState.Lock()
	mock.calls.SaveState = append(mock.calls.SaveState, callInfo)
	mock.lockSaveState.Unlock()
	return mock.SaveStateFunc(ctx, s)
}

func (mock *sessionRepoMock) SaveStateCalls() []struct {
	Ctx context.Context
	S   *domain.Session
} {
	mock.lockSaveState.RLock()
	calls := mock.calls.SaveState
	mock.lockSaveState.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
