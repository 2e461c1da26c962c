package agenda

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ matterRepo = &matterRepoMock{}

type matterRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
	ListFunc    func(ctx context.Context, filter domain.MatterFilter) ([]domain.Matter, error)
	CreateFunc  func(ctx context.Context, m *domain.Matter) (*domain.Matter, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.MatterUpdateParams) (*domain.Matter, error)
	AttachFunc  func(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error
	DetachFunc  func(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.MatterFilter
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Matter
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.MatterUpdateParams
		}
		Attach []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			MatterID  uuid.UUID
		}
		Detach []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			MatterID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockAttach  sync.RWMutex
	lockDetach  sync.RWMutex
}

func (mock *matterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error) {
	if mock.GetByIDFunc == nil {
		panic("matterRepoMock.GetByIDFunc: method is nil but matterRepo.GetByID was just called")
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

func (mock *matterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *matterRepoMock) List(ctx context.Context, filter domain.MatterFilter) ([]domain.Matter, error) {
	if mock.ListFunc == nil {
		panic("matterRepoMock.ListFunc: method is nil but matterRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.MatterFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *matterRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.MatterFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *matterRepoMock) Create(ctx context.Context, m *domain.Matter) (*domain.Matter, error) {
	if mock.CreateFunc == nil {
		panic("matterRepoMock.CreateFunc: method is nil but matterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Matter
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *matterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Matter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *matterRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.MatterUpdateParams) (*domain.Matter, error) {
	if mock.UpdateFunc == nil {
		panic("matterRepoMock.UpdateFunc: method is nil but matterRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.MatterUpdateParams
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

func (mock *matterRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.MatterUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *matterRepoMock) Attach(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error {
	if mock.AttachFunc == nil {
		panic("matterRepoMock.AttachFunc: method is nil but matterRepo.Attach was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		MatterID  uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		MatterID:  matterID,
	}
	mock.lockAttach.Lock()
	mock.calls.Attach = append(mock.calls.Attach, callInfo)
	mock.lockAttach.Unlock()
	return mock.AttachFunc(ctx, sessionID, matterID)
}

func (mock *matterRepoMock) AttachCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	MatterID  uuid.UUID
} {
	mock.lockAttach.RLock()
	calls := mock.calls.Attach
	mock.lockAttach.RUnlock()
	return calls
}

func (mock *matterRepoMock) Detach(ctx context.Context, sessionID uuid.UUID, matterID uuid.UUID) error {
	if mock.DetachFunc == nil {
		panic("matterRepoMock.DetachFunc: method is nil but matterRepo.Detach was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		MatterID  uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		MatterID:  matterID,
	}
	mock.lockDetach.Lock()
	mock.calls.Detach = append(mock.calls.Detach, callInfo)
	mock.lockDetach.Unlock()
	return mock.DetachFunc(ctx, sessionID, matterID)
}

func (mock *matterRepoMock) DetachCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	MatterID  uuid.UUID
} {
	mock.lockDetach.RLock()
	calls := mock.calls.Detach
	mock.lockDetach.RUnlock()
	return calls
}
