package speech

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ speechRepo = &speechRepoMock{}

type speechRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.SpeechRequest, error)
	ListFunc           func(ctx context.Context, filter domain.SpeechFilter) ([]domain.SpeechRequest, error)
	NextOrderIndexFunc func(ctx context.Context, sessionID uuid.UUID, speechType domain.SpeechType) (int, error)
	CreateFunc         func(ctx context.Context, req *domain.SpeechRequest) (*domain.SpeechRequest, error)
	SetApprovedFunc    func(ctx context.Context, id uuid.UUID, approved bool) error
	SetOrderIndexFunc  func(ctx context.Context, id uuid.UUID, orderIndex int) error
	MarkStartedFunc    func(ctx context.Context, id uuid.UUID, at time.Time, timeLimitMinutes int) error
	MarkEndedFunc      func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.SpeechFilter
		}
		NextOrderIndex []struct {
			Ctx        context.Context
			SessionID  uuid.UUID
			SpeechType domain.SpeechType
		}
		Create []struct {
			Ctx context.Context
			Req *domain.SpeechRequest
		}
		SetApproved []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Approved bool
		}
		SetOrderIndex []struct {
			Ctx        context.Context
			ID         uuid.UUID
			OrderIndex int
		}
		MarkStarted []struct {
			Ctx              context.Context
			ID               uuid.UUID
			At               time.Time
			TimeLimitMinutes int
		}
		MarkEnded []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID        sync.RWMutex
	lockList           sync.RWMutex
	lockNextOrderIndex sync.RWMutex
	lockCreate         sync.RWMutex
	lockSetApproved    sync.RWMutex
	lockSetOrderIndex  sync.RWMutex
	lockMarkStarted    sync.RWMutex
	lockMarkEnded      sync.RWMutex
	lockDelete         sync.RWMutex
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

func (mock *speechRepoMock) NextOrderIndex(ctx context.Context, sessionID uuid.UUID, speechType domain.SpeechType) (int, error) {
	if mock.NextOrderIndexFunc == nil {
		panic("speechRepoMock.NextOrderIndexFunc: method is nil but speechRepo.NextOrderIndex was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SessionID  uuid.UUID
		SpeechType domain.SpeechType
	}{
		Ctx:        ctx,
		SessionID:  sessionID,
		SpeechType: speechType,
	}
	mock.lockNextOrderIndex.Lock()
	mock.calls.NextOrderIndex = append(mock.calls.NextOrderIndex, callInfo)
	mock.lockNextOrderIndex.Unlock()
	return mock.NextOrderIndexFunc(ctx, sessionID, speechType)
}

func (mock *speechRepoMock) NextOrderIndexCalls() []struct {
	Ctx        context.Context
	SessionID  uuid.UUID
	SpeechType domain.SpeechType
} {
	mock.lockNextOrderIndex.RLock()
	calls := mock.calls.NextOrderIndex
	mock.lockNextOrderIndex.RUnlock()
	return calls
}

func (mock *speechRepoMock) Create(ctx context.Context, req *domain.SpeechRequest) (*domain.SpeechRequest, error) {
	if mock.CreateFunc == nil {
		panic("speechRepoMock.CreateFunc: method is nil but speechRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.SpeechRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *speechRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req *domain.SpeechRequest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *speechRepoMock) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	if mock.SetApprovedFunc == nil {
		panic("speechRepoMock.SetApprovedFunc: method is nil but speechRepo.SetApproved was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Approved bool
	}{
		Ctx:      ctx,
		ID:       id,
		Approved: approved,
	}
	mock.lockSetApproved.Lock()
	mock.calls.SetApproved = append(mock.calls.SetApproved, callInfo)
	mock.lockSetApproved.Unlock()
	return mock.SetApprovedFunc(ctx, id, approved)
}

func (mock *speechRepoMock) SetApprovedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Approved bool
} {
	mock.lockSetApproved.RLock()
	calls := mock.calls.SetApproved
	mock.lockSetApproved.RUnlock()
	return calls
}

func (mock *speechRepoMock) SetOrderIndex(ctx context.Context, id uuid.UUID, orderIndex int) error {
	if mock.SetOrderIndexFunc == nil {
		panic("speechRepoMock.SetOrderIndexFunc: method is nil but speechRepo.SetOrderIndex was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		OrderIndex int
	}{
		Ctx:        ctx,
		ID:         id,
		OrderIndex: orderIndex,
	}
	mock.lockSetOrderIndex.Lock()
	mock.calls.SetOrderIndex = append(mock.calls.SetOrderIndex, callInfo)
	mock.lockSetOrderIndex.Unlock()
	return mock.SetOrderIndexFunc(ctx, id, orderIndex)
}

func (mock *speechRepoMock) SetOrderIndexCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	OrderIndex int
} {
	mock.lockSetOrderIndex.RLock()
	calls := mock.calls.SetOrderIndex
	mock.lockSetOrderIndex.RUnlock()
	return calls
}

func (mock *speechRepoMock) MarkStarted(ctx context.Context, id uuid.UUID, at time.Time, timeLimitMinutes int) error {
	if mock.MarkStartedFunc == nil {
		panic("speechRepoMock.MarkStartedFunc: method is nil but speechRepo.MarkStarted was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		ID               uuid.UUID
		At               time.Time
		TimeLimitMinutes int
	}{
		Ctx:              ctx,
		ID:               id,
		At:               at,
		TimeLimitMinutes: timeLimitMinutes,
	}
	mock.lockMarkStarted.Lock()
	mock.calls.MarkStarted = append(mock.calls.MarkStarted, callInfo)
	mock.lockMarkStarted.Unlock()
	return mock.MarkStartedFunc(ctx, id, at, timeLimitMinutes)
}

func (mock *speechRepoMock) MarkStartedCalls() []struct {
	Ctx              context.Context
	ID               uuid.UUID
	At               time.Time
	TimeLimitMinutes int
} {
	mock.lockMarkStarted.RLock()
	calls := mock.calls.MarkStarted
	mock.lockMarkStarted.RUnlock()
	return calls
}

func (mock *speechRepoMock) MarkEnded(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkEndedFunc == nil {
		panic("speechRepoMock.MarkEndedFunc: method is nil but speechRepo.MarkEnded was just called")
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
	mock.lockMarkEnded.Lock()
	mock.calls.MarkEnded = append(mock.calls.MarkEnded, callInfo)
	mock.lockMarkEnded.Unlock()
	return mock.MarkEndedFunc(ctx, id, at)
}

func (mock *speechRepoMock) MarkEndedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkEnded.RLock()
	calls := mock.calls.MarkEnded
	mock.lockMarkEnded.RUnlock()
	return calls
}

func (mock *speechRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("speechRepoMock.DeleteFunc: method is nil but speechRepo.Delete was just called")
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

func (mock *speechRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
