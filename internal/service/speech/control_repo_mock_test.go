package speech

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ controlRepo = &controlRepoMock{}

type controlRepoMock struct {
	LockFunc func(ctx context.Context) (domain.Control, time.Time, error)
	SaveFunc func(ctx context.Context, c domain.Control) error

	calls struct {
		Lock []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx context.Context
			C   domain.Control
		}
	}
	lockLock sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *controlRepoMock) Lock(ctx context.Context) (domain.Control, time.Time, error) {
	if mock.LockFunc == nil {
		panic("controlRepoMock.LockFunc: method is nil but controlRepo.Lock was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx)
}

func (mock *controlRepoMock) LockCalls() []struct{ Ctx context.Context } {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *controlRepoMock) Save(ctx context.Context, c domain.Control) error {
	if mock.SaveFunc == nil {
		panic("controlRepoMock.SaveFunc: method is nil but controlRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Control
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, c)
}

func (mock *controlRepoMock) SaveCalls() []struct {
	Ctx context.Context
	C   domain.Control
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
