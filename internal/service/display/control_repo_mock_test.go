package display

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ controlRepo = &controlRepoMock{}

type controlRepoMock struct {
	GetFunc func(ctx context.Context) (domain.Control, time.Time, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *controlRepoMock) Get(ctx context.Context) (domain.Control, time.Time, error) {
	if mock.GetFunc == nil {
		panic("controlRepoMock.GetFunc: method is nil but controlRepo.Get was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *controlRepoMock) GetCalls() []struct{ Ctx context.Context } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
