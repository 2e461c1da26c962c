package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ snapshotService = &snapshotServiceMock{}

type snapshotServiceMock struct {
	CurrentSnapshotFunc func(ctx context.Context) (*domain.Snapshot, error)

	calls struct {
		CurrentSnapshot []struct {
			Ctx context.Context
		}
	}
	lockCurrentSnapshot sync.RWMutex
}

func (mock *snapshotServiceMock) CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if mock.CurrentSnapshotFunc == nil {
		panic("snapshotServiceMock.CurrentSnapshotFunc: method is nil but snapshotService.CurrentSnapshot was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCurrentSnapshot.Lock()
	mock.calls.CurrentSnapshot = append(mock.calls.CurrentSnapshot, callInfo)
	mock.lockCurrentSnapshot.Unlock()
	return mock.CurrentSnapshotFunc(ctx)
}

func (mock *snapshotServiceMock) CurrentSnapshotCalls() []struct{ Ctx context.Context } {
	mock.lockCurrentSnapshot.RLock()
	calls := mock.calls.CurrentSnapshot
	mock.lockCurrentSnapshot.RUnlock()
	return calls
}
