package display

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ attendanceRepo = &attendanceRepoMock{}

type attendanceRepoMock struct {
	GetFunc          func(ctx context.Context, sessionID uuid.UUID, voterID uuid.UUID) (*domain.Attendance, error)
	CountPresentFunc func(ctx context.Context, sessionID uuid.UUID) (int, error)

	calls struct {
		Get []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			VoterID   uuid.UUID
		}
		CountPresent []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockGet          sync.RWMutex
	lockCountPresent sync.RWMutex
}

func (mock *attendanceRepoMock) Get(ctx context.Context, sessionID uuid.UUID, voterID uuid.UUID) (*domain.Attendance, error) {
	if mock.GetFunc == nil {
		panic("attendanceRepoMock.GetFunc: method is nil but attendanceRepo.Get was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		VoterID   uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		VoterID:   voterID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, sessionID, voterID)
}

func (mock *attendanceRepoMock) GetCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	VoterID   uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *attendanceRepoMock) CountPresent(ctx context.Context, sessionID uuid.UUID) (int, error) {
	if mock.CountPresentFunc == nil {
		panic("attendanceRepoMock.CountPresentFunc: method is nil but attendanceRepo.CountPresent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockCountPresent.Lock()
	mock.calls.CountPresent = append(mock.calls.CountPresent, callInfo)
	mock.lockCountPresent.Unlock()
	return mock.CountPresentFunc(ctx, sessionID)
}

func (mock *attendanceRepoMock) CountPresentCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockCountPresent.RLock()
	calls := mock.calls.CountPresent
	mock.lockCountPresent.RUnlock()
	return calls
}
