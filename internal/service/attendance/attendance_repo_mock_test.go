package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ attendanceRepo = &attendanceRepoMock{}

type attendanceRepoMock struct {
	MarkPresentFunc  func(ctx context.Context, sessionID uuid.UUID, voterID uuid.UUID, at time.Time) (*domain.Attendance, error)
	CountPresentFunc func(ctx context.Context, sessionID uuid.UUID) (int, error)
	ListFunc         func(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error)

	calls struct {
		MarkPresent []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			VoterID   uuid.UUID
			At        time.Time
		}
		CountPresent []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		List []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockMarkPresent  sync.RWMutex
	lockCountPresent sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *attendanceRepoMock) MarkPresent(ctx context.Context, sessionID uuid.UUID, voterID uuid.UUID, at time.Time) (*domain.Attendance, error) {
	if mock.MarkPresentFunc == nil {
		panic("attendanceRepoMock.MarkPresentFunc: method is nil but attendanceRepo.MarkPresent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		VoterID   uuid.UUID
		At        time.Time
	}{
		Ctx:       ctx,
		SessionID: sessionID,
		VoterID:   voterID,
		At:        at,
	}
	mock.lockMarkPresent.Lock()
	mock.calls.MarkPresent = append(mock.calls.MarkPresent, callInfo)
	mock.lockMarkPresent.Unlock()
	return mock.MarkPresentFunc(ctx, sessionID, voterID, at)
}

func (mock *attendanceRepoMock) MarkPresentCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	VoterID   uuid.UUID
	At        time.Time
} {
	mock.lockMarkPresent.RLock()
	calls := mock.calls.MarkPresent
	mock.lockMarkPresent.RUnlock()
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

func (mock *attendanceRepoMock) List(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error) {
	if mock.ListFunc == nil {
		panic("attendanceRepoMock.ListFunc: method is nil but attendanceRepo.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{
		Ctx:       ctx,
		SessionID: sessionID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, sessionID)
}

func (mock *attendanceRepoMock) ListCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
