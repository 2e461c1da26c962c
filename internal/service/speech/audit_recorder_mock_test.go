package speech

import (
	"context"
	"sync"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

var _ auditRecorder = &auditRecorderMock{}

type auditRecorderMock struct {
	RecordFunc func(ctx context.Context, action domain.AuditAction, details map[string]any)

	calls struct {
		Record []struct {
			Ctx     context.Context
			Action  domain.AuditAction
			Details map[string]any
		}
	}
	lockRecord sync.RWMutex
}

func (mock *auditRecorderMock) Record(ctx context.Context, action domain.AuditAction, details map[string]any) {
	if mock.RecordFunc == nil {
		panic("auditRecorderMock.RecordFunc: method is nil but auditRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Action  domain.AuditAction
		Details map[string]any
	}{
		Ctx:     ctx,
		Action:  action,
		Details: details,
	}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, action, details)
}

func (mock *auditRecorderMock) RecordCalls() []struct {
	Ctx     context.Context
	Action  domain.AuditAction
	Details map[string]any
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
