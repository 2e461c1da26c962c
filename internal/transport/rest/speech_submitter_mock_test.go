package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/speech"
)

var _ speechSubmitter = &speechSubmitterMock{}

type speechSubmitterMock struct {
	SubmitFunc func(ctx context.Context, input speech.SubmitInput) (*domain.SpeechRequest, error)

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input speech.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *speechSubmitterMock) Submit(ctx context.Context, input speech.SubmitInput) (*domain.SpeechRequest, error) {
	if mock.SubmitFunc == nil {
		panic("speechSubmitterMock.SubmitFunc: method is nil but speechSubmitter.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input speech.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *speechSubmitterMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input speech.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
