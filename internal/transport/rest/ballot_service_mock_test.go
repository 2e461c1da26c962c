package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/voting"
)

var _ ballotService = &ballotServiceMock{}

type ballotServiceMock struct {
	CastVoteFunc func(ctx context.Context, input voting.CastVoteInput) (*domain.Vote, error)

	calls struct {
		CastVote []struct {
			Ctx   context.Context
			Input voting.CastVoteInput
		}
	}
	lockCastVote sync.RWMutex
}

func (mock *ballotServiceMock) CastVote(ctx context.Context, input voting.CastVoteInput) (*domain.Vote, error) {
	if mock.CastVoteFunc == nil {
		panic("ballotServiceMock.CastVoteFunc: method is nil but ballotService.CastVote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input voting.CastVoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCastVote.Lock()
	mock.calls.CastVote = append(mock.calls.CastVote, callInfo)
	mock.lockCastVote.Unlock()
	return mock.CastVoteFunc(ctx, input)
}

func (mock *ballotServiceMock) CastVoteCalls() []struct {
	Ctx   context.Context
	Input voting.CastVoteInput
} {
	mock.lockCastVote.RLock()
	calls := mock.calls.CastVote
	mock.lockCastVote.RUnlock()
	return calls
}
