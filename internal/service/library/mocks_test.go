package library

//go:generate moq -out mocks_test.go -pkg library . libraryStore awarder

import (
	"context"
	"sync"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

var _ libraryStore = &libraryStoreMock{}

type libraryStoreMock struct {
	SaveLibraryFunc func(ctx context.Context, lib *domain.Library)

	calls struct {
		SaveLibrary []struct {
			Ctx context.Context
			Lib *domain.Library
		}
	}
	lockSaveLibrary sync.RWMutex
}

func (mock *libraryStoreMock) SaveLibrary(ctx context.Context, lib *domain.Library) {
	callInfo := struct {
		Ctx context.Context
		Lib *domain.Library
	}{Ctx: ctx, Lib: lib}
	mock.lockSaveLibrary.Lock()
	mock.calls.SaveLibrary = append(mock.calls.SaveLibrary, callInfo)
	mock.lockSaveLibrary.Unlock()
	if mock.SaveLibraryFunc != nil {
		mock.SaveLibraryFunc(ctx, lib)
	}
}

func (mock *libraryStoreMock) SaveLibraryCalls() []struct {
	Ctx context.Context
	Lib *domain.Library
} {
	mock.lockSaveLibrary.RLock()
	calls := mock.calls.SaveLibrary
	mock.lockSaveLibrary.RUnlock()
	return calls
}

var _ awarder = &awarderMock{}

type awarderMock struct {
	AwardActionFunc func(ctx context.Context, activity domain.Activity) (domain.AwardResult, error)

	calls struct {
		AwardAction []struct {
			Ctx      context.Context
			Activity domain.Activity
		}
	}
	lockAwardAction sync.RWMutex
}

func (mock *awarderMock) AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error) {
	callInfo := struct {
		Ctx      context.Context
		Activity domain.Activity
	}{Ctx: ctx, Activity: activity}
	mock.lockAwardAction.Lock()
	mock.calls.AwardAction = append(mock.calls.AwardAction, callInfo)
	mock.lockAwardAction.Unlock()
	if mock.AwardActionFunc == nil {
		return domain.AwardResult{Gained: activity.Points()}, nil
	}
	return mock.AwardActionFunc(ctx, activity)
}

func (mock *awarderMock) AwardActionCalls() []struct {
	Ctx      context.Context
	Activity domain.Activity
} {
	mock.lockAwardAction.RLock()
	calls := mock.calls.AwardAction
	mock.lockAwardAction.RUnlock()
	return calls
}
