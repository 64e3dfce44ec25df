package progression

import (
	"context"
	"sync"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

var _ progressionStore = &progressionStoreMock{}

type progressionStoreMock struct {
	SaveProgressionFunc func(ctx context.Context, p domain.Progression)

	calls struct {
		SaveProgression []struct {
			Ctx context.Context
			P   domain.Progression
		}
	}
	lockSaveProgression sync.RWMutex
}

func (mock *progressionStoreMock) SaveProgression(ctx context.Context, p domain.Progression) {
	callInfo := struct {
		Ctx context.Context
		P   domain.Progression
	}{Ctx: ctx, P: p}
	mock.lockSaveProgression.Lock()
	mock.calls.SaveProgression = append(mock.calls.SaveProgression, callInfo)
	mock.lockSaveProgression.Unlock()
	if mock.SaveProgressionFunc != nil {
		mock.SaveProgressionFunc(ctx, p)
	}
}

func (mock *progressionStoreMock) SaveProgressionCalls() []struct {
	Ctx context.Context
	P   domain.Progression
} {
	mock.lockSaveProgression.RLock()
	calls := mock.calls.SaveProgression
	mock.lockSaveProgression.RUnlock()
	return calls
}

var _ levelUpListener = &levelUpListenerMock{}

type levelUpListenerMock struct {
	calls struct {
		LevelUp []domain.LevelUpEvent
	}
	lockLevelUp sync.RWMutex
}

func (mock *levelUpListenerMock) LevelUp(_ context.Context, event domain.LevelUpEvent) {
	mock.lockLevelUp.Lock()
	mock.calls.LevelUp = append(mock.calls.LevelUp, event)
	mock.lockLevelUp.Unlock()
}

func (mock *levelUpListenerMock) LevelUpCalls() []domain.LevelUpEvent {
	mock.lockLevelUp.RLock()
	calls := mock.calls.LevelUp
	mock.lockLevelUp.RUnlock()
	return calls
}
