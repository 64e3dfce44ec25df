package persistence

import (
	"context"
	"sync"
)

var _ kvStore = &kvStoreMock{}

type kvStoreMock struct {
	GetFunc func(ctx context.Context, key string) ([]byte, error)
	PutFunc func(ctx context.Context, key string, value []byte) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Put []struct {
			Ctx   context.Context
			Key   string
			Value []byte
		}
	}
	lockGet sync.RWMutex
	lockPut sync.RWMutex
}

func (mock *kvStoreMock) Get(ctx context.Context, key string) ([]byte, error) {
	if mock.GetFunc == nil {
		panic("kvStoreMock.GetFunc: method is nil but kvStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *kvStoreMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *kvStoreMock) Put(ctx context.Context, key string, value []byte) error {
	if mock.PutFunc == nil {
		panic("kvStoreMock.PutFunc: method is nil but kvStore.Put was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Key   string
		Value []byte
	}{Ctx: ctx, Key: key, Value: value}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, value)
}

func (mock *kvStoreMock) PutCalls() []struct {
	Ctx   context.Context
	Key   string
	Value []byte
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
