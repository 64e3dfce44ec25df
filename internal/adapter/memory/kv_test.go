package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

func TestKVStore_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewKVStore()

	_, err := s.Get(ctx, "praxis_lib")
	require.ErrorIs(t, err, domain.ErrNotFound)

	value := []byte(`{"subjects":{}}`)
	require.NoError(t, s.Put(ctx, "praxis_lib", value))

	value[0] = 'X'
	got, err := s.Get(ctx, "praxis_lib")
	require.NoError(t, err)
	assert.Equal(t, `{"subjects":{}}`, string(got), "store must keep its own copy")

	require.NoError(t, s.Put(ctx, "praxis_lib", []byte("v2")))
	got, err = s.Get(ctx, "praxis_lib")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestKVStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewKVStore()

	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	require.NoError(t, s.Put(ctx, "b", []byte("2")))
	require.NoError(t, s.Delete(ctx, "a", "missing"))

	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Get(ctx, "b")
	assert.NoError(t, err)
}

func TestKVStore_Quota(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewKVStore(WithQuota(10))

	require.NoError(t, s.Put(ctx, "a", []byte("12345")))
	require.NoError(t, s.Put(ctx, "a", []byte("1234567890")), "overwrite counts only the new value")

	err := s.Put(ctx, "b", []byte("x"))
	require.ErrorIs(t, err, domain.ErrStorageWrite)

	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound, "failed write leaves no trace")
}
