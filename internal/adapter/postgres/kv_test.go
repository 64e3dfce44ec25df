package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/postgres"
	"github.com/dauchezhenri-coder/praxis-backend/internal/adapter/postgres/testhelper"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

func TestKVStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	ctx := context.Background()
	s := postgres.NewKVStore(testhelper.SetupTestDB(t))
	key := "test_" + uuid.NewString()[:8]

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Put(ctx, key, []byte(`{"xp":1}`)))
	require.NoError(t, s.Put(ctx, key, []byte(`{"xp":2}`)))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"xp":2}`, string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, s.Ping(ctx))
}
