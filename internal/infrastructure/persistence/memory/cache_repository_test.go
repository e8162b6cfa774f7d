package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository(time.Minute)

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k1", []byte("v1"), time.Minute))

		value, err := cache.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)

		exists, err := cache.Exists(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := cache.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("ExpiredKey", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Nanosecond))
		time.Sleep(5 * time.Millisecond)

		_, err := cache.Get(ctx, "short")
		assert.ErrorIs(t, err, ErrKeyNotFound)

		exists, err := cache.Exists(ctx, "short")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "gone", []byte("v"), time.Minute))
		require.NoError(t, cache.Delete(ctx, "gone"))

		_, err := cache.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})
}
