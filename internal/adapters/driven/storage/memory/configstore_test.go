package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("input.dir", "/fichas"))
	require.NoError(t, store.Set("batch.workers", int64(8)))

	val, ok := store.Get("input.dir")
	assert.True(t, ok)
	assert.Equal(t, "/fichas", val)
	assert.Equal(t, "/fichas", store.GetString("input.dir"))
	assert.Equal(t, 8, store.GetInt("batch.workers"))

	require.NoError(t, store.Set("audit.strict", true))
	assert.True(t, store.GetBool("audit.strict"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("batch.workers", "eight"))
	require.NoError(t, store.Set("input.dir", 3))

	assert.Equal(t, 0, store.GetInt("batch.workers"))
	assert.Equal(t, "", store.GetString("input.dir"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("input.dir"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_UnsetAndKeys(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("b", 1))
	require.NoError(t, store.Set("a", 2))

	assert.Equal(t, []string{"a", "b"}, store.Keys())

	require.NoError(t, store.Unset("a"))
	_, ok := store.Get("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, store.Keys())

	assert.NoError(t, store.Unset("never-set"))
	assert.NoError(t, store.Load())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("batch.workers", n)
			_ = store.GetInt("batch.workers")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("batch.workers")
	assert.True(t, ok)
}
