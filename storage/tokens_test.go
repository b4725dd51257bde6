package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchernov/campuskit/storage"
	"github.com/dchernov/campuskit/storage/memory"
)

func TestTokenStorePair(t *testing.T) {
	ts := storage.NewTokenStore(memory.NewStore())

	_, ok := ts.Access()
	assert.False(t, ok)
	_, ok = ts.Refresh()
	assert.False(t, ok)

	require.NoError(t, ts.SetPair("AT1", "RT1"))

	access, ok := ts.Access()
	require.True(t, ok)
	assert.Equal(t, "AT1", access)

	refresh, ok := ts.Refresh()
	require.True(t, ok)
	assert.Equal(t, "RT1", refresh)
}

func TestTokenStoreSetAccessKeepsRefresh(t *testing.T) {
	ts := storage.NewTokenStore(memory.NewStore())
	require.NoError(t, ts.SetPair("AT1", "RT1"))

	require.NoError(t, ts.SetAccess("AT2"))

	access, ok := ts.Access()
	require.True(t, ok)
	assert.Equal(t, "AT2", access)

	refresh, ok := ts.Refresh()
	require.True(t, ok)
	assert.Equal(t, "RT1", refresh)
}

func TestTokenStoreClear(t *testing.T) {
	ts := storage.NewTokenStore(memory.NewStore())
	require.NoError(t, ts.SetPair("AT1", "RT1"))
	require.NoError(t, ts.Clear())

	_, ok := ts.Access()
	assert.False(t, ok)
	_, ok = ts.Refresh()
	assert.False(t, ok)
}
