package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPeekQuery(t *testing.T) {
	query, args, err := buildPeekQuery()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM sync_queue")
	assert.Contains(t, query, "status IN (?,?)")
	assert.Contains(t, query, "ORDER BY created_at ASC")
	assert.Equal(t, []any{"PENDING", "FAILED"}, args)
}

func TestBuildHasOutstandingQuery(t *testing.T) {
	query, args, err := buildHasOutstandingQuery("local-1", "CREATE")
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT COUNT(*) FROM sync_queue")
	assert.Contains(t, query, "status IN (?,?,?)")
	assert.Equal(t, []any{"local-1", "CREATE", "PENDING", "IN_PROGRESS", "FAILED"}, args)
}

func TestBuildPruneSyncedQuery(t *testing.T) {
	t.Run("with ids to keep", func(t *testing.T) {
		query, args, err := buildPruneSyncedQuery("albums", []int64{1, 2})
		require.NoError(t, err)

		assert.Equal(t, "DELETE FROM albums WHERE server_id IS NOT NULL AND server_id NOT IN (?,?)", query)
		assert.Equal(t, []any{int64(1), int64(2)}, args)
	})

	t.Run("empty fetch deletes every server-owned row", func(t *testing.T) {
		query, args, err := buildPruneSyncedQuery("albums", nil)
		require.NoError(t, err)

		assert.Equal(t, "DELETE FROM albums WHERE server_id IS NOT NULL", query)
		assert.Empty(t, args)
	})
}

func TestBuildPruneSyncedMemoriesQuery_ScopedToAlbum(t *testing.T) {
	query, args, err := buildPruneSyncedMemoriesQuery("album-1", []int64{5})
	require.NoError(t, err)

	assert.Contains(t, query, "album_local_id = ?")
	assert.Contains(t, query, "server_id IS NOT NULL")
	assert.Equal(t, []any{"album-1", int64(5)}, args)
}

func TestBuildListQuery(t *testing.T) {
	t.Run("no scope, no limit", func(t *testing.T) {
		query, args, err := buildListQuery("albums", albumColumns, "", 0)
		require.NoError(t, err)

		assert.Contains(t, query, "FROM albums")
		assert.Contains(t, query, "ORDER BY created_at DESC")
		assert.NotContains(t, query, "LIMIT")
		assert.Empty(t, args)
	})

	t.Run("album scope and limit", func(t *testing.T) {
		query, args, err := buildListQuery("memories", memoryColumns, "album-1", 20)
		require.NoError(t, err)

		assert.Contains(t, query, "album_local_id = ?")
		assert.Contains(t, query, "LIMIT 20")
		assert.Equal(t, []any{"album-1"}, args)
	})
}
