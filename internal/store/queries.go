// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package store

import sq "github.com/Masterminds/squirrel"

// Fixed-shape statements live here as constants; anything with a dynamic
// WHERE/IN/LIMIT clause is built with squirrel (see the builders below).

const (
	albumColumns = `local_id, server_id, title, cover_remote_url, cover_local_path, sync_status, created_at, updated_at`

	insertAlbum = `
		INSERT INTO albums (` + albumColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	upsertAlbumByServerID = `
		INSERT INTO albums (` + albumColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(server_id) DO UPDATE SET
			title            = excluded.title,
			cover_remote_url = excluded.cover_remote_url,
			updated_at       = excluded.updated_at;`

	updateAlbum = `
		UPDATE albums SET
			title            = ?,
			cover_remote_url = ?,
			cover_local_path = ?,
			sync_status      = ?,
			updated_at       = ?
		WHERE local_id = ?;`

	deleteAlbum = `DELETE FROM albums WHERE local_id = ?;`

	getAlbumByLocalID  = `SELECT ` + albumColumns + ` FROM albums WHERE local_id = ?;`
	getAlbumByServerID = `SELECT ` + albumColumns + ` FROM albums WHERE server_id = ?;`

	markAlbumSynced = `
		UPDATE albums SET
			server_id   = ?,
			sync_status = ?,
			updated_at  = ?
		WHERE local_id = ? AND (server_id IS NULL OR server_id = ?);`

	setAlbumCoverRemoteURL = `
		UPDATE albums SET
			cover_remote_url = ?,
			cover_local_path = NULL,
			updated_at       = ?
		WHERE local_id = ?;`

	setAlbumSyncStatus = `UPDATE albums SET sync_status = ?, updated_at = ? WHERE local_id = ?;`

	memoryColumns = `local_id, server_id, album_local_id, album_server_id, title, description,
		remote_url, local_path, taken_at, sync_status, created_at, updated_at`

	insertMemory = `
		INSERT INTO memories (` + memoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	upsertMemoryByServerID = `
		INSERT INTO memories (` + memoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(server_id) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			remote_url  = excluded.remote_url,
			taken_at    = excluded.taken_at,
			updated_at  = excluded.updated_at;`

	updateMemory = `
		UPDATE memories SET
			title       = ?,
			description = ?,
			remote_url  = ?,
			local_path  = ?,
			sync_status = ?,
			updated_at  = ?
		WHERE local_id = ?;`

	deleteMemory = `DELETE FROM memories WHERE local_id = ?;`

	getMemoryByLocalID = `SELECT ` + memoryColumns + ` FROM memories WHERE local_id = ?;`

	markMemorySynced = `
		UPDATE memories SET
			server_id   = ?,
			remote_url  = ?,
			local_path  = NULL,
			sync_status = ?,
			updated_at  = ?
		WHERE local_id = ? AND (server_id IS NULL OR server_id = ?);`

	setMemoryAlbumServerID = `
		UPDATE memories SET album_server_id = ? WHERE album_local_id = ? AND album_server_id IS NULL;`

	setMemorySyncStatus = `UPDATE memories SET sync_status = ?, updated_at = ? WHERE local_id = ?;`

	userColumns = `local_id, server_id, login, name, birthday, avatar_remote_url, avatar_local_path,
		sync_status, created_at, updated_at`

	getUser = `SELECT ` + userColumns + ` FROM users LIMIT 1;`

	upsertUser = `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(local_id) DO UPDATE SET
			server_id         = excluded.server_id,
			login             = excluded.login,
			name              = excluded.name,
			birthday          = excluded.birthday,
			avatar_remote_url = excluded.avatar_remote_url,
			avatar_local_path = excluded.avatar_local_path,
			sync_status       = excluded.sync_status,
			updated_at        = excluded.updated_at;`

	setUserSyncStatus = `UPDATE users SET sync_status = ?, updated_at = ? WHERE local_id = ?;`

	operationColumns = `id, entity_type, operation_type, local_id, created_at, status, error_message`

	insertOperation = `
		INSERT INTO sync_queue (` + operationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	getAllOperations = `SELECT ` + operationColumns + ` FROM sync_queue ORDER BY created_at ASC;`

	updateOperationStatus = `UPDATE sync_queue SET status = ?, error_message = ? WHERE id = ?;`

	removeOperation = `DELETE FROM sync_queue WHERE id = ?;`

	countOperations = `SELECT COUNT(*) FROM sync_queue;`
)

// queueStatementBuilder is shared by the dynamic queue queries.
var stmt = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildPeekQuery selects PENDING and FAILED operations oldest-first.
func buildPeekQuery() (string, []any, error) {
	return stmt.
		Select("id", "entity_type", "operation_type", "local_id", "created_at", "status", "error_message").
		From("sync_queue").
		Where(sq.Eq{"status": []string{"PENDING", "FAILED"}}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildHasOutstandingQuery counts live operations of one type for one entity.
func buildHasOutstandingQuery(localID, opType string) (string, []any, error) {
	return stmt.
		Select("COUNT(*)").
		From("sync_queue").
		Where(sq.Eq{"local_id": localID, "operation_type": opType}).
		Where(sq.Eq{"status": []string{"PENDING", "IN_PROGRESS", "FAILED"}}).
		ToSql()
}

// buildPruneSyncedQuery deletes synced rows whose server id is absent from
// keep. Rows without a server id (offline creations) are never touched.
func buildPruneSyncedQuery(table string, keep []int64) (string, []any, error) {
	b := stmt.Delete(table).Where("server_id IS NOT NULL")
	if len(keep) > 0 {
		b = b.Where(sq.NotEq{"server_id": keep})
	}
	return b.ToSql()
}

// buildPruneSyncedMemoriesQuery is the album-scoped variant for memories.
func buildPruneSyncedMemoriesQuery(albumLocalID string, keep []int64) (string, []any, error) {
	b := stmt.Delete("memories").
		Where(sq.Eq{"album_local_id": albumLocalID}).
		Where("server_id IS NOT NULL")
	if len(keep) > 0 {
		b = b.Where(sq.NotEq{"server_id": keep})
	}
	return b.ToSql()
}

// buildListQuery selects newest-first with an optional limit and optional
// album scoping.
func buildListQuery(table, columns string, albumLocalID string, limit int) (string, []any, error) {
	b := stmt.
		Select(columns).
		From(table).
		OrderBy("created_at DESC")
	if albumLocalID != "" {
		b = b.Where(sq.Eq{"album_local_id": albumLocalID})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	return b.ToSql()
}
