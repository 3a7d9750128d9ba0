package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/models"
)

func newTestMemoryRepo(t *testing.T) (*memoryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &memoryRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func memoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"local_id", "server_id", "album_local_id", "album_server_id", "title", "description",
		"remote_url", "local_path", "taken_at", "sync_status", "created_at", "updated_at",
	})
}

func TestMemorySyncSet_PruneIsAlbumScoped(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	now := time.Now()
	serverID := int64(5)
	albumServerID := int64(1)
	fetched := []models.Memory{{
		LocalID:       "m-5",
		ServerID:      &serverID,
		AlbumLocalID:  "album-1",
		AlbumServerID: &albumServerID,
		Title:         "Beach",
		TakenAt:       now,
		SyncStatus:    models.StatusSynced,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}

	mock.ExpectExec("INSERT INTO memories").
		WithArgs("m-5", serverID, "album-1", albumServerID, "Beach", "",
			nil, nil, now, models.StatusSynced, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(`DELETE FROM memories WHERE album_local_id = \? AND server_id IS NOT NULL AND server_id NOT IN \(\?\)`).
		WithArgs("album-1", serverID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SyncSet(context.Background(), "album-1", fetched); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMemorySyncAppend_StampsAlbumLocalID(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	now := time.Now()
	serverID := int64(5)
	fetched := []models.Memory{{
		LocalID:    "m-5",
		ServerID:   &serverID,
		Title:      "Beach",
		TakenAt:    now,
		SyncStatus: models.StatusSynced,
		CreatedAt:  now,
		UpdatedAt:  now,
	}}

	mock.ExpectExec("INSERT INTO memories").
		WithArgs("m-5", serverID, "album-1", nil, "Beach", "",
			nil, nil, now, models.StatusSynced, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SyncAppend(context.Background(), "album-1", fetched); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMemoryMarkAsSynced_ServerIDImmutable(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec("UPDATE memories SET").
		WithArgs(int64(5), "https://cdn/m5.jpg", models.StatusSynced, sqlmock.AnyArg(), "m-1", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT (.+) FROM memories WHERE local_id").
		WithArgs("m-1").
		WillReturnRows(memoryRows().
			AddRow("m-1", int64(8), "album-1", int64(1), "Beach", "", "https://cdn/other.jpg", nil,
				now, models.StatusSynced, now, now))

	err := repo.MarkAsSynced(context.Background(), "m-1", 5, "https://cdn/m5.jpg")
	if !errors.Is(err, ErrServerIDImmutable) {
		t.Fatalf("expected ErrServerIDImmutable, got %v", err)
	}
}

func TestMemorySetAlbumServerID(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE memories SET album_server_id").
		WithArgs(int64(1), "album-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.SetAlbumServerID(context.Background(), "album-1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMemoryGetByAlbum_Limit(t *testing.T) {
	repo, mock, db := newTestMemoryRepo(t)
	defer db.Close()

	now := time.Now()
	rows := memoryRows().
		AddRow("m-1", nil, "album-1", nil, "Offline shot", "desc", nil, "/images/memory/m-1",
			now, models.StatusPendingCreate, now, now)

	mock.ExpectQuery(`SELECT (.+) FROM memories WHERE album_local_id = \? ORDER BY created_at DESC LIMIT 20`).
		WithArgs("album-1").
		WillReturnRows(rows)

	memories, err := repo.GetByAlbum(context.Background(), "album-1", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(memories) != 1 {
		t.Fatalf("expected 1 memory, got %d", len(memories))
	}
	if memories[0].LocalPath == nil {
		t.Error("expected staged local path to survive the scan")
	}
}
