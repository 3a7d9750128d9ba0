package service

// In-memory stateful fakes for the storage interfaces. The engine scenario
// tests need real state transitions across a whole drain pass, which is what
// call-expectation mocks are bad at; gateways stay gomock because there a
// scripted call sequence is exactly the point.

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/models"
)

var errDiskFull = errors.New("disk full")

type fakeAlbumRepo struct {
	mu     sync.Mutex
	rows   map[string]models.Album
	events chan store.Change[models.Album]
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{
		rows:   make(map[string]models.Album),
		events: make(chan store.Change[models.Album], 64),
	}
}

func (f *fakeAlbumRepo) GetAll(_ context.Context, limit int) ([]models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	albums := make([]models.Album, 0, len(f.rows))
	for _, a := range f.rows {
		albums = append(albums, a)
	}
	sort.Slice(albums, func(i, j int) bool { return albums[i].CreatedAt.After(albums[j].CreatedAt) })
	if limit > 0 && len(albums) > limit {
		albums = albums[:limit]
	}
	return albums, nil
}

func (f *fakeAlbumRepo) GetByLocalID(_ context.Context, localID string) (models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.rows[localID]
	if !ok {
		return models.Album{}, store.ErrAlbumNotFound
	}
	return album, nil
}

func (f *fakeAlbumRepo) GetByServerID(_ context.Context, serverID int64) (models.Album, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.rows {
		if a.ServerID != nil && *a.ServerID == serverID {
			return a, nil
		}
	}
	return models.Album{}, store.ErrAlbumNotFound
}

func (f *fakeAlbumRepo) SyncSet(ctx context.Context, albums []models.Album) error {
	if err := f.SyncAppend(ctx, albums); err != nil {
		return err
	}

	keep := make(map[int64]bool, len(albums))
	for _, a := range albums {
		if a.ServerID != nil {
			keep[*a.ServerID] = true
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.rows {
		if a.ServerID != nil && !keep[*a.ServerID] {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeAlbumRepo) SyncAppend(_ context.Context, albums []models.Album) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, incoming := range albums {
		if incoming.ServerID == nil {
			continue
		}
		merged := incoming
		for id, existing := range f.rows {
			if existing.ServerID != nil && *existing.ServerID == *incoming.ServerID {
				merged.LocalID = id
				merged.SyncStatus = existing.SyncStatus
				merged.CoverLocalPath = existing.CoverLocalPath
				break
			}
		}
		f.rows[merged.LocalID] = merged
	}
	return nil
}

func (f *fakeAlbumRepo) Insert(_ context.Context, album models.Album) error {
	f.mu.Lock()
	f.rows[album.LocalID] = album
	f.mu.Unlock()
	f.publish(store.Change[models.Album]{Kind: store.ChangeCreated, Entity: album})
	return nil
}

func (f *fakeAlbumRepo) Update(_ context.Context, album models.Album) error {
	f.mu.Lock()
	f.rows[album.LocalID] = album
	f.mu.Unlock()
	f.publish(store.Change[models.Album]{Kind: store.ChangeUpdated, Entity: album})
	return nil
}

func (f *fakeAlbumRepo) Delete(_ context.Context, localID string) error {
	f.mu.Lock()
	album := f.rows[localID]
	delete(f.rows, localID)
	f.mu.Unlock()
	f.publish(store.Change[models.Album]{Kind: store.ChangeDeleted, Entity: album})
	return nil
}

func (f *fakeAlbumRepo) MarkAsSynced(_ context.Context, localID string, serverID int64) error {
	f.mu.Lock()
	album, ok := f.rows[localID]
	if !ok {
		f.mu.Unlock()
		return store.ErrAlbumNotFound
	}
	if album.ServerID != nil && *album.ServerID != serverID {
		f.mu.Unlock()
		return store.ErrServerIDImmutable
	}
	album.ServerID = &serverID
	album.SyncStatus = models.StatusSynced
	f.rows[localID] = album
	f.mu.Unlock()
	f.publish(store.Change[models.Album]{Kind: store.ChangeUpdated, Entity: album})
	return nil
}

func (f *fakeAlbumRepo) SetCoverRemoteURL(_ context.Context, localID, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.rows[localID]
	if !ok {
		return store.ErrAlbumNotFound
	}
	album.CoverRemoteURL = &url
	album.CoverLocalPath = nil
	f.rows[localID] = album
	return nil
}

func (f *fakeAlbumRepo) SetSyncStatus(_ context.Context, localID string, status models.SyncStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	album, ok := f.rows[localID]
	if !ok {
		return store.ErrAlbumNotFound
	}
	album.SyncStatus = status
	f.rows[localID] = album
	return nil
}

func (f *fakeAlbumRepo) Events() <-chan store.Change[models.Album] {
	return f.events
}

func (f *fakeAlbumRepo) publish(c store.Change[models.Album]) {
	select {
	case f.events <- c:
	default:
	}
}

type fakeMemoryRepo struct {
	mu     sync.Mutex
	rows   map[string]models.Memory
	events chan store.Change[models.Memory]
}

func newFakeMemoryRepo() *fakeMemoryRepo {
	return &fakeMemoryRepo{
		rows:   make(map[string]models.Memory),
		events: make(chan store.Change[models.Memory], 64),
	}
}

func (f *fakeMemoryRepo) GetByAlbum(_ context.Context, albumLocalID string, limit int) ([]models.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	memories := make([]models.Memory, 0)
	for _, m := range f.rows {
		if m.AlbumLocalID == albumLocalID {
			memories = append(memories, m)
		}
	}
	sort.Slice(memories, func(i, j int) bool { return memories[i].CreatedAt.After(memories[j].CreatedAt) })
	if limit > 0 && len(memories) > limit {
		memories = memories[:limit]
	}
	return memories, nil
}

func (f *fakeMemoryRepo) GetByLocalID(_ context.Context, localID string) (models.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	memory, ok := f.rows[localID]
	if !ok {
		return models.Memory{}, store.ErrMemoryNotFound
	}
	return memory, nil
}

func (f *fakeMemoryRepo) SyncSet(ctx context.Context, albumLocalID string, memories []models.Memory) error {
	if err := f.SyncAppend(ctx, albumLocalID, memories); err != nil {
		return err
	}

	keep := make(map[int64]bool, len(memories))
	for _, m := range memories {
		if m.ServerID != nil {
			keep[*m.ServerID] = true
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for id, m := range f.rows {
		if m.AlbumLocalID == albumLocalID && m.ServerID != nil && !keep[*m.ServerID] {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeMemoryRepo) SyncAppend(_ context.Context, albumLocalID string, memories []models.Memory) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, incoming := range memories {
		if incoming.ServerID == nil {
			continue
		}
		if incoming.AlbumLocalID == "" {
			incoming.AlbumLocalID = albumLocalID
		}
		merged := incoming
		for id, existing := range f.rows {
			if existing.ServerID != nil && *existing.ServerID == *incoming.ServerID {
				merged.LocalID = id
				merged.SyncStatus = existing.SyncStatus
				merged.LocalPath = existing.LocalPath
				break
			}
		}
		f.rows[merged.LocalID] = merged
	}
	return nil
}

func (f *fakeMemoryRepo) Insert(_ context.Context, memory models.Memory) error {
	f.mu.Lock()
	f.rows[memory.LocalID] = memory
	f.mu.Unlock()
	f.publish(store.Change[models.Memory]{Kind: store.ChangeCreated, Entity: memory})
	return nil
}

func (f *fakeMemoryRepo) Update(_ context.Context, memory models.Memory) error {
	f.mu.Lock()
	f.rows[memory.LocalID] = memory
	f.mu.Unlock()
	f.publish(store.Change[models.Memory]{Kind: store.ChangeUpdated, Entity: memory})
	return nil
}

func (f *fakeMemoryRepo) Delete(_ context.Context, localID string) error {
	f.mu.Lock()
	memory := f.rows[localID]
	delete(f.rows, localID)
	f.mu.Unlock()
	f.publish(store.Change[models.Memory]{Kind: store.ChangeDeleted, Entity: memory})
	return nil
}

func (f *fakeMemoryRepo) MarkAsSynced(_ context.Context, localID string, serverID int64, remoteURL string) error {
	f.mu.Lock()
	memory, ok := f.rows[localID]
	if !ok {
		f.mu.Unlock()
		return store.ErrMemoryNotFound
	}
	if memory.ServerID != nil && *memory.ServerID != serverID {
		f.mu.Unlock()
		return store.ErrServerIDImmutable
	}
	memory.ServerID = &serverID
	memory.RemoteURL = &remoteURL
	memory.LocalPath = nil
	memory.SyncStatus = models.StatusSynced
	f.rows[localID] = memory
	f.mu.Unlock()
	f.publish(store.Change[models.Memory]{Kind: store.ChangeUpdated, Entity: memory})
	return nil
}

func (f *fakeMemoryRepo) SetAlbumServerID(_ context.Context, albumLocalID string, albumServerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, m := range f.rows {
		if m.AlbumLocalID == albumLocalID && m.AlbumServerID == nil {
			m.AlbumServerID = &albumServerID
			f.rows[id] = m
		}
	}
	return nil
}

func (f *fakeMemoryRepo) SetSyncStatus(_ context.Context, localID string, status models.SyncStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	memory, ok := f.rows[localID]
	if !ok {
		return store.ErrMemoryNotFound
	}
	memory.SyncStatus = status
	f.rows[localID] = memory
	return nil
}

func (f *fakeMemoryRepo) Events() <-chan store.Change[models.Memory] {
	return f.events
}

func (f *fakeMemoryRepo) publish(c store.Change[models.Memory]) {
	select {
	case f.events <- c:
	default:
	}
}

type fakeUserRepo struct {
	mu     sync.Mutex
	row    *models.User
	events chan store.Change[models.User]
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{events: make(chan store.Change[models.User], 64)}
}

func (f *fakeUserRepo) Get(_ context.Context) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.row == nil {
		return models.User{}, store.ErrUserNotFound
	}
	return *f.row, nil
}

func (f *fakeUserRepo) Save(_ context.Context, user models.User) error {
	f.mu.Lock()
	f.row = &user
	f.mu.Unlock()
	select {
	case f.events <- store.Change[models.User]{Kind: store.ChangeUpdated, Entity: user}:
	default:
	}
	return nil
}

func (f *fakeUserRepo) SaveSynced(ctx context.Context, user models.User) error {
	f.mu.Lock()
	if f.row != nil {
		user.LocalID = f.row.LocalID
		user.CreatedAt = f.row.CreatedAt
		if user.AvatarRemoteURL == nil && user.AvatarLocalPath == nil {
			user.AvatarLocalPath = f.row.AvatarLocalPath
		}
	}
	user.SyncStatus = models.StatusSynced
	f.mu.Unlock()
	return f.Save(ctx, user)
}

func (f *fakeUserRepo) SetSyncStatus(_ context.Context, localID string, status models.SyncStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.row == nil || f.row.LocalID != localID {
		return store.ErrUserNotFound
	}
	f.row.SyncStatus = status
	return nil
}

func (f *fakeUserRepo) Events() <-chan store.Change[models.User] {
	return f.events
}

type fakeQueueRepo struct {
	mu      sync.Mutex
	ops     []models.SyncOperation
	syncing atomic.Bool
	state   chan models.QueueState

	enqueueCalls int
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{state: make(chan models.QueueState, 64)}
}

func (f *fakeQueueRepo) Enqueue(_ context.Context, op models.SyncOperation) error {
	f.mu.Lock()
	f.ops = append(f.ops, op)
	f.enqueueCalls++
	f.mu.Unlock()
	f.publishState()
	return nil
}

func (f *fakeQueueRepo) Peek(_ context.Context) ([]models.SyncOperation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.SyncOperation
	for _, op := range f.ops {
		if op.Status == models.OperationPending || op.Status == models.OperationFailed {
			out = append(out, op)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeQueueRepo) GetAll(_ context.Context) ([]models.SyncOperation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.SyncOperation, len(f.ops))
	copy(out, f.ops)
	return out, nil
}

func (f *fakeQueueRepo) HasOutstanding(_ context.Context, localID string, opType models.OperationType) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, op := range f.ops {
		if op.LocalID == localID && op.OperationType == opType {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQueueRepo) UpdateStatus(_ context.Context, id string, status models.OperationStatus, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.ops {
		if f.ops[i].ID == id {
			f.ops[i].Status = status
			if errorMessage != "" {
				msg := errorMessage
				f.ops[i].ErrorMessage = &msg
			}
			return nil
		}
	}
	return store.ErrOperationNotFound
}

func (f *fakeQueueRepo) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	for i := range f.ops {
		if f.ops[i].ID == id {
			f.ops = append(f.ops[:i], f.ops[i+1:]...)
			break
		}
	}
	f.mu.Unlock()
	f.publishState()
	return nil
}

func (f *fakeQueueRepo) TryStartSyncing() bool {
	return f.syncing.CompareAndSwap(false, true)
}

func (f *fakeQueueRepo) StopSyncing() {
	f.syncing.Store(false)
}

func (f *fakeQueueRepo) IsSyncing() bool {
	return f.syncing.Load()
}

func (f *fakeQueueRepo) State() <-chan models.QueueState {
	return f.state
}

func (f *fakeQueueRepo) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ops)
}

func (f *fakeQueueRepo) publishState() {
	f.mu.Lock()
	st := models.QueueState{PendingCount: len(f.ops), IsSyncing: f.syncing.Load()}
	f.mu.Unlock()
	select {
	case f.state <- st:
	default:
	}
}

type fakeImageStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	failSave bool
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{blobs: make(map[string][]byte)}
}

func (f *fakeImageStore) key(kind models.ImageKind, key string) string {
	return string(kind) + "/" + key
}

func (f *fakeImageStore) Save(_ context.Context, kind models.ImageKind, key string, data []byte) (string, error) {
	if f.failSave {
		return "", errDiskFull
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[f.key(kind, key)] = data
	return "/images/" + f.key(kind, key), nil
}

func (f *fakeImageStore) Get(_ context.Context, kind models.ImageKind, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.blobs[f.key(kind, key)]
	if !ok {
		return nil, store.ErrImageNotFound
	}
	return data, nil
}

func (f *fakeImageStore) Delete(_ context.Context, kind models.ImageKind, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, f.key(kind, key))
	return nil
}

func (f *fakeImageStore) has(kind models.ImageKind, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.blobs[f.key(kind, key)]
	return ok
}
