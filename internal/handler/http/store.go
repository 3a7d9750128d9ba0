package http

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mlukashe/go-photo-keeper/models"
)

var (
	errLoginTaken    = errors.New("login already taken")
	errBadCreds      = errors.New("invalid credentials")
	errAlbumMissing  = errors.New("album not found")
	errRecordMissing = errors.New("record not found")
)

type account struct {
	ID           int64
	Login        string
	PasswordHash string
	Name         string
	Birthday     *string
	AvatarURL    *string
}

type albumRecord struct {
	ID        int64
	UserID    int64
	Title     string
	CoverURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type memoryRecord struct {
	ID          int64
	AlbumID     int64
	UserID      int64
	Title       string
	Description string
	ImageURL    string
	TakenAt     time.Time
	CreatedAt   time.Time
}

// memStore is the dev server's whole persistence layer. Everything lives in
// process memory and is lost on restart, which is the point: a clean slate
// for every development session.
type memStore struct {
	mu sync.Mutex

	nextID   int64
	accounts map[int64]*account
	byLogin  map[string]int64
	albums   map[int64]*albumRecord
	memories map[int64]*memoryRecord
	images   map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[int64]*account),
		byLogin:  make(map[string]int64),
		albums:   make(map[int64]*albumRecord),
		memories: make(map[int64]*memoryRecord),
		images:   make(map[string][]byte),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) CreateAccount(login, passwordHash, name string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byLogin[login]; taken {
		return account{}, errLoginTaken
	}

	acc := &account{ID: s.id(), Login: login, PasswordHash: passwordHash, Name: name}
	if acc.Name == "" {
		acc.Name = login
	}
	s.accounts[acc.ID] = acc
	s.byLogin[login] = acc.ID
	return *acc, nil
}

func (s *memStore) Authenticate(login, passwordHash string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byLogin[login]
	if !ok {
		return account{}, errBadCreds
	}
	acc := s.accounts[id]
	if acc.PasswordHash != passwordHash {
		return account{}, errBadCreds
	}
	return *acc, nil
}

func (s *memStore) GetAccount(userID int64) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return account{}, errRecordMissing
	}
	return *acc, nil
}

func (s *memStore) UpdateAccount(userID int64, name string, birthday *string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return account{}, errRecordMissing
	}
	acc.Name = name
	acc.Birthday = birthday
	return *acc, nil
}

func (s *memStore) SetAvatar(userID int64, url string) (account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return account{}, errRecordMissing
	}
	acc.AvatarURL = &url
	return *acc, nil
}

func (s *memStore) CreateAlbum(userID int64, title string) albumRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := &albumRecord{ID: s.id(), UserID: userID, Title: title, CreatedAt: now, UpdatedAt: now}
	s.albums[rec.ID] = rec
	return *rec
}

func (s *memStore) UpdateAlbum(userID, albumID int64, title string) (albumRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.albums[albumID]
	if !ok || rec.UserID != userID {
		return albumRecord{}, errAlbumMissing
	}
	rec.Title = title
	rec.UpdatedAt = time.Now()
	return *rec, nil
}

func (s *memStore) SetAlbumCover(userID, albumID int64, url string) (albumRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.albums[albumID]
	if !ok || rec.UserID != userID {
		return albumRecord{}, errAlbumMissing
	}
	rec.CoverURL = &url
	rec.UpdatedAt = time.Now()
	return *rec, nil
}

// ListAlbums returns one page sorted newest-first, matching the order the
// client renders from its own cache.
func (s *memStore) ListAlbums(userID int64, page models.PagedRequest) ([]albumRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []albumRecord
	for _, rec := range s.albums {
		if rec.UserID == userID {
			all = append(all, *rec)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	return paginate(all, page)
}

func (s *memStore) CreateMemory(userID, albumID int64, title, description, imageURL string, takenAt time.Time) (memoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, ok := s.albums[albumID]
	if !ok || album.UserID != userID {
		return memoryRecord{}, errAlbumMissing
	}

	rec := &memoryRecord{
		ID:          s.id(),
		AlbumID:     albumID,
		UserID:      userID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		TakenAt:     takenAt,
		CreatedAt:   time.Now(),
	}
	s.memories[rec.ID] = rec
	return *rec, nil
}

func (s *memStore) ListMemories(userID, albumID int64, page models.PagedRequest) ([]memoryRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	album, ok := s.albums[albumID]
	if !ok || album.UserID != userID {
		return nil, false, errAlbumMissing
	}

	var all []memoryRecord
	for _, rec := range s.memories {
		if rec.AlbumID == albumID {
			all = append(all, *rec)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	items, hasMore := paginate(all, page)
	return items, hasMore, nil
}

// SaveImage stores a blob and returns the path it is served under.
func (s *memStore) SaveImage(kind string, ownerID int64, fileName string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := fmt.Sprintf("/static/%s/%d/%s", kind, ownerID, fileName)
	s.images[path] = data
	return path
}

func (s *memStore) GetImage(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.images[path]
	return data, ok
}

func paginate[T any](all []T, page models.PagedRequest) ([]T, bool) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 {
		page.PageSize = 20
	}

	start := (page.Page - 1) * page.PageSize
	if start >= len(all) {
		return nil, false
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], end < len(all)
}
