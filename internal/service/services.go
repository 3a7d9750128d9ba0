package service

import (
	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
)

// Gateways bundles the server boundary the services depend on.
type Gateways struct {
	Albums adapter.AlbumGateway
	Memory adapter.MemoryGateway
	User   adapter.UserGateway
	Auth   adapter.AuthGateway
}

// Services wires the full engine: queue service, form use cases, read-path
// use cases, auth, and the background sync job.
type Services struct {
	Engine       SyncQueueService
	AlbumForms   AlbumFormService
	MemoryForms  MemoryFormService
	ProfileForms ProfileFormService
	AlbumList    AlbumListService
	MemoryList   MemoryListService
	Profile      ProfileService
	Auth         AuthService
	Job          SyncJob
}

// NewServices constructs every service over the shared storages, gateways
// and connectivity monitor.
func NewServices(storages *store.Storages, gateways Gateways, monitor connectivity.Monitor, pageSize int, log *logger.Logger) *Services {
	engine := NewSyncQueueService(
		storages.Queue,
		storages.Albums,
		storages.Memories,
		storages.Users,
		storages.Images,
		gateways.Albums,
		gateways.Memory,
		gateways.User,
		monitor,
		log,
	)

	return &Services{
		Engine:       engine,
		AlbumForms:   NewAlbumFormService(storages.Albums, storages.Images, engine, monitor, log),
		MemoryForms:  NewMemoryFormService(storages.Memories, storages.Albums, storages.Images, engine, monitor, log),
		ProfileForms: NewProfileFormService(storages.Users, storages.Images, engine, monitor, log),
		AlbumList:    NewAlbumListService(storages.Albums, gateways.Albums, monitor, pageSize, log),
		MemoryList:   NewMemoryListService(storages.Memories, storages.Albums, gateways.Memory, monitor, pageSize, log),
		Profile:      NewProfileService(storages.Users, gateways.User, monitor, log),
		Auth:         NewAuthService(storages.Users, gateways.Auth, gateways.User, log),
		Job:          NewSyncJob(engine, monitor, log),
	}
}
