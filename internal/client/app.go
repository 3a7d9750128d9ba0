// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package client

import (
	"context"
	"fmt"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/app"
	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/service"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/workers"
)

// listPageSize is the page size the read-path use cases request from the
// server and serve from cache.
const listPageSize = 20

// App is the assembled engine. The embedding host constructs it once, calls
// Start, talks to the services for the lifetime of the process, and calls
// Stop on the way out.
type App struct {
	Services *service.Services

	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.Storages
	monitor  *connectivity.HTTPMonitor
	group    *workers.Workers
}

// NewApp assembles the engine from the merged client configuration. The
// context bounds storage initialisation (migrations included); it is not
// retained.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger("photo-keeper-engine")
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("photo-keeper-engine", cfg.App.LogFile)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	gateways, err := adapter.NewHTTPGateways(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create gateways: %w", err)
	}

	monitor := connectivity.NewHTTPMonitor(cfg.API, log)

	svcs := service.NewServices(storages, service.Gateways{
		Albums: gateways,
		Memory: gateways,
		User:   gateways,
		Auth:   gateways,
	}, monitor, listPageSize, log)

	return &App{
		Services: svcs,
		cfg:      cfg,
		logger:   log,
		storages: storages,
		monitor:  monitor,
		group: workers.New(
			workers.WorkerFunc(svcs.AlbumList.Run),
			workers.WorkerFunc(svcs.MemoryList.Run),
		),
	}, nil
}

// Start launches the background runtime: the connectivity probe, the sync
// job (which also performs the launch-time drain) and the list event loops.
// It returns immediately; the loops run until ctx is cancelled or Stop is
// called.
func (a *App) Start(ctx context.Context) {
	a.monitor.Start(ctx)
	a.Services.Job.Start(ctx, a.cfg.Workers.SyncInterval)
	a.group.Run(ctx)

	a.logger.Info().Msg("engine started")
}

// Stop shuts the background runtime down and blocks until every loop has
// exited. Safe to call once after Start.
func (a *App) Stop() {
	a.Services.Job.Stop()
	a.group.Stop()
	a.monitor.Stop()

	a.logger.Info().Msg("engine stopped")
}

// UserMessage translates an error returned by any service into the short
// string the host should surface to the person holding the phone.
func (a *App) UserMessage(err error) string {
	return app.MessageFor(err)
}
