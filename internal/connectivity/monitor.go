// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package connectivity tracks reachability of the photo API backend.
//
// "Online" here means the API answers its health endpoint, not that the
// device has generic internet access — a captive portal or a backend outage
// both count as offline, which is exactly what the sync engine needs to know.
package connectivity

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
)

// Monitor exposes the current reachability snapshot plus an edge stream.
type Monitor interface {
	// IsConnected returns the last observed reachability state.
	IsConnected() bool

	// Changes returns a channel that receives the new state on every
	// transition (distinct-until-changed). Each call returns an independent
	// subscription. Slow consumers miss intermediate edges rather than block
	// the monitor.
	Changes() <-chan bool
}

// HTTPMonitor probes GET /api/health on a ticker and publishes transitions.
type HTTPMonitor struct {
	client   *resty.Client
	logger   *logger.Logger
	interval time.Duration

	connected atomic.Bool

	mu     sync.Mutex
	subs   []chan bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ Monitor = (*HTTPMonitor)(nil)

// NewHTTPMonitor constructs a monitor for the configured backend. The monitor
// is idle (and reports offline) until Start is called.
func NewHTTPMonitor(cfg config.API, log *logger.Logger) *HTTPMonitor {
	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout)

	return &HTTPMonitor{
		client:   cli,
		logger:   log,
		interval: cfg.HealthInterval,
	}
}

// Start probes immediately, then on every interval tick, until ctx is
// cancelled or Stop is called. A previously running probe loop is stopped
// first.
func (m *HTTPMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		m.observe(m.probe(loopCtx))

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.observe(m.probe(loopCtx))
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has exited. Safe to call
// when not running.
func (m *HTTPMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// IsConnected implements [Monitor].
func (m *HTTPMonitor) IsConnected() bool {
	return m.connected.Load()
}

// Changes implements [Monitor].
func (m *HTTPMonitor) Changes() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

func (m *HTTPMonitor) probe(ctx context.Context) bool {
	resp, err := m.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return false
	}
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// observe records the probe result and publishes only on transitions.
func (m *HTTPMonitor) observe(connected bool) {
	if m.connected.Swap(connected) == connected {
		return
	}

	m.logger.Info().Bool("connected", connected).Msg("connectivity changed")

	m.mu.Lock()
	subs := make([]chan bool, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- connected:
		default:
		}
	}
}
