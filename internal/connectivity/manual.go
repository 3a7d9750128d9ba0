package connectivity

import "sync"

// Manual is a Monitor whose state is flipped by the caller. The mobile hosts
// use it to feed the platform reachability callback into the engine; tests
// use it to script connectivity scenarios.
type Manual struct {
	mu        sync.Mutex
	connected bool
	subs      []chan bool
}

var _ Monitor = (*Manual)(nil)

// NewManual constructs a Manual monitor with the given initial state.
func NewManual(connected bool) *Manual {
	return &Manual{connected: connected}
}

// IsConnected implements [Monitor].
func (m *Manual) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// Changes implements [Monitor].
func (m *Manual) Changes() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Set updates the state and publishes the edge to subscribers when it
// actually changed (distinct-until-changed, like the HTTP monitor).
func (m *Manual) Set(connected bool) {
	m.mu.Lock()
	if m.connected == connected {
		m.mu.Unlock()
		return
	}
	m.connected = connected
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
