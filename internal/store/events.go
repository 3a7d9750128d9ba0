package store

import "sync"

// ChangeKind tags repository change events.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "CREATED"
	ChangeUpdated ChangeKind = "UPDATED"
	ChangeDeleted ChangeKind = "DELETED"
)

// Change is one repository mutation, carrying the entity's state after the
// write. List and detail use cases splice these into the page they currently
// display instead of refetching.
type Change[T any] struct {
	Kind   ChangeKind
	Entity T
}

// broadcaster fans a repository's change events out to any number of
// subscribers. Publishing never blocks: a subscriber that stops draining its
// channel misses events rather than stalling a write.
type broadcaster[T any] struct {
	mu   sync.Mutex
	subs []chan T
}

func (b *broadcaster[T]) subscribe() <-chan T {
	ch := make(chan T, 16)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

func (b *broadcaster[T]) publish(v T) {
	b.mu.Lock()
	subs := make([]chan T, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- v:
		default:
		}
	}
}
