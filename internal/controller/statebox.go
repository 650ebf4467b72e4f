package controller

import "sync"

// StateBox holds the current immutable state snapshot and lets
// observers read it or subscribe to changes. Subscriptions are
// conflated: a slow reader sees the latest value, not every
// intermediate one.
type StateBox[S any] struct {
	mu     sync.Mutex
	value  S
	subs   map[int]chan S
	nextID int
}

func NewStateBox[S any](initial S) *StateBox[S] {
	return &StateBox[S]{
		value: initial,
		subs:  make(map[int]chan S),
	}
}

// Get returns the current snapshot.
func (b *StateBox[S]) Get() S {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Set replaces the snapshot and notifies subscribers.
func (b *StateBox[S]) Set(value S) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = value
	for _, ch := range b.subs {
		// Replace a pending value rather than block.
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}

// Subscribe returns a channel that carries the current value followed
// by every later change, and a cancel function that releases the
// subscription.
func (b *StateBox[S]) Subscribe() (<-chan S, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan S, 1)
	ch <- b.value
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
