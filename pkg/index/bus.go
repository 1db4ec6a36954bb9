package index

import (
	"sync"
	"sync/atomic"
)

// Token identifies a bus subscription so it can be released.
type Token struct {
	event string
	id    uint64
}

// Bus is a named-event subscription channel. Subscribing returns a
// Token; publishing notifies every current subscriber of that event.
// Callbacks run on the publisher's goroutine; in a running application
// publishes happen on the session event loop, so callbacks observe a
// serialized sequence of events.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]func(payload any)
	nextID atomic.Uint64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[uint64]func(any)),
	}
}

// Subscribe registers a callback for the named event and returns a
// Token for Unsubscribe.
func (b *Bus) Subscribe(event string, fn func(payload any)) Token {
	id := b.nextID.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[event] == nil {
		b.subs[event] = make(map[uint64]func(any))
	}
	b.subs[event][id] = fn

	return Token{event: event, id: id}
}

// Unsubscribe releases a subscription. Releasing an already-released
// or zero token is a no-op.
func (b *Bus) Unsubscribe(t Token) {
	if t.id == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if subs := b.subs[t.event]; subs != nil {
		delete(subs, t.id)
		if len(subs) == 0 {
			delete(b.subs, t.event)
		}
	}
}

// Publish notifies all subscribers of the event. The subscriber set is
// copied before invocation so callbacks may subscribe or unsubscribe
// without deadlocking.
func (b *Bus) Publish(event string, payload any) {
	b.mu.RLock()
	subs := make([]func(any), 0, len(b.subs[event]))
	for _, fn := range b.subs[event] {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(payload)
	}
}

// SubscriberCount returns the number of live subscriptions for an event.
func (b *Bus) SubscriberCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[event])
}
