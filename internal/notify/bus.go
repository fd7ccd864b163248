// Package notify is the in-process notification bus the services publish to after a successful write.
package notify

import (
	"context"
	"sync"

	"eventmanager/internal/domain"
)

// Listener handles one notification. A returned error stops delivery to later listeners.
type Listener func(ctx context.Context, topic domain.Topic, payload any) error

// Bus is a synchronous publish/subscribe registry. Subscriptions are expected to happen at startup, before
// the first Notify.
type Bus struct {
	mu        sync.RWMutex
	listeners map[domain.Topic][]Listener
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[domain.Topic][]Listener)}
}

// Subscribe appends l to the listeners of topic.
func (b *Bus) Subscribe(topic domain.Topic, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[topic] = append(b.listeners[topic], l)
}

// SubscribeAll appends l to every known topic.
func (b *Bus) SubscribeAll(l Listener) {
	for _, topic := range domain.AllTopics {
		b.Subscribe(topic, l)
	}
}

// Notify calls the listeners of topic in subscription order and returns the first error.
func (b *Bus) Notify(ctx context.Context, topic domain.Topic, payload any) error {
	b.mu.RLock()
	listeners := b.listeners[topic]
	b.mu.RUnlock()

	for _, l := range listeners {
		if err := l(ctx, topic, payload); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.Notifier = (*Bus)(nil)
