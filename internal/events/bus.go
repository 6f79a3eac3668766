// Package events provides the in-process change-notification bus. Writers
// publish after a successful commit; dashboard-facing consumers register
// typed callbacks and reload from storage on their own.
package events

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Topic string

const (
	TopicInvoicesChanged Topic = "invoices.changed"
	TopicClientsChanged  Topic = "clients.changed"
)

// Event carries no payload beyond the topic and publish time; subscribers
// re-query durable storage rather than trusting a snapshot.
type Event struct {
	Topic Topic
	At    time.Time
}

type Handler func(Event)

// Bus is a synchronous fan-out registry. Handlers run on the publisher's
// goroutine and must not block.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[Topic]map[int]Handler
	log  *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{
		subs: make(map[Topic]map[int]Handler),
		log:  log.Named("events.bus"),
	}
}

// Subscription cancels a registered handler.
type Subscription struct {
	cancel func()
	once   sync.Once
}

func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.next
	b.next++
	b.subs[topic][id] = fn

	return &Subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}}
}

// Publish notifies all subscribers of the topic.
func (b *Bus) Publish(topic Topic) {
	event := Event{Topic: topic, At: time.Now().UTC()}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}

	b.log.Debug("event published",
		zap.String("topic", string(topic)),
		zap.Int("subscribers", len(handlers)),
	)
}
