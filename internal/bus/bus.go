// Package bus implements the in-process change notification protocol
// between the content stores and their consumers. Signals carry no
// payload; subscribers re-fetch full state from the owning store. A signal
// published while a topic has no subscribers is simply lost.
package bus

import "sync"

// Topic names one notification channel. The three content families use
// independent channels with no cross-topic ordering guarantee.
type Topic string

const (
	TopicAnnouncements Topic = "announcements-changed"
	TopicEvents        Topic = "events-changed"
	TopicStaff         Topic = "staff-changed"
)

// Handler reacts to a change signal. Delivery is synchronous on the
// publisher's goroutine, so handlers must be quick and must not publish
// back onto the same topic.
type Handler func()

// Subscription is the unsubscribe handle returned by Subscribe.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    int
	once  sync.Once
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.bus.remove(s.topic, s.id)
	})
}

// Bus is a typed publish/subscribe object shared by reference between the
// stores and every subscribing component.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]Handler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic]map[int]Handler)}
}

// Subscribe registers a handler for the topic and returns its handle.
func (b *Bus) Subscribe(topic Topic, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	b.subs[topic][id] = fn
	return &Subscription{bus: b, topic: topic, id: id}
}

// Publish delivers the signal to every current subscriber of the topic.
func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn()
	}
}

func (b *Bus) remove(topic Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if handlers, ok := b.subs[topic]; ok {
		delete(handlers, id)
	}
}
