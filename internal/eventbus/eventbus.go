package eventbus

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type EventType string

type Event struct {
	Type      EventType
	Timestamp time.Time
	Data      any
}

func NewEvent(eventType EventType, data any) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

type Handler func(Event)

// Bus is a synchronous in-process event dispatcher. Handlers run sequentially
// during Publish, in registration order.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]Handler
}

func New() *Bus {
	return &Bus{subscribers: make(map[EventType][]Handler)}
}

func (b *Bus) Subscribe(eventType EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], h)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.subscribers[e.Type]))
	copy(handlers, b.subscribers[e.Type])
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("event bus: handler panic for event %s: %v", e.Type, r)
				}
			}()
			h(e)
		}()
	}
}
