package event_bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType is an identifier for events.
type EventType string

// Event is the generic envelope used by the bus. Data is kept as any to allow
// different payload types on the same bus.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

// NewEvent creates a new Event with the given context, type, and data.
// The timestamp is set to the current time automatically.
func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{
		ctx:       ctx,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// Context returns the context associated with this event.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type handler func(Event) error

// EventBus is a concurrency-safe synchronous event dispatcher.
// All handlers are executed sequentially during Publish.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType][]handler
}

// NewEventBus creates an empty EventBus.
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType][]handler),
	}
}

// Subscribe registers a handler for the given eventType. Handlers should
// return an error if they fail to process the event.
func (eb *EventBus) Subscribe(eventType EventType, h func(Event) error) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler(h))
}

// Publish sends the event to all handlers registered for event.Type
// synchronously, in registration order. Handler errors are logged and
// collected; panics in handlers are recovered and treated as errors.
func (eb *EventBus) Publish(e Event) error {
	eb.mu.RLock()
	handlers := make([]handler, len(eb.subscribers[e.Type]))
	copy(handlers, eb.subscribers[e.Type])
	eb.mu.RUnlock()

	var failed int
	for _, h := range handlers {
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("handler panic for event %s: %v", e.Type, r)
				}
			}()
			return h(e)
		}()
		if err != nil {
			log.Errorf("EventBus: handler error for event %s: %v", e.Type, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("event %s: %d handler(s) failed", e.Type, failed)
	}
	return nil
}
