package events

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener reacts to tracker events. Lower priorities run first.
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus hands tracker events to the listeners subscribed to their type.
//
// Listeners of one type run in priority order, ties in subscription order.
// A failing listener does not stop the ones after it; only Cancel does.
type Bus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe registers listener for eventType. Subscribing the same listener
// ID twice replaces the earlier registration.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := without(b.listeners[eventType], listener.ID())
	at := sort.Search(len(current), func(i int) bool {
		return current[i].Priority() > listener.Priority()
	})
	current = append(current, nil)
	copy(current[at+1:], current[at:])
	current[at] = listener
	b.listeners[eventType] = current

	log.Printf("[EVENTS] %s listens to %s (priority %d)", listener.ID(), eventType, listener.Priority())
}

// SubscribeAll registers listener for several event types
func (b *Bus) SubscribeAll(listener EventListener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, listener)
	}
}

func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventType] = without(b.listeners[eventType], listenerID)
}

// Emit delivers event to its listeners and joins their errors
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := append([]EventListener(nil), b.listeners[event.GetType()]...)
	b.mu.RUnlock()

	var errs []error
	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("[EVENTS] %s for encounter %s cancelled before %s", event.GetType(), event.GetEncounterID(), listener.ID())
			break
		}
		if err := listener.HandleEvent(event); err != nil {
			errs = append(errs, fmt.Errorf("listener %s failed: %w", listener.ID(), err))
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// without returns listeners minus the one with id, keeping order
func without(listeners []EventListener, id string) []EventListener {
	out := make([]EventListener, 0, len(listeners))
	for _, l := range listeners {
		if l.ID() != id {
			out = append(out, l)
		}
	}
	return out
}
