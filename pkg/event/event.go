// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/woosh/pkg/entity"
)

// Type represents the type of event
type Type string

// Game event types
const (
	MatchStarted    Type = "match_started"
	MatchEnded      Type = "match_ended"
	ProjectileFired Type = "projectile_fired"
	ShipHit         Type = "ship_hit"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription struct {
	eventType Type
	id        uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: b.nextID, handler: handler})
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes a previously registered handler
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.eventType]
	for i, reg := range regs {
		if reg.id == sub.id {
			b.handlers[sub.eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, reg := range regs {
		reg.handler(event)
	}
}

// ShipEvent reports something that happened to one ship
type ShipEvent struct {
	BaseEvent
	Side   entity.Side
	Health int
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source interface{}, side entity.Side, health int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Side:   side,
		Health: health,
	}
}

// MatchEvent reports the start or end of a match
type MatchEvent struct {
	BaseEvent
	MatchID string
	Winner  entity.Side
	// Decided is false for MatchStarted
	Decided bool
	Frames  uint64
}

// NewMatchStartedEvent creates a MatchStarted event
func NewMatchStartedEvent(source interface{}, matchID string) *MatchEvent {
	return &MatchEvent{
		BaseEvent: BaseEvent{EventType: MatchStarted, Source: source},
		MatchID:   matchID,
	}
}

// NewMatchEndedEvent creates a MatchEnded event
func NewMatchEndedEvent(source interface{}, matchID string, winner entity.Side, frames uint64) *MatchEvent {
	return &MatchEvent{
		BaseEvent: BaseEvent{EventType: MatchEnded, Source: source},
		MatchID:   matchID,
		Winner:    winner,
		Decided:   true,
		Frames:    frames,
	}
}
