// pkg/event/event_test.go
package event

import (
	"testing"

	"github.com/opd-ai/woosh/pkg/entity"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
}

func TestBaseEvent_Accessors(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{"match started", MatchStarted, "game"},
		{"ship hit", ShipHit, 42},
		{"nil source", ProjectileFired, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEvent{EventType: tt.eventType, Source: tt.source}
			if e.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", e.GetType(), tt.eventType)
			}
			if e.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", e.GetSource(), tt.source)
			}
		})
	}
}

func TestBus_PublishReachesSubscribersInOrder(t *testing.T) {
	bus := NewEventBus()
	var calls []string

	bus.Subscribe(ShipHit, func(e Event) { calls = append(calls, "first") })
	bus.Subscribe(ShipHit, func(e Event) { calls = append(calls, "second") })
	bus.Subscribe(MatchEnded, func(e Event) { calls = append(calls, "wrong type") })

	bus.Publish(NewShipEvent(ShipHit, nil, entity.Right, 9))

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("handlers called = %v, want [first second]", calls)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	NewEventBus().Publish(&BaseEvent{EventType: MatchStarted})
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()
	var first, second int

	sub := bus.Subscribe(ProjectileFired, func(e Event) { first++ })
	bus.Subscribe(ProjectileFired, func(e Event) { second++ })

	bus.Publish(NewShipEvent(ProjectileFired, nil, entity.Left, 10))
	bus.Unsubscribe(sub)
	bus.Publish(NewShipEvent(ProjectileFired, nil, entity.Left, 10))

	if first != 1 {
		t.Errorf("unsubscribed handler called %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining handler called %d times, want 2", second)
	}

	// Unsubscribing twice is harmless.
	bus.Unsubscribe(sub)
}

func TestShipEvent(t *testing.T) {
	e := NewShipEvent(ShipHit, "game", entity.Left, 3)

	if e.GetType() != ShipHit {
		t.Errorf("type = %v, want %v", e.GetType(), ShipHit)
	}
	if e.Side != entity.Left || e.Health != 3 {
		t.Errorf("unexpected payload: %+v", e)
	}
}

func TestMatchEvents(t *testing.T) {
	started := NewMatchStartedEvent(nil, "abc")
	if started.GetType() != MatchStarted || started.Decided {
		t.Errorf("unexpected started event: %+v", started)
	}

	ended := NewMatchEndedEvent(nil, "abc", entity.Right, 120)
	if ended.GetType() != MatchEnded || !ended.Decided {
		t.Errorf("unexpected ended event: %+v", ended)
	}
	if ended.Winner != entity.Right || ended.Frames != 120 || ended.MatchID != "abc" {
		t.Errorf("unexpected ended payload: %+v", ended)
	}
}
