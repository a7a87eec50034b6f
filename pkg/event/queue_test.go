package event

import (
	"testing"

	"github.com/opd-ai/woosh/pkg/entity"
)

func TestQueue_DrainReturnsPostOrder(t *testing.T) {
	var q Queue

	q.Post(NewShipEvent(ShipHit, nil, entity.Right, 9))
	q.Post(NewShipEvent(ShipHit, nil, entity.Left, 9))

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("Drain() returned %d events, want 2", len(events))
	}
	if events[0].(*ShipEvent).Side != entity.Right || events[1].(*ShipEvent).Side != entity.Left {
		t.Error("Drain() did not preserve post order")
	}
	if q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}
	if len(q.Drain()) != 0 {
		t.Error("second Drain should return nothing")
	}
}

func TestQueue_Clear(t *testing.T) {
	var q Queue
	q.Post(&BaseEvent{EventType: ShipHit})
	q.Clear()

	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", q.Len())
	}
}
