package event

// Queue holds events raised during one frame for delivery at the start of
// the next. It is owned by the game loop and not safe for concurrent use.
type Queue struct {
	pending []Event
}

// Post appends an event for the next Drain
func (q *Queue) Post(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns queued events in post order and empties the queue
func (q *Queue) Drain() []Event {
	events := q.pending
	q.pending = nil
	return events
}

// Len returns the number of queued events
func (q *Queue) Len() int {
	return len(q.pending)
}

// Clear drops every queued event
func (q *Queue) Clear() {
	q.pending = nil
}
