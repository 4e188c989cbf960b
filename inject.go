package pasture

// EventQueue is a FIFO of synthetic input events. The ebiten driver and
// ScriptBackend feed it and drain it once per frame, exactly like events from
// the host window.
type EventQueue struct {
	events []Event
}

// Push appends ev to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// InjectKey queues a key-down event for k.
func (q *EventQueue) InjectKey(k Key) {
	q.Push(KeyDownEvent(k))
}

// InjectQuit queues a window-close event.
func (q *EventQueue) InjectQuit() {
	q.Push(QuitEvent())
}

// Pop removes and returns the oldest event, or false when the queue is empty.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops every queued event.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
