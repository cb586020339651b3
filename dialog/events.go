package dialog

// Event is a lifecycle notification emitted by a Dialog.
type Event int

const (
	// EventShown fires when a hidden dialog becomes visible.
	EventShown Event = iota
	// EventLabelReached fires when a visible dialog moves to a labeled
	// screen. Query CurrentLabel to learn which one.
	EventLabelReached
	// EventHidden fires whenever the dialog is hidden, including when an
	// end screen is reached.
	EventHidden
)

func (e Event) String() string {
	switch e {
	case EventShown:
		return "shown"
	case EventLabelReached:
		return "labelReached"
	case EventHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Listener receives dialog events synchronously, after the dialog state has
// settled. Listeners may call back into the dialog; events raised by such a
// call are delivered to all listeners after the current one, so every
// listener sees the same order. Dialog.EventLabel reports the label current
// when the delivered event fired.
type Listener interface {
	OnDialogEvent(d *Dialog, ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(d *Dialog, ev Event)

func (f ListenerFunc) OnDialogEvent(d *Dialog, ev Event) {
	f(d, ev)
}

// Notification is a queued event together with the label that was current
// when it fired.
type Notification struct {
	Event Event
	Label string
}

// EventQueue is a FIFO listener for hosts that prefer polling.
type EventQueue struct {
	items []Notification
}

// OnDialogEvent records the event.
func (q *EventQueue) OnDialogEvent(d *Dialog, ev Event) {
	q.Push(Notification{Event: ev, Label: d.EventLabel()})
}

// Push adds a notification.
func (q *EventQueue) Push(n Notification) {
	if q == nil {
		return
	}
	q.items = append(q.items, n)
}

// Drain returns all notifications and clears the queue.
func (q *EventQueue) Drain() []Notification {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
