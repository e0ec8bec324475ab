package core

// Notifier keeps an ordered list of listeners and calls them on Notify.
// The zero value is ready to use.
//
// Notifier is NOT thread-safe. Like widget state it belongs to the UI
// thread.
type Notifier struct {
	listeners []registration
	nextID    int
}

type registration struct {
	id int
	fn func()
}

// NewNotifier creates a Notifier with no listeners.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers listener and returns a function that removes it.
// Removing twice is a no-op.
func (n *Notifier) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, registration{id: id, fn: listener})
	return func() {
		for i, r := range n.listeners {
			if r.id == id {
				// Full slice expression so a Notify in progress keeps its copy.
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every listener in registration order. Listeners added or
// removed during the call take effect from the next Notify.
func (n *Notifier) Notify() {
	if len(n.listeners) == 0 {
		return
	}
	pending := make([]registration, len(n.listeners))
	copy(pending, n.listeners)
	for _, r := range pending {
		r.fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}

// Dispose removes all listeners. The Notifier can be reused afterwards.
func (n *Notifier) Dispose() {
	n.listeners = nil
}
