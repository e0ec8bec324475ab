package counter

import "github.com/go-drift/counter/pkg/core"

// Counter holds one integer and notifies listeners after every mutation.
//
// Counter is NOT thread-safe. Like the rest of the widget state it must only
// be touched from the UI thread; use engine.Dispatch to mutate it from a
// background goroutine.
type Counter struct {
	value     int
	listeners core.Notifier
}

// New creates a counter starting at start. Any int is accepted.
func New(start int) *Counter {
	return &Counter{value: start}
}

// Value returns the current value.
func (c *Counter) Value() int {
	return c.value
}

// Increment adds one and notifies listeners.
func (c *Counter) Increment() {
	c.value++
	c.listeners.Notify()
}

// Decrement subtracts one and notifies listeners.
func (c *Counter) Decrement() {
	c.value--
	c.listeners.Notify()
}

// AddListener registers fn to be called after each change, in registration
// order. The returned function removes the listener; calling it more than
// once is a no-op.
func (c *Counter) AddListener(fn func()) func() {
	return c.listeners.AddListener(fn)
}

// ListenerCount returns the number of registered listeners.
func (c *Counter) ListenerCount() int {
	return c.listeners.ListenerCount()
}

// Dispose drops every listener. The counter stays usable afterwards.
func (c *Counter) Dispose() {
	c.listeners.Dispose()
}
