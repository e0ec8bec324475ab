// Package counter provides the counter state container: a single integer
// with increment and decrement operations and change notification.
//
// A Counter is a plain observable value. It knows nothing about rendering;
// the presentation layer subscribes with AddListener and rebuilds when
// notified:
//
//	c := counter.New(5)
//	unsub := c.AddListener(func() {
//	    fmt.Println("count:", c.Value())
//	})
//	defer unsub()
//	c.Increment() // prints "count: 6"
//
// Inside a widget state, Use ties the counter to the state's lifetime and
// schedules a rebuild on every change:
//
//	func (s *myState) InitState() {
//	    s.count = counter.Use(s, 5)
//	}
//
// There are no bounds. Values may go negative, and overflow follows the
// host int representation.
package counter
