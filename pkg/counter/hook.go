package counter

import "github.com/go-drift/counter/pkg/core"

// Use creates a counter owned by the given state. Every change schedules a
// rebuild of the state, and the counter is disposed together with it.
//
// Call Use once, from InitState:
//
//	type counterState struct {
//	    core.StateBase
//	    count *counter.Counter
//	}
//
//	func (s *counterState) InitState() {
//	    s.count = counter.Use(s, 5)
//	}
func Use(s core.Host, start int) *Counter {
	c := core.UseController(s, func() *Counter { return New(start) })
	core.UseListenable(s, c)
	return c
}

// Bind returns the current value together with the two mutators, ready to
// be handed to buttons in Build.
func Bind(c *Counter) (value int, increment, decrement func()) {
	return c.Value(), c.Increment, c.Decrement
}
