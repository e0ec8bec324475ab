package core

import (
	"slices"

	"github.com/go-drift/counter/pkg/errors"
)

// Host is implemented by every state that embeds StateBase, so hooks can
// take the state itself:
//
//	s.count = counter.Use(s, 5)
type Host interface {
	base() *StateBase
}

func (s *StateBase) base() *StateBase { return s }

// StateBase implements State with no-op lifecycle methods, SetState and
// disposal. Embed it and override what the state needs:
//
//	type counterState struct {
//	    core.StateBase
//	    count *counter.Counter
//	}
//
// StateBase is NOT thread-safe. Use Session.Dispatch from the engine
// package to reach it from another goroutine.
type StateBase struct {
	element   *StatefulElement
	disposers []registration
	nextID    int
	disposed  bool
}

// SetElement links the state to its element. The framework calls it
// before InitState.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element hosting this state, or nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState runs fn and schedules a rebuild. After disposal it does nothing,
// so late notifications from a counter are harmless.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers cleanup to run when the state is disposed and returns
// a function that unregisters it. On an already disposed state cleanup runs
// immediately.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if s.disposed {
		runDisposer(cleanup)
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.disposers = append(s.disposers, registration{id: id, fn: cleanup})
	return func() {
		s.disposers = slices.DeleteFunc(s.disposers, func(r registration) bool {
			return r.id == id
		})
	}
}

// RunDisposers runs the registered cleanups newest first, once. A cleanup
// that panics is reported and the remaining ones still run.
func (s *StateBase) RunDisposers() {
	if s.disposed {
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	for i := len(disposers) - 1; i >= 0; i-- {
		runDisposer(disposers[i].fn)
	}
}

func runDisposer(cleanup func()) {
	defer errors.Recover("core.Dispose")
	cleanup()
}

// Dispose runs the registered cleanups. States that override Dispose must
// call s.StateBase.Dispose().
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState does nothing.
func (s *StateBase) InitState() {}

// Build returns nil.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidChangeDependencies does nothing.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget does nothing.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// IsDisposed reports whether Dispose has run.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}
