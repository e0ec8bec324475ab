package core

// UseController creates a controller and disposes it together with the
// state. Call it from InitState:
//
//	func (s *myState) InitState() {
//	    s.count = core.UseController(s, func() *counter.Counter {
//	        return counter.New(5)
//	    })
//	}
func UseController[C Disposable](s Host, create func() C) C {
	controller := create()
	s.base().OnDispose(controller.Dispose)
	return controller
}

// UseListenable rebuilds the state whenever listenable notifies. The
// subscription ends when the state is disposed.
func UseListenable(s Host, listenable Listenable) {
	base := s.base()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}
