// Package core provides the widget and element framework the counter shell
// is built on.
//
// Widgets are immutable descriptions of the UI. Elements instantiate them in
// a tree, keep state across rebuilds and own the render objects that
// renderers draw.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct
// and StatefulBase in the widget:
//
//	type Counter struct {
//	    core.StatefulBase
//	    Start int
//	}
//
//	func (Counter) CreateState() core.State { return &counterState{} }
//
//	type counterState struct {
//	    core.StateBase
//	    count *counter.Counter
//	}
//
//	func (s *counterState) InitState() {
//	    start := s.Element().Widget().(Counter).Start
//	    s.count = counter.Use(s, start)
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("count: %d", s.count.Value())}
//	}
//
// # Rebuilds
//
// SetState marks the owning element dirty with its BuildOwner. The shell
// calls BuildOwner.FlushBuild once per frame, which rebuilds dirty elements
// parent-first; changed render objects then schedule a paint on the
// pipeline.
//
// # Hooks
//
// UseController and UseListenable tie controllers and subscriptions to a
// state's lifetime. Both take a [Host], which any state embedding StateBase
// satisfies. counter.Use is built from the two.
package core
