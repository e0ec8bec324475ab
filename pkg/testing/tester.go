package testing

import (
	"testing"

	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/engine"
	"github.com/go-drift/counter/pkg/layout"
)

// WidgetTester drives a widget tree through the same engine session the CLI
// uses, without a paint handler. Frames only run when Pump is called.
type WidgetTester struct {
	session    *engine.Session
	dispatches []func()
	paints     int
}

// NewWidgetTester creates a tester with nothing mounted.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree, disposing every state.
func (t *WidgetTester) Cleanup() {
	if t.session != nil {
		t.session.Close()
		t.session = nil
	}
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.Cleanup()
	t.paints = 0

	session, err := engine.NewSession(widget, engine.WithPaintHandler(func(layout.RenderObject) error {
		t.paints++
		return nil
	}))
	if err != nil {
		return err
	}
	t.session = session
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, build and paint.
func (t *WidgetTester) Pump() error {
	if t.session == nil {
		return nil
	}
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		t.session.Dispatch(fn)
	}
	_, err := t.session.Frame()
	return err
}

// NeedsPump reports whether a Pump would do any work.
func (t *WidgetTester) NeedsPump() bool {
	return len(t.dispatches) > 0 || (t.session != nil && t.session.NeedsFrame())
}

// Dispatch queues a callback for the next Pump, mirroring Session.Dispatch.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// PaintCount returns how many frames painted since the last PumpWidget
// call, the initial frame included.
func (t *WidgetTester) PaintCount() int {
	return t.paints
}

// Session returns the underlying engine session, or nil before PumpWidget.
func (t *WidgetTester) Session() *engine.Session {
	return t.session
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	if t.session == nil {
		return nil
	}
	return t.session.Root()
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	if t.session == nil {
		return nil
	}
	return t.session.RenderRoot()
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	root := t.RootElement()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(root),
		finder:   finder,
	}
}
