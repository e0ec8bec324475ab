package testing

import (
	"testing"

	"github.com/go-drift/counter/pkg/testing/internal/testbed"
	"github.com/go-drift/counter/pkg/widgets"
)

func TestNewWidgetTester_Empty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if tester.RootElement() != nil || tester.RootRenderObject() != nil {
		t.Fatal("expected nothing mounted before PumpWidget")
	}
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump on empty tester: %v", err)
	}
	if tester.Find(ByText("count: 0")).Exists() {
		t.Fatal("expected empty tester to find nothing")
	}
}

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	err := tester.PumpWidget(widgets.Text{Content: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
	if tester.RootRenderObject() == nil {
		t.Fatal("expected root render object after PumpWidget")
	}
	if tester.PaintCount() != 1 {
		t.Errorf("expected 1 paint, got %d", tester.PaintCount())
	}
}

func TestPumpWidget_Remount(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.PumpWidget(widgets.Text{Content: "second"})
	second := tester.RootElement()

	if first == second {
		t.Error("expected new root element after remount")
	}
}

func TestPumpWidget_NilWidget(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(nil); err == nil {
		t.Fatal("expected error for nil widget")
	}
}

func TestTap_RebuildsOnPump(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	var changes []int
	tester.PumpWidget(testbed.Counter{Initial: 5, OnChange: func(n int) { changes = append(changes, n) }})

	if err := tester.Tap(ByLabel("increment")); err != nil {
		t.Fatal(err)
	}
	if !tester.Find(ByText("count: 5")).Exists() {
		t.Error("expected text to stay stale until Pump")
	}
	if !tester.NeedsPump() {
		t.Error("expected pending work after tap")
	}

	tester.Pump()
	if !tester.Find(ByText("count: 6")).Exists() {
		t.Error("expected 'count: 6' after Pump")
	}
	if tester.PaintCount() != 2 {
		t.Errorf("expected 2 paints, got %d", tester.PaintCount())
	}
	if len(changes) != 1 || changes[0] != 6 {
		t.Errorf("expected OnChange(6), got %v", changes)
	}
}

func TestTap_Errors(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.ColumnOf(
		widgets.Text{Content: "label"},
		widgets.ButtonOf("off", func() {}).WithDisabled(true),
	))

	tests := []struct {
		name   string
		finder Finder
	}{
		{"no match", ByLabel("missing")},
		{"not tappable", ByText("label")},
		{"disabled", ByLabel("off")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tester.Tap(tt.finder); err == nil {
				t.Errorf("expected Tap(%s) to fail", tt.finder.Description())
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "test"})

	called := false
	tester.Dispatch(func() { called = true })

	if called {
		t.Error("dispatch should not run until Pump")
	}

	tester.Pump()

	if !called {
		t.Error("dispatch should have run after Pump")
	}
}
