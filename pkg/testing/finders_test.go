package testing

import (
	"testing"

	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/layout"
	"github.com/go-drift/counter/pkg/testing/internal/testbed"
	"github.com/go-drift/counter/pkg/widgets"
)

func TestByType(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 0})

	result := tester.Find(ByType[widgets.Text]())
	if !result.Exists() {
		t.Fatal("expected to find Text widget")
	}
	text := result.Widget().(widgets.Text)
	if text.Content != "count: 0" {
		t.Errorf("expected text 'count: 0', got %q", text.Content)
	}
	if got := tester.Find(ByType[widgets.Button]()).Count(); got != 2 {
		t.Errorf("expected 2 buttons, got %d", got)
	}
}

func TestByText(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 42})

	if !tester.Find(ByText("count: 42")).Exists() {
		t.Error("expected to find text 'count: 42'")
	}
	if tester.Find(ByText("count: 99")).Exists() {
		t.Error("should not find text 'count: 99'")
	}
}

func TestByTextContaining(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: -123})

	if !tester.Find(ByTextContaining("-12")).Exists() {
		t.Error("expected to find text containing '-12'")
	}
	if tester.Find(ByTextContaining("99")).Exists() {
		t.Error("should not find text containing '99'")
	}
}

func TestByLabel(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 0})

	result := tester.Find(ByLabel("decrement"))
	if !result.Exists() {
		t.Fatal("expected to find decrement button")
	}
	button, ok := result.RenderObject().(*layout.RenderButton)
	if !ok {
		t.Fatalf("expected *layout.RenderButton, got %T", result.RenderObject())
	}
	if button.Label() != "decrement" {
		t.Errorf("expected label 'decrement', got %q", button.Label())
	}
}

func TestByType_Counter(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 5})

	result := tester.Find(ByType[testbed.Counter]())
	if !result.Exists() {
		t.Fatal("expected to find Counter widget")
	}
	if _, ok := result.RenderObject().(*layout.RenderFlex); !ok {
		t.Errorf("expected Counter to render a flex, got %T", result.RenderObject())
	}
}

func TestFinderResult_FirstOrNil(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "hello"})

	if tester.Find(ByText("hello")).FirstOrNil() == nil {
		t.Error("FirstOrNil should return element for existing text")
	}
	if tester.Find(ByText("missing")).FirstOrNil() != nil {
		t.Error("FirstOrNil should return nil for missing text")
	}
}

func TestFinderResult_First_PanicsOnEmpty(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "hello"})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected First() to panic on empty result")
		}
	}()
	tester.Find(ByText("missing")).First()
}

func TestFinderResult_At(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 0})

	buttons := tester.Find(ByType[widgets.Button]())
	if got := buttons.At(1).Widget().(widgets.Button).Label; got != "decrement" {
		t.Errorf("expected second button 'decrement', got %q", got)
	}
	if len(buttons.All()) != buttons.Count() {
		t.Error("All and Count disagree")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected At() to panic out of range")
		}
	}()
	buttons.At(2)
}

func TestByPredicate(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 7})

	result := tester.Find(ByPredicate(func(e core.Element) bool {
		if tw, ok := e.Widget().(widgets.Text); ok {
			return tw.Content == "count: 7"
		}
		return false
	}))
	if !result.Exists() {
		t.Error("expected predicate to find text 'count: 7'")
	}
}

func TestDescendant(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(testbed.Counter{Initial: 0})

	result := tester.Find(Descendant(
		ByType[widgets.Row](),
		ByType[widgets.Button](),
	))
	if result.Count() != 2 {
		t.Errorf("expected 2 buttons under the row, got %d", result.Count())
	}
	if tester.Find(Descendant(ByType[widgets.Row](), ByType[widgets.Text]())).Exists() {
		t.Error("text is not inside the row")
	}
}
