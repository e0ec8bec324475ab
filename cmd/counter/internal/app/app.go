// Package app holds the counter application widget.
package app

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/counter"
	"github.com/go-drift/counter/pkg/widgets"
)

// CounterApp shows "count: N" above an increment and a decrement button.
type CounterApp struct {
	core.StatefulBase
	// Start is the initial counter value.
	Start int
	// IncrementLabel and DecrementLabel name the two buttons. Empty labels
	// fall back to "increment" and "decrement".
	IncrementLabel string
	DecrementLabel string
	// Locale is a BCP 47 tag used to format the value. Empty formats with
	// plain digits.
	Locale string
}

func (a CounterApp) CreateState() core.State {
	return &counterAppState{}
}

// Labels returns the effective button labels.
func (a CounterApp) Labels() (increment, decrement string) {
	increment, decrement = a.IncrementLabel, a.DecrementLabel
	if increment == "" {
		increment = "increment"
	}
	if decrement == "" {
		decrement = "decrement"
	}
	return increment, decrement
}

type counterAppState struct {
	core.StateBase
	count  *counter.Counter
	format func(int) string
}

func (s *counterAppState) InitState() {
	w := s.Element().Widget().(CounterApp)
	s.count = counter.Use(s, w.Start)
	s.format = numberFormatter(w.Locale)
}

func (s *counterAppState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.Element().Widget().(CounterApp)
	if old, ok := oldWidget.(CounterApp); !ok || old.Locale != w.Locale {
		s.format = numberFormatter(w.Locale)
	}
}

func (s *counterAppState) Build(ctx core.BuildContext) core.Widget {
	w := ctx.Widget().(CounterApp)
	value, increment, decrement := counter.Bind(s.count)
	incLabel, decLabel := w.Labels()
	return widgets.ColumnOf(
		widgets.Text{Content: "count: " + s.format(value)},
		widgets.RowOf(
			widgets.ButtonOf(incLabel, increment),
			widgets.ButtonOf(decLabel, decrement),
		),
	)
}

// Counter returns the counter owned by the mounted app, for callers that
// drive it directly.
func Counter(root core.Element) *counter.Counter {
	se, ok := root.(*core.StatefulElement)
	if !ok {
		return nil
	}
	if st, ok := se.State().(*counterAppState); ok {
		return st.count
	}
	return nil
}

func numberFormatter(locale string) func(int) string {
	if locale == "" {
		return strconv.Itoa
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return strconv.Itoa
	}
	p := message.NewPrinter(tag)
	return func(n int) string {
		return p.Sprintf("%d", n)
	}
}
