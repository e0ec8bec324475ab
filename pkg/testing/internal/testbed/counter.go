// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/counter"
	"github.com/go-drift/counter/pkg/widgets"
)

// Counter is a stateful widget that shows "count: N" above an increment
// and a decrement button.
type Counter struct {
	core.StatefulBase
	Initial int
	// OnChange is called with the new value after every change.
	OnChange func(count int)
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count    *counter.Counter
	onChange func(int)
}

func (s *counterState) InitState() {
	w := s.Element().Widget().(Counter)
	s.onChange = w.OnChange
	s.count = counter.Use(s, w.Initial)
	s.OnDispose(s.count.AddListener(func() {
		if s.onChange != nil {
			s.onChange(s.count.Value())
		}
	}))
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	value, increment, decrement := counter.Bind(s.count)
	return widgets.ColumnOf(
		widgets.Text{Content: "count: " + strconv.Itoa(value)},
		widgets.RowOf(
			widgets.ButtonOf("increment", increment),
			widgets.ButtonOf("decrement", decrement),
		),
	)
}

func (s *counterState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(Counter); ok {
		s.onChange = w.OnChange
	}
}
