package widgets

import (
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/layout"
)

// Column stacks its children vertically.
type Column struct {
	core.RenderObjectBase
	// Children are the widgets to display, top to bottom.
	Children []core.Widget
	// Spacing is the gap between children, in cells.
	Spacing int
}

// ColumnOf creates a column with the given children.
func ColumnOf(children ...core.Widget) Column {
	return Column{Children: children}
}

func (c Column) ChildWidgets() []core.Widget { return c.Children }

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	return layout.NewRenderFlex(layout.AxisVertical, c.Spacing)
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	updateFlex(renderObject, layout.AxisVertical, c.Spacing)
}

// Row places its children left to right.
type Row struct {
	core.RenderObjectBase
	// Children are the widgets to display, left to right.
	Children []core.Widget
	// Spacing is the gap between children, in cells.
	Spacing int
}

// RowOf creates a row with the given children and a one cell gap.
func RowOf(children ...core.Widget) Row {
	return Row{Children: children, Spacing: 1}
}

func (r Row) ChildWidgets() []core.Widget { return r.Children }

func (r Row) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	return layout.NewRenderFlex(layout.AxisHorizontal, r.Spacing)
}

func (r Row) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	updateFlex(renderObject, layout.AxisHorizontal, r.Spacing)
}

func updateFlex(renderObject layout.RenderObject, direction layout.Axis, spacing int) {
	if r, ok := renderObject.(*layout.RenderFlex); ok {
		r.SetDirection(direction)
		r.SetSpacing(spacing)
	}
}
