package layout

import "slices"

// Axis is the main axis of a flex container.
type Axis int

const (
	// AxisVertical stacks children top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal places children left to right.
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// RenderFlex lays out its children along one axis.
type RenderFlex struct {
	RenderBase
	direction Axis
	spacing   int
	children  []RenderObject
}

// NewRenderFlex creates a flex render object.
func NewRenderFlex(direction Axis, spacing int) *RenderFlex {
	r := &RenderFlex{direction: direction, spacing: spacing}
	r.SetSelf(r)
	return r
}

// Direction returns the main axis.
func (r *RenderFlex) Direction() Axis {
	return r.direction
}

// Spacing returns the gap between children, in cells.
func (r *RenderFlex) Spacing() int {
	return r.spacing
}

// SetDirection updates the main axis.
func (r *RenderFlex) SetDirection(direction Axis) {
	if r.direction == direction {
		return
	}
	r.direction = direction
	r.MarkNeedsPaint()
}

// SetSpacing updates the gap between children.
func (r *RenderFlex) SetSpacing(spacing int) {
	if r.spacing == spacing {
		return
	}
	r.spacing = spacing
	r.MarkNeedsPaint()
}

// SetChildren replaces the child list and schedules a paint when it changed.
func (r *RenderFlex) SetChildren(children []RenderObject) {
	if slices.Equal(r.children, children) {
		return
	}
	r.children = children
	r.MarkNeedsPaint()
}

// Children returns the child list.
func (r *RenderFlex) Children() []RenderObject {
	return r.children
}

func (r *RenderFlex) VisitChildren(visitor func(RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}
