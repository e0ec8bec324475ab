package widgets

import (
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/layout"
)

// Button is a labelled activation control.
//
// Example using struct literal:
//
//	Button{
//	    Label:    "increment",
//	    OnTap:    c.Increment,
//	    Disabled: locked,
//	}
//
// Example using XxxOf helper:
//
//	ButtonOf("increment", c.Increment).WithDisabled(locked)
type Button struct {
	core.RenderObjectBase
	// Label is the text displayed on the button. Shells route activation
	// events to buttons by label.
	Label string
	// OnTap is called when the button is activated.
	OnTap func()
	// Disabled ignores activation when true.
	Disabled bool
}

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{
		Label: label,
		OnTap: onTap,
	}
}

// WithDisabled returns a copy of the button with the specified disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	return layout.NewRenderButton(b.Label, b.OnTap, b.Disabled)
}

func (b Button) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	r, ok := renderObject.(*layout.RenderButton)
	if !ok {
		return
	}
	r.SetLabel(b.Label)
	r.SetDisabled(b.Disabled)
	r.SetOnTap(b.OnTap)
}
