package widgets

import (
	"github.com/go-drift/counter/pkg/core"
	"github.com/go-drift/counter/pkg/layout"
)

// Text displays a single line of text.
type Text struct {
	core.RenderObjectBase
	// Content is the text string to display.
	Content string
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	return layout.NewRenderText(t.Content)
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*layout.RenderText); ok {
		r.SetText(t.Content)
	}
}
