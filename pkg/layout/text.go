package layout

// RenderText displays a single line of text.
type RenderText struct {
	RenderBase
	text string
}

// NewRenderText creates a text render object.
func NewRenderText(text string) *RenderText {
	r := &RenderText{text: text}
	r.SetSelf(r)
	return r
}

// Text returns the displayed text.
func (r *RenderText) Text() string {
	return r.text
}

// SetText updates the text and schedules a paint when it changed.
func (r *RenderText) SetText(text string) {
	if r.text == text {
		return
	}
	r.text = text
	r.MarkNeedsPaint()
}
