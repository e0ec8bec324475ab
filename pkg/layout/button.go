package layout

// RenderButton is a labelled activation control.
type RenderButton struct {
	RenderBase
	label    string
	disabled bool
	onTap    func()
}

// NewRenderButton creates a button render object.
func NewRenderButton(label string, onTap func(), disabled bool) *RenderButton {
	r := &RenderButton{label: label, onTap: onTap, disabled: disabled}
	r.SetSelf(r)
	return r
}

// Label returns the button label.
func (r *RenderButton) Label() string {
	return r.label
}

// Disabled reports whether taps are ignored.
func (r *RenderButton) Disabled() bool {
	return r.disabled
}

// SetLabel updates the label and schedules a paint when it changed.
func (r *RenderButton) SetLabel(label string) {
	if r.label == label {
		return
	}
	r.label = label
	r.MarkNeedsPaint()
}

// SetDisabled updates the disabled flag and schedules a paint when it changed.
func (r *RenderButton) SetDisabled(disabled bool) {
	if r.disabled == disabled {
		return
	}
	r.disabled = disabled
	r.MarkNeedsPaint()
}

// SetOnTap replaces the tap handler. Handlers are not visible, so no paint.
func (r *RenderButton) SetOnTap(onTap func()) {
	r.onTap = onTap
}

// Tap calls the handler unless the button is disabled or has none.
func (r *RenderButton) Tap() bool {
	if r.disabled || r.onTap == nil {
		return false
	}
	r.onTap()
	return true
}
