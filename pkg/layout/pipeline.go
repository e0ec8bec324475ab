package layout

// PipelineOwner tracks render objects that need paint.
//
// Render objects schedule themselves through MarkNeedsPaint when their
// visible properties change. The engine calls FlushPaint once per frame and
// repaints only when something was scheduled.
type PipelineOwner struct {
	dirtyPaint map[RenderObject]struct{}
	needsPaint bool
	paints     int
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaint == nil {
		p.dirtyPaint = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtyPaint[object]; exists {
		return
	}
	p.dirtyPaint[object] = struct{}{}
	p.needsPaint = true
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// DirtyCount returns the number of render objects waiting for paint.
func (p *PipelineOwner) DirtyCount() int {
	return len(p.dirtyPaint)
}

// FlushPaint clears the dirty set. It returns true if anything was
// scheduled since the previous flush.
func (p *PipelineOwner) FlushPaint() bool {
	if !p.needsPaint {
		return false
	}
	clear(p.dirtyPaint)
	p.needsPaint = false
	p.paints++
	return true
}

// PaintCount returns how many flushes actually painted.
func (p *PipelineOwner) PaintCount() int {
	return p.paints
}
