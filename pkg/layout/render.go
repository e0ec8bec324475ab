package layout

// RenderObject is a node in the render tree. Widgets create and update
// render objects; renderers walk the tree to produce output.
type RenderObject interface {
	// SetOwner attaches the object to a pipeline. A non-nil owner schedules
	// an initial paint.
	SetOwner(owner *PipelineOwner)
	// MarkNeedsPaint schedules the object for the next paint flush.
	MarkNeedsPaint()
	// Parent returns the parent render object, or nil for the root.
	Parent() RenderObject
	// SetParent is called by the element tree when attaching or detaching.
	SetParent(parent RenderObject)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// Tappable is implemented by render objects that react to activation.
type Tappable interface {
	// Tap activates the object. Returns false when the object ignored the
	// tap (for example a disabled button).
	Tap() bool
}

// RenderBase provides parent and owner bookkeeping for render objects.
// Embed it and call SetSelf from the constructor.
type RenderBase struct {
	owner  *PipelineOwner
	parent RenderObject
	self   RenderObject
}

// SetSelf records the outer render object so MarkNeedsPaint schedules the
// right node.
func (r *RenderBase) SetSelf(self RenderObject) {
	r.self = self
}

func (r *RenderBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
	if owner != nil {
		r.MarkNeedsPaint()
	}
}

// Owner returns the pipeline this object is attached to.
func (r *RenderBase) Owner() *PipelineOwner {
	return r.owner
}

func (r *RenderBase) MarkNeedsPaint() {
	if r.owner != nil && r.self != nil {
		r.owner.SchedulePaint(r.self)
	}
}

func (r *RenderBase) Parent() RenderObject {
	return r.parent
}

func (r *RenderBase) SetParent(parent RenderObject) {
	r.parent = parent
}

// Walk visits root and every descendant in depth-first pre-order. The walk
// stops early when visit returns false.
func Walk(root RenderObject, visit func(RenderObject) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	if parent, ok := root.(ChildVisitor); ok {
		cont := true
		parent.VisitChildren(func(child RenderObject) {
			if cont {
				cont = Walk(child, visit)
			}
		})
		return cont
	}
	return true
}

// FindButton returns the first button under root with the given label.
func FindButton(root RenderObject, label string) *RenderButton {
	var found *RenderButton
	Walk(root, func(ro RenderObject) bool {
		if b, ok := ro.(*RenderButton); ok && b.Label() == label {
			found = b
			return false
		}
		return true
	})
	return found
}
