package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the widget at a location in the tree.
	CreateElement() Element
	// Key identifies the widget among its siblings. Widgets with equal types
	// and keys reuse their element on rebuild.
	Key() any
}

// StatelessWidget builds its child purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable State that survives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget. Embed StateBase to get
// default implementations of everything except Build.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage lifecycle and identity.
type Element interface {
	Widget() Widget
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	Depth() int
}

// BuildContext is handed to Build methods. It is the element being built.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
}

// Disposable is implemented by controllers that hold resources.
type Disposable interface {
	Dispose()
}

// Listenable is anything that can notify listeners of changes.
type Listenable interface {
	// AddListener registers a listener and returns an unsubscribe function.
	AddListener(listener func()) func()
}

// MountRoot inflates widget as the root of a new tree owned by owner.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
