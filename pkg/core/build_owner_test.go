package core

import "testing"

func TestBuildOwner_ScheduleBuildDedupes(t *testing.T) {
	owner := NewBuildOwner()
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }

	element := NewStatelessElement()
	owner.ScheduleBuild(element)
	owner.ScheduleBuild(element)

	if frames != 1 {
		t.Errorf("expected 1 frame request, got %d", frames)
	}
	if !owner.NeedsWork() {
		t.Error("expected pending work")
	}
}

func TestBuildOwner_FlushBuildDepthOrder(t *testing.T) {
	var order []string
	parentState := &testState{}
	childState := &testState{}
	parentState.buildFn = func(BuildContext) Widget {
		order = append(order, "parent")
		return testStatefulWidget{createStateFn: func() State { return childState }}
	}
	childState.buildFn = func(BuildContext) Widget {
		order = append(order, "child")
		return nil
	}

	owner := NewBuildOwner()
	MountRoot(testStatefulWidget{createStateFn: func() State { return parentState }}, owner)
	order = nil

	childState.SetState(nil)
	parentState.SetState(nil)
	owner.FlushBuild()

	if len(order) < 2 || order[0] != "parent" || order[1] != "child" {
		t.Errorf("expected parent before child, got %v", order)
	}
	if owner.NeedsWork() && !owner.Pipeline().NeedsPaint() {
		t.Error("expected no dirty elements after flush")
	}
}

func TestBuildOwner_SkipsUnmounted(t *testing.T) {
	builds := 0
	state := &testState{buildFn: func(BuildContext) Widget {
		builds++
		return nil
	}}
	owner := NewBuildOwner()
	root := MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, owner)
	builds = 0

	root.MarkNeedsBuild()
	root.Unmount()
	owner.FlushBuild()

	if builds != 0 {
		t.Errorf("expected no builds for an unmounted element, got %d", builds)
	}
}
