package component

import (
	"testing"

	"github.com/lean-widgets/reconciler/pkg/hook"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
	"github.com/lean-widgets/reconciler/pkg/route"
)

// mouseCaptureHookOf finds the *hook.MouseCapture in inst's hook stack.
func mouseCaptureHookOf(t *testing.T, inst *Instance) *hook.MouseCapture {
	t.Helper()
	for _, h := range inst.Hooks {
		if mc, ok := h.(*hook.MouseCapture); ok {
			return mc
		}
	}
	t.Fatalf("instance %d has no mouse-capture hook", inst.ID)
	return nil
}

// TestMouseCapturePropagatesThroughThreeLevels mounts a root component
// with a with-mouse-capture child, itself with a with-mouse-capture
// grandchild, and drives gain/lose capture down the resulting route.
func TestMouseCapturePropagatesThroughThreeLevels(t *testing.T) {
	grandchildView := native.NewFunc("grandchild-view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(divWithText("b"), nilList()), nil
	})
	grandchildComp := native.NewTagged(tagWithMouseCapture, pureComponent(grandchildView))

	childView := native.NewFunc("child-view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(componentNode(grandchildComp, native.Unit), nilList()), nil
	})
	childComp := native.NewTagged(tagWithMouseCapture, pureComponent(childView))

	rootView := native.NewFunc("root-view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(componentNode(childComp, native.Unit), nilList()), nil
	})
	rootComp := native.NewTagged(tagWithMouseCapture, pureComponent(rootView))

	ids := NewIDGenerator()
	root := Construct(ids, Deps{}, rootComp, native.Unit, route.Empty())
	root.IsRoot = true
	root.Initialize()
	if err := root.doRender(); err != nil {
		t.Fatalf("initial root render: %v", err)
	}

	if len(root.Children) != 1 {
		t.Fatalf("expected root to have one child instance, got %d", len(root.Children))
	}
	child := root.Children[0]
	child.Initialize()
	if err := child.doRender(); err != nil {
		t.Fatalf("initial child render: %v", err)
	}
	if len(child.Children) != 1 {
		t.Fatalf("expected child to have one grandchild instance, got %d", len(child.Children))
	}
	grandchild := child.Children[0]

	rootMC := mouseCaptureHookOf(t, root)
	childMC := mouseCaptureHookOf(t, child)
	grandchildMC := mouseCaptureHookOf(t, grandchild)

	capRoute := route.Empty().Child(child.ID).Child(grandchild.ID)

	if err := root.HandleMouseGainCapture(capRoute); err != nil {
		t.Fatalf("HandleMouseGainCapture: %v", err)
	}
	if got := rootMC.State(); got != hook.CaptureInsideChild {
		t.Fatalf("root capture state = %v, want CaptureInsideChild", got)
	}
	if got := childMC.State(); got != hook.CaptureInsideChild {
		t.Fatalf("child capture state = %v, want CaptureInsideChild", got)
	}
	if got := grandchildMC.State(); got != hook.CaptureInsideImmediate {
		t.Fatalf("grandchild capture state = %v, want CaptureInsideImmediate", got)
	}

	// Losing capture along the same route resets every node it visits back
	// to outside: the recursive call only descends into a named child, so
	// walking the same address that gained capture is what actually
	// unwinds the whole path.
	if err := root.HandleMouseLoseCapture(capRoute); err != nil {
		t.Fatalf("HandleMouseLoseCapture: %v", err)
	}
	if got := rootMC.State(); got != hook.CaptureOutside {
		t.Fatalf("root capture state after lose = %v, want CaptureOutside", got)
	}
	if got := childMC.State(); got != hook.CaptureOutside {
		t.Fatalf("child capture state after lose = %v, want CaptureOutside", got)
	}
	if got := grandchildMC.State(); got != hook.CaptureOutside {
		t.Fatalf("grandchild capture state after lose = %v, want CaptureOutside", got)
	}
}
