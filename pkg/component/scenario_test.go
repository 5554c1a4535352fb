package component

import (
	"testing"

	"github.com/lean-widgets/reconciler/pkg/hook"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
)

// Raw html/attr/mouse-event tag numbers, matching pkg/render's unexported
// iota blocks (html.go, attrs.go). Duplicated here rather than exported
// from pkg/render, which never needs to expose them to anything but the
// host values it decodes.
const (
	rHTMLElement     = 0
	rHTMLOfString    = 1
	rHTMLOfComponent = 2

	rAttrMouseEvent = 1

	rMouseClick = 0
)

func buttonWithClick(handler hostval.Value) hostval.Value {
	attr := native.NewTagged(rAttrMouseEvent, native.NewTagged(rMouseClick), handler)
	attrs := cons(attr, nilList())
	return native.NewTagged(rHTMLElement, native.Str("button"), attrs, nilList())
}

func componentNode(comp, props hostval.Value) hostval.Value {
	return native.NewTagged(rHTMLOfComponent, props, comp)
}

// TestShouldUpdateShortCircuitsReconcile exercises the should-update
// hook: a predicate that always answers false makes Reconcile reuse the
// previous render outright, even though outer props changed.
func TestShouldUpdateShortCircuitsReconcile(t *testing.T) {
	pred := native.NewFunc("pred", func(args ...hostval.Value) (hostval.Value, error) {
		return native.Bool(false), nil
	})
	view := native.NewFunc("view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(divWithText("hi"), nilList()), nil
	})
	comp := native.NewTagged(tagWithShouldUpdate, pred, pureComponent(view))

	ids := NewIDGenerator()
	old := Construct(ids, Deps{}, comp, native.Str("a"), route.Empty())
	old.Initialize()
	if err := old.doRender(); err != nil {
		t.Fatalf("initial render: %v", err)
	}

	next := Construct(ids, Deps{}, comp, native.Str("b"), route.Empty())
	next.Reconcile(old)

	if len(next.Render) != len(old.Render) || &next.Render[0] != &old.Render[0] {
		t.Fatalf("expected next.Render to be the exact same slice as old.Render")
	}
	if next.ReconcileCount != old.ReconcileCount+1 {
		t.Fatalf("expected ReconcileCount to advance by one, got %d from %d", next.ReconcileCount, old.ReconcileCount)
	}
	if next.ID != old.ID {
		t.Fatalf("expected id to be carried forward when the hook vetoes the update")
	}
}

// TestStatefulHookIncrementsAcrossActions drives a stateful counter
// through three actions, checking the state each update produces.
func TestStatefulHookIncrementsAcrossActions(t *testing.T) {
	init := native.NewFunc("init", func(args ...hostval.Value) (hostval.Value, error) {
		if prior, ok := native.IsSome(args[1]); ok {
			return prior, nil
		}
		return native.Int(0), nil
	})
	update := native.NewFunc("update", func(args ...hostval.Value) (hostval.Value, error) {
		state := args[1].(native.Scalar).V.(int64)
		return native.Pair(native.Int(state+1), native.None()), nil
	})
	view := native.NewFunc("view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(divWithText("count"), nilList()), nil
	})
	comp := native.NewTagged(tagWithState, init, update, pureComponent(view))

	ids := NewIDGenerator()
	inst := Construct(ids, Deps{}, comp, native.Unit, route.Empty())
	inst.Initialize()

	st, ok := inst.Hooks[0].(*hook.Stateful)
	if !ok {
		t.Fatalf("expected a stateful hook in slot 0, got %T", inst.Hooks[0])
	}

	for i, want := range []int64{1, 2, 3} {
		inst.HandleAction(native.Unit)
		props := st.GetProps(native.Unit)
		got := props.(*native.Tagged).Field(0).(native.Scalar).V.(int64)
		if got != want {
			t.Fatalf("iteration %d: want state %d, got %d", i, want, got)
		}
	}
}

// TestWithTaskComponentRerendersOnCompletion runs a real taskqueue.Pool
// end to end: InnerProps carries None before completion and Some after
// HandleTaskCompleted is driven with the route the hook pushed.
func TestWithTaskComponentRerendersOnCompletion(t *testing.T) {
	pool := taskqueue.NewPool(1, nil)
	defer pool.Close()
	collector := taskqueue.NewCollector(1)

	block := make(chan struct{})
	builder := native.NewFunc("builder", func(args ...hostval.Value) (hostval.Value, error) {
		return native.NewFunc("task", func(args ...hostval.Value) (hostval.Value, error) {
			<-block
			return native.Int(42), nil
		}), nil
	})
	view := native.NewFunc("view", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(divWithText("x"), nilList()), nil
	})
	comp := native.NewTagged(tagWithTask, builder, pureComponent(view))

	ids := NewIDGenerator()
	deps := Deps{Queue: pool, Collector: collector}
	inst := Construct(ids, deps, comp, native.Unit, route.Empty())
	inst.IsRoot = true
	inst.Initialize()
	if err := inst.doRender(); err != nil {
		t.Fatalf("initial render: %v", err)
	}

	pair, ok := inst.InnerProps.(*native.Tagged)
	if !ok {
		t.Fatalf("expected InnerProps to be a pair, got %T", inst.InnerProps)
	}
	if pair.Field(0).Tag() != native.TagNone {
		t.Fatalf("expected None before task completion")
	}
	close(block)

	r := <-collector.Drain()
	if !r.IsEmpty() {
		t.Fatalf("expected an empty route for a with-task hook on the root, got %v", r)
	}
	if err := inst.HandleTaskCompleted(r); err != nil {
		t.Fatalf("HandleTaskCompleted: %v", err)
	}

	pair, ok = inst.InnerProps.(*native.Tagged)
	if !ok {
		t.Fatalf("expected InnerProps to be a pair after completion, got %T", inst.InnerProps)
	}
	got, ok := native.IsSome(pair.Field(0))
	if !ok {
		t.Fatalf("expected Some after task completion")
	}
	if got.(native.Scalar).V.(int64) != 42 {
		t.Fatalf("expected task result 42, got %v", got)
	}
}

// TestRootRelativeRoutingDispatchesToRootAndChild is a regression test
// for the route-address fix in Instance.selfRoute: a click on the root's
// own element must dispatch via an empty route, and a click on a nested
// child component's own element must dispatch via a route naming only
// the child's id, never the root's.
func TestRootRelativeRoutingDispatchesToRootAndChild(t *testing.T) {
	var rootClicked, childClicked bool

	rootHandler := native.NewFunc("rootHandler", func(args ...hostval.Value) (hostval.Value, error) {
		rootClicked = true
		return native.None(), nil
	})
	childHandler := native.NewFunc("childHandler", func(args ...hostval.Value) (hostval.Value, error) {
		childClicked = true
		return native.None(), nil
	})

	childView := native.NewFunc("childView", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(buttonWithClick(childHandler), nilList()), nil
	})
	childComp := pureComponent(childView)

	rootView := native.NewFunc("rootView", func(args ...hostval.Value) (hostval.Value, error) {
		return cons(buttonWithClick(rootHandler), cons(componentNode(childComp, native.Unit), nilList())), nil
	})
	rootComp := pureComponent(rootView)

	ids := NewIDGenerator()
	root := Construct(ids, Deps{}, rootComp, native.Unit, route.Empty())
	root.IsRoot = true
	// ToJSON recurses into every freshly constructed child instance's own
	// ToJSON, which is what lazily triggers that child's first render —
	// mirroring the source's component_instance::to_json, which is the
	// only place a nested instance's render() gets called on construction.
	if _, err := root.ToJSON(route.Empty()); err != nil {
		t.Fatalf("initial render via ToJSON: %v", err)
	}

	if len(root.Children) != 1 {
		t.Fatalf("expected exactly one child component instance, got %d", len(root.Children))
	}
	child := root.Children[0]
	if !child.Route.IsEmpty() {
		t.Fatalf("expected root's direct child to have an empty ancestor Route, got %v", child.Route)
	}

	var rootHandlerID, childHandlerID uint64
	for id := range root.Handlers {
		rootHandlerID = id
	}
	for id := range child.Handlers {
		childHandlerID = id
	}

	if _, _, err := root.HandleEvent(route.Empty(), rootHandlerID, native.Unit); err != nil {
		t.Fatalf("root event dispatch: %v", err)
	}
	if !rootClicked {
		t.Fatal("expected root's own handler to fire on an empty route")
	}

	childRoute := route.Empty().Child(child.ID)
	if _, _, err := root.HandleEvent(childRoute, childHandlerID, native.Unit); err != nil {
		t.Fatalf("child event dispatch: %v", err)
	}
	if !childClicked {
		t.Fatal("expected child's own handler to fire on a route naming only the child's id")
	}
}
