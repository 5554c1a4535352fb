package component

import (
	"github.com/lean-widgets/reconciler/pkg/hook"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/render"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/vdom"
)

// Key reports that a component instance is never itself keyed; the "key"
// attribute lives on Elements only. Matches the source's vdom base class,
// which only vdom_element overrides.
func (inst *Instance) Key() string { return "" }

// Dispose fails and releases any outstanding with-task handle owned
// directly by this instance's hook stack, then recurses into whatever this
// instance last rendered so a whole discarded component subtree disposes
// every with-task hook it contains, not just its own. Called instead of
// Reconcile when a subsequent render doesn't match this instance (see
// vdom.DisposeSubtree).
func (inst *Instance) Dispose() {
	for _, h := range inst.Hooks {
		if wt, ok := h.(*hook.WithTask); ok {
			wt.Dispose()
		}
	}
	for _, c := range inst.Render {
		vdom.DisposeSubtree(c)
	}
}

// Initialize computes InnerProps by folding GetProps across hooks
// starting from OuterProps, side-effecting each hook's Initialize.
func (inst *Instance) Initialize() {
	p := inst.OuterProps
	for _, h := range inst.Hooks {
		h.Initialize(p)
		p = h.GetProps(p)
	}
	inst.InnerProps = p
}

// doRender evaluates the view through the host, translates the result to
// a vdom forest, and reconciles it against the previous render. Precondition:
// InnerProps is set.
func (inst *Instance) doRender() error {
	viewResult, err := inst.View.Invoke(inst.InnerProps)
	if err != nil {
		return err
	}

	factory := func(comp, props hostval.Value, rt route.Route) vdom.Node {
		return Construct(inst.ids, inst.deps, comp, props, rt)
	}
	elements, children, handlers, err := render.RenderList(viewResult, inst.ids, inst.selfRoute(), factory)
	if err != nil {
		return err
	}

	vdom.ReconcileChildren(elements, inst.Render)

	childInstances := make([]*Instance, 0, len(children))
	for _, c := range children {
		if ci, ok := c.(*Instance); ok {
			childInstances = append(childInstances, ci)
		}
	}

	inst.Handlers = handlers
	inst.Children = childInstances
	inst.Render = elements
	inst.HasRendered = true
	return nil
}

// mustRender runs doRender and panics on a host-evaluation error. Used
// from Reconcile, whose vdom.Node signature has no error return — a
// host-evaluation error is not the reconciler's to catch, so a panic that
// reaches the transport layer is this implementation's equivalent of the
// source's uncaught C++ exception.
func (inst *Instance) mustRender() {
	if err := inst.doRender(); err != nil {
		panic(err)
	}
}

// Reconcile implements the component reconcile algorithm: a componentHash
// mismatch renders fresh; otherwise each hook is reconciled in order,
// short-circuiting to "reuse the previous render" the moment any hook
// reports no update, and threading props through GetProps otherwise.
func (inst *Instance) Reconcile(old vdom.Node) {
	o, ok := old.(*Instance)
	if !ok || o.ComponentHash != inst.ComponentHash {
		vdom.DisposeSubtree(old)
		inst.Initialize()
		inst.mustRender()
		return
	}

	pNew := inst.OuterProps
	shouldUpdate := !pNew.Equal(o.OuterProps)
	for i, h := range inst.Hooks {
		oldHook := o.Hooks[i]
		if shouldUpdate {
			shouldUpdate = h.Reconcile(pNew, oldHook)
		}
		if !shouldUpdate {
			inst.Hooks[i] = oldHook
		} else {
			pNew = h.GetProps(pNew)
		}
	}

	if !shouldUpdate {
		inst.InnerProps = o.InnerProps
		inst.Children = o.Children
		inst.Render = o.Render
		inst.Handlers = o.Handlers
		inst.ID = o.ID
		inst.HasRendered = true
		inst.ReconcileCount = o.ReconcileCount + 1
		return
	}

	inst.InnerProps = pNew
	inst.mustRender()
}

// ToJSON renders on demand if the instance hasn't rendered yet, then
// serialises: rendered children (each stamped with the route one hop
// below this instance), this instance's id, and a mouse_capture entry if
// any hook is a mouse-capture hook. The incoming r
// is accepted only to satisfy vdom.Node; this instance's own dispatch
// address is fully determined by its stored Route and IsRoot, which
// selfRoute reconstructs.
func (inst *Instance) ToJSON(r route.Route) (any, error) {
	if !inst.HasRendered {
		inst.Initialize()
		if err := inst.doRender(); err != nil {
			return nil, err
		}
	}

	childRoute := inst.selfRoute()
	children := make([]any, len(inst.Render))
	for i, c := range inst.Render {
		cj, err := c.ToJSON(childRoute)
		if err != nil {
			return nil, err
		}
		children[i] = cj
	}

	out := map[string]any{
		"c":  children,
		"id": inst.ID,
	}
	for _, h := range inst.Hooks {
		if h.Kind() == hook.KindMouseCapture {
			out["mouse_capture"] = map[string]any{"r": childRoute.ToJSON()}
			break
		}
	}
	return out, nil
}

// HandleAction folds hooks right-to-left applying each hook's Action,
// short-circuiting the moment one returns "swallowed."
func (inst *Instance) HandleAction(action hostval.Value) (hostval.Value, bool) {
	result := action
	ok := true
	for i := len(inst.Hooks) - 1; i >= 0 && ok; i-- {
		result, ok = inst.Hooks[i].Action(result)
	}
	return result, ok
}

// HandleEvent walks route to the target instance, invokes the named
// handler on eventArgs, and pipes the resulting action back out through
// every ancestor's HandleAction along the way.
func (inst *Instance) HandleEvent(rt route.Route, handlerID uint64, eventArgs hostval.Value) (hostval.Value, bool, error) {
	if rt.IsEmpty() {
		handler, ok := inst.Handlers[handlerID]
		if !ok {
			return nil, false, ErrInvalidHandler
		}
		action, err := handler.Invoke(eventArgs)
		if err != nil {
			return nil, false, err
		}
		result, ok := inst.HandleAction(action)
		return result, ok, nil
	}

	head, _ := rt.Head()
	for _, c := range inst.Children {
		if c.ID == head {
			result, ok, err := c.HandleEvent(rt.Tail(), handlerID, eventArgs)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, nil
			}
			out, ok2 := inst.HandleAction(result)
			return out, ok2, nil
		}
	}
	return nil, false, ErrInvalidHandler
}

// HandleTaskCompleted follows route to the target instance and
// re-initializes/re-renders it; intermediate nodes only traverse.
func (inst *Instance) HandleTaskCompleted(rt route.Route) error {
	if rt.IsEmpty() {
		inst.Initialize()
		return inst.doRender()
	}
	head, _ := rt.Head()
	for _, c := range inst.Children {
		if c.ID == head {
			return c.HandleTaskCompleted(rt.Tail())
		}
	}
	return nil
}

func (inst *Instance) updateCaptureState(state hook.CaptureState) error {
	shouldUpdate := false
	for _, h := range inst.Hooks {
		if mc, ok := h.(*hook.MouseCapture); ok && mc.SetState(state) {
			shouldUpdate = true
		}
	}
	if shouldUpdate {
		inst.Initialize()
		return inst.doRender()
	}
	return nil
}

// HandleMouseGainCapture sets this instance's capture state to
// inside_immediate at the route's end, or inside_child while recursing
// toward it.
func (inst *Instance) HandleMouseGainCapture(rt route.Route) error {
	if rt.IsEmpty() {
		return inst.updateCaptureState(hook.CaptureInsideImmediate)
	}
	if err := inst.updateCaptureState(hook.CaptureInsideChild); err != nil {
		return err
	}
	head, _ := rt.Head()
	for _, c := range inst.Children {
		if c.ID == head {
			return c.HandleMouseGainCapture(rt.Tail())
		}
	}
	return nil
}

// HandleMouseLoseCapture always resets this instance's capture state to
// outside, then recurses toward the named child if route is non-empty.
func (inst *Instance) HandleMouseLoseCapture(rt route.Route) error {
	if err := inst.updateCaptureState(hook.CaptureOutside); err != nil {
		return err
	}
	if rt.IsEmpty() {
		return nil
	}
	head, _ := rt.Head()
	for _, c := range inst.Children {
		if c.ID == head {
			return c.HandleMouseLoseCapture(rt.Tail())
		}
	}
	return nil
}
