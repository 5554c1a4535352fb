package component

import (
	"github.com/lean-widgets/reconciler/pkg/hook"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
	"github.com/lean-widgets/reconciler/pkg/vdom"
)

// Instance is a live component-instance node. It implements vdom.Node so
// it can sit anywhere a plain Element or Text node can in a rendered
// forest.
type Instance struct {
	ID             uint64
	Route          route.Route
	IsRoot         bool
	ComponentHash  uint64
	OuterProps     hostval.Value
	InnerProps     hostval.Value
	Hooks          []hook.Hook
	View           hostval.Value
	Children       []*Instance
	Render         []vdom.Node
	Handlers       map[uint64]hostval.Value
	HasRendered    bool
	ReconcileCount uint64

	ids  *IDGenerator
	deps Deps
}

// selfRoute is the absolute route by which the reconciler root reaches this
// instance: empty for the root itself (dispatch never id-matches the root,
// it is simply whoever an incoming operation is called on), otherwise
// Route with this instance's own id appended. Doubles as the base route
// handed to whatever this instance's own view directly renders, since
// those nodes sit exactly one hop below this instance.
func (inst *Instance) selfRoute() route.Route {
	if inst.IsRoot {
		return route.Empty()
	}
	return inst.Route.Child(inst.ID)
}

// Deps bundles the collaborators a component instance needs to construct
// children and route completed tasks, without pkg/component depending on
// pkg/reconciler for wiring. Both fields may be nil for a tree that never
// uses a with-task hook.
type Deps struct {
	Queue     taskqueue.Queue
	Collector *taskqueue.Collector
}

// Component constructor tags: a zero-based numbering local to this
// package, which host-built component values must use for their Tag.
const (
	tagPure = iota
	tagFilterMapAction
	tagMapProps
	tagWithShouldUpdate
	tagWithState
	tagWithTask
	tagWithMouseCapture
)

// Construct decodes component into an Instance: unwraps hook layers until
// the innermost Pure constructor is reached, pushing one hook per layer in
// declaration order, then records the view function. Matches
// component_instance's constructor.
func Construct(ids *IDGenerator, deps Deps, comp, props hostval.Value, rt route.Route) *Instance {
	inst := &Instance{
		ID:            ids.NextComponentInstanceID(),
		Route:         rt,
		ComponentHash: comp.Hash(),
		OuterProps:    props,
		ids:           ids,
		deps:          deps,
	}

	c := comp
	for c.Tag() != tagPure {
		switch c.Tag() {
		case tagFilterMapAction:
			inst.Hooks = append(inst.Hooks, hook.NewFilterMapAction(c.Field(0)))
			c = c.Field(1)
		case tagMapProps:
			inst.Hooks = append(inst.Hooks, hook.NewMapProps(c.Field(0)))
			c = c.Field(1)
		case tagWithShouldUpdate:
			inst.Hooks = append(inst.Hooks, hook.NewShouldUpdate(c.Field(0)))
			c = c.Field(1)
		case tagWithState:
			inst.Hooks = append(inst.Hooks, hook.NewStateful(c.Field(0), c.Field(1)))
			c = c.Field(2)
		case tagWithTask:
			builder := c.Field(0)
			routeFn := func() route.Route { return inst.selfRoute() }
			inst.Hooks = append(inst.Hooks, hook.NewWithTask(deps.Queue, deps.Collector, routeFn, builder))
			c = c.Field(1)
		case tagWithMouseCapture:
			inst.Hooks = append(inst.Hooks, hook.NewMouseCapture())
			c = c.Field(0)
		default:
			hostval.Unreachable(c.Tag())
		}
	}
	inst.View = c.Field(0)
	return inst
}
