package render

import (
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/vdom"
)

// ComponentFactory constructs a live child component instance for an
// of_component html node and returns it as a vdom.Node (every component
// instance implements vdom.Node). The caller (pkg/component) supplies
// this so the renderer never needs to know how a component instance is
// built.
type ComponentFactory func(component, props hostval.Value, route route.Route) vdom.Node

// HandlerIDs mints globally unique event-handler ids. A caller's
// IDGenerator satisfies this without render needing to know its
// implementation.
type HandlerIDs interface {
	NextHandlerID() uint64
}
