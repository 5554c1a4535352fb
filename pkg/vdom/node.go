package vdom

import "github.com/lean-widgets/reconciler/pkg/route"

// Node is a member of a rendered vdom forest: an Element, a Text, or a
// component instance (defined in package component, which implements this
// interface so a component can sit anywhere a plain vdom node can).
type Node interface {
	// Key returns the "key" attribute used for keyed child reconciliation,
	// or "" if the node is unkeyed.
	Key() string

	// Reconcile carries state from old into the receiver where old is a
	// close enough match (same concrete kind, same tag for elements, same
	// componentHash for component instances). It is always called with the
	// receiver freshly constructed and old drawn from the previous render.
	Reconcile(old Node)

	// ToJSON renders the node's wire representation. route is the path of
	// ancestor component-instance ids used to stamp event handler entries.
	ToJSON(r route.Route) (any, error)
}
