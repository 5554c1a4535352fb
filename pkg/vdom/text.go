package vdom

import "github.com/lean-widgets/reconciler/pkg/route"

// Text is a plain text vdom node. It serialises as a bare JSON string, and
// carries no identity or state of its own to inherit — it just renders
// whatever string the new render produced. old is still disposed, in case
// it was a component instance (or contained one) being replaced outright.
type Text string

func (t Text) Key() string        { return "" }
func (t Text) Reconcile(old Node) { DisposeSubtree(old) }
func (t Text) ToJSON(route.Route) (any, error) {
	return string(t), nil
}
