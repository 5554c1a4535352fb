package vdom

import "github.com/lean-widgets/reconciler/pkg/route"

// EventBinding names the route and handler id a client-observed event must
// be sent back with. The route recorded here is the route in effect at
// render time, i.e. the receiving component's own address as seen by its
// parent — not the route of any nested component below the element.
type EventBinding struct {
	Route     route.Route
	HandlerID uint64
}

// Element is a tagged html element: a tag name, merged attributes, event
// bindings, an optional tooltip subtree, and ordered children.
//
// Attribute merging (className concatenation, style-map accumulation) is
// the renderer's job (package render); by the time an Element exists here
// its Attrs map already reflects the merge.
type Element struct {
	Tag     string
	Attrs   map[string]any
	Events  map[string]EventBinding
	Tooltip Node
	Children []Node
}

func (e *Element) Key() string {
	if e.Attrs == nil {
		return ""
	}
	if k, ok := e.Attrs["key"].(string); ok {
		return k
	}
	return ""
}

// Reconcile only recurses into children and the tooltip when both sides
// are elements with an identical tag; otherwise the new element simply
// renders fresh (there is nothing to inherit).
func (e *Element) Reconcile(old Node) {
	o, ok := old.(*Element)
	if !ok || o.Tag != e.Tag {
		DisposeSubtree(old)
		return
	}
	ReconcileChildren(e.Children, o.Children)
	if e.Tooltip != nil && o.Tooltip != nil {
		e.Tooltip.Reconcile(o.Tooltip)
	}
}

func (e *Element) ToJSON(r route.Route) (any, error) {
	out := map[string]any{
		"t": e.Tag,
		"a": e.Attrs,
	}
	if len(e.Events) > 0 {
		events := make(map[string]any, len(e.Events))
		for name, b := range e.Events {
			events[name] = map[string]any{
				"r": b.Route.ToJSON(),
				"h": b.HandlerID,
			}
		}
		out["e"] = events
	}
	children := make([]any, len(e.Children))
	for i, c := range e.Children {
		cj, err := c.ToJSON(r)
		if err != nil {
			return nil, err
		}
		children[i] = cj
	}
	out["c"] = children
	if e.Tooltip != nil {
		tj, err := e.Tooltip.ToJSON(r)
		if err != nil {
			return nil, err
		}
		out["tt"] = tj
	}
	return out, nil
}
