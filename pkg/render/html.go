package render

import (
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/vdom"
)

// Html constructor tags: element, a bare string, or a nested component.
const (
	htmlElement = iota
	htmlOfString
	htmlOfComponent
)

// RenderList translates a host-produced sequence of html values into a
// vdom forest. It is the entry point a component instance's render calls:
// elements is the forest itself, children is the flat list of every
// component instance constructed while rendering it (regardless of how
// deeply nested inside plain elements), and handlers is the fresh
// handlerId -> callable table for this render.
func RenderList(htmls hostval.Value, ids HandlerIDs, rt route.Route, factory ComponentFactory) ([]vdom.Node, []vdom.Node, map[uint64]hostval.Value, error) {
	handlers := map[uint64]hostval.Value{}
	var children []vdom.Node
	var elements []vdom.Node
	err := forEachListItem(htmls, func(item hostval.Value) error {
		node, err := RenderHTML(item, ids, rt, factory, handlers, &children)
		if err != nil {
			return err
		}
		elements = append(elements, node)
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return elements, children, handlers, nil
}

// RenderHTML translates a single html value. children accumulates every
// component instance constructed transitively, handlers accumulates every
// event handler registered transitively — both are shared across an
// entire RenderList call, matching the source's out-parameter
// accumulation in render_html/render_element.
func RenderHTML(html hostval.Value, ids HandlerIDs, rt route.Route, factory ComponentFactory, handlers map[uint64]hostval.Value, children *[]vdom.Node) (vdom.Node, error) {
	switch html.Tag() {
	case htmlElement:
		return RenderElement(html, ids, rt, factory, handlers, children)
	case htmlOfString:
		return vdom.Text(native.StringOf(html.Field(0))), nil
	case htmlOfComponent:
		props := html.Field(0)
		comp := html.Field(1)
		child := factory(comp, props, rt)
		*children = append(*children, child)
		return child, nil
	default:
		hostval.Unreachable(html.Tag())
		return nil, nil
	}
}

// RenderElement decodes an element's tag, attribute list, and child list.
func RenderElement(elt hostval.Value, ids HandlerIDs, rt route.Route, factory ComponentFactory, handlers map[uint64]hostval.Value, children *[]vdom.Node) (vdom.Node, error) {
	tag := native.StringOf(elt.Field(0))
	attrsList := elt.Field(1)
	childrenList := elt.Field(2)

	attrs := map[string]any{}
	events := map[string]vdom.EventBinding{}
	var tooltip vdom.Node

	err := forEachListItem(attrsList, func(attr hostval.Value) error {
		switch attr.Tag() {
		case attrVal:
			key := native.StringOf(attr.Field(0))
			value := native.StringOf(attr.Field(1))
			mergeAttr(attrs, key, value)
		case attrMouseEvent:
			kind := attr.Field(0).Tag()
			handler := attr.Field(1)
			name, ok := mouseEventNames[kind]
			if !ok {
				hostval.Unreachable(kind)
			}
			registerEvent(name, handler, ids, rt, events, handlers)
		case attrStyle:
			return forEachListItem(attr.Field(0), func(pair hostval.Value) error {
				k := native.StringOf(pair.Field(0))
				v := native.StringOf(pair.Field(1))
				mergeStyle(attrs, k, v)
				return nil
			})
		case attrTooltip:
			node, err := RenderHTML(attr.Field(0), ids, rt, factory, handlers, children)
			if err != nil {
				return err
			}
			tooltip = node
		case attrTextChangeEvent:
			registerEvent("onChange", attr.Field(0), ids, rt, events, handlers)
		default:
			hostval.Unreachable(attr.Tag())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var kids []vdom.Node
	err = forEachListItem(childrenList, func(child hostval.Value) error {
		node, err := RenderHTML(child, ids, rt, factory, handlers, children)
		if err != nil {
			return err
		}
		kids = append(kids, node)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &vdom.Element{Tag: tag, Attrs: attrs, Events: events, Tooltip: tooltip, Children: kids}, nil
}

func registerEvent(name string, handler hostval.Value, ids HandlerIDs, rt route.Route, events map[string]vdom.EventBinding, handlers map[uint64]hostval.Value) {
	id := ids.NextHandlerID()
	events[name] = vdom.EventBinding{Route: rt, HandlerID: id}
	handlers[id] = handler
}
