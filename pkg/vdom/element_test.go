package vdom

import (
	"testing"

	"github.com/lean-widgets/reconciler/pkg/route"
)

func TestElementToJSONShape(t *testing.T) {
	el := &Element{
		Tag:      "div",
		Attrs:    map[string]any{"id": "x"},
		Children: []Node{Text("hi")},
	}

	j, err := el.ToJSON(route.Empty())
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	m := j.(map[string]any)
	if m["t"] != "div" {
		t.Errorf("t = %v, want div", m["t"])
	}
	attrs := m["a"].(map[string]any)
	if attrs["id"] != "x" {
		t.Errorf("a.id = %v, want x", attrs["id"])
	}
	children := m["c"].([]any)
	if len(children) != 1 || children[0] != "hi" {
		t.Errorf("c = %v, want [\"hi\"]", children)
	}
	if _, hasEvents := m["e"]; hasEvents {
		t.Errorf("e should be absent when there are no events")
	}
}

func TestElementReconcileDifferentTagDoesNotDescend(t *testing.T) {
	old := &Element{Tag: "span", Children: []Node{Text("old")}}
	next := &Element{Tag: "div", Children: []Node{Text("new")}}

	next.Reconcile(old)

	if txt, ok := next.Children[0].(Text); !ok || txt != "new" {
		t.Errorf("children should be untouched when tags differ")
	}
}

func TestElementEventBindingSerialisesRouteAndHandler(t *testing.T) {
	el := &Element{
		Tag: "button",
		Events: map[string]EventBinding{
			"onClick": {Route: route.Route{1, 2}, HandlerID: 7},
		},
	}
	j, err := el.ToJSON(route.Route{1, 2})
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	m := j.(map[string]any)
	ev := m["e"].(map[string]any)["onClick"].(map[string]any)
	if ev["h"].(uint64) != 7 {
		t.Errorf("h = %v, want 7", ev["h"])
	}
	r := ev["r"].([]uint64)
	if len(r) != 2 || r[0] != 1 || r[1] != 2 {
		t.Errorf("r = %v, want [1 2]", r)
	}
}
