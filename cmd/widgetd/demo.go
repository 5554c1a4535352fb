package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

// Component constructor and html constructor tags, matching the numeric
// layout pkg/component and pkg/render decode against (see their own
// unexported tag constants, both zero-based).
const (
	tagPureComponent = 0

	htmlElement  = 0
	htmlOfString = 1
)

func nilList() hostval.Value { return native.NewTagged(0) }

func cons(head, tail hostval.Value) hostval.Value {
	return native.NewTagged(1, head, tail)
}

func textNode(s string) hostval.Value {
	return native.NewTagged(htmlOfString, native.Str(s))
}

func elementNode(tag string, attrs, children hostval.Value) hostval.Value {
	return native.NewTagged(htmlElement, native.Str(tag), attrs, children)
}

// demoMounter is the built-in Mounter serve uses when no external widget
// registry is configured: it ignores props and always mounts a static
// greeting, so `widgetd serve` is runnable out of the box. A real
// deployment supplies its own Mounter that looks comp up by the {id}
// path segment (see pkg/server.Mounter's doc comment).
func demoMounter(r *http.Request) (comp, props hostval.Value, err error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		id = "demo"
	}

	view := native.NewFunc("view", func(args ...hostval.Value) (hostval.Value, error) {
		greeting := elementNode("div", nilList(), cons(textNode("hello from widget "+id), nilList()))
		return cons(greeting, nilList()), nil
	})

	comp = native.NewTagged(tagPureComponent, view)
	props = native.Unit
	return comp, props, nil
}
