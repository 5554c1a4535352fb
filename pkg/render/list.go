package render

import "github.com/lean-widgets/reconciler/pkg/hostval"

const (
	listNil  = 0
	listCons = 1
)

// forEachListItem walks a host-produced sequence value (attrs, children,
// or style pairs) via the cons-list convention documented in doc.go,
// invoking fn once per element in order.
func forEachListItem(list hostval.Value, fn func(item hostval.Value) error) error {
	l := list
	for l.Tag() != listNil {
		if l.Tag() != listCons {
			hostval.Unreachable(l.Tag())
		}
		if err := fn(l.Field(0)); err != nil {
			return err
		}
		l = l.Field(1)
	}
	return nil
}
