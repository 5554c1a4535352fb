package hook

import "github.com/lean-widgets/reconciler/pkg/hostval"

// MapProps transforms props on their way inward: getProps(p) = f(p). It
// carries no state of its own, so Reconcile keeps the pass-through
// default.
type MapProps struct {
	Base
	Map hostval.Value
}

func NewMapProps(mapFn hostval.Value) *MapProps {
	return &MapProps{Map: mapFn}
}

func (h *MapProps) Kind() Kind { return KindMapProps }

func (h *MapProps) GetProps(props hostval.Value) hostval.Value {
	out, err := h.Map.Invoke(props)
	if err != nil {
		panic(err)
	}
	return out
}
