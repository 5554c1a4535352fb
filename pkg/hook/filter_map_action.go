package hook

import "github.com/lean-widgets/reconciler/pkg/hostval"

// FilterMapAction stores the last props it saw and lets the host-supplied
// map function veto or transform an action on its way outward: map(props,
// act) returns an Option — Some propagates a (possibly different) action,
// None swallows it.
type FilterMapAction struct {
	Base
	Map   hostval.Value
	props hostval.Value
}

func NewFilterMapAction(mapFn hostval.Value) *FilterMapAction {
	return &FilterMapAction{Map: mapFn}
}

func (h *FilterMapAction) Kind() Kind { return KindFilterMapAction }

func (h *FilterMapAction) Initialize(props hostval.Value) {
	h.props = props
}

func (h *FilterMapAction) Reconcile(newProps hostval.Value, prev Hook) bool {
	h.props = newProps
	return true
}

func (h *FilterMapAction) Action(act hostval.Value) (hostval.Value, bool) {
	result, err := h.Map.Invoke(h.props, act)
	if err != nil {
		panic(err)
	}
	return optionUnwrap(result)
}

// optionUnwrap interprets a host Option value (tag 0 = None, tag 1 = Some
// with one field) as (value, ok).
func optionUnwrap(v hostval.Value) (hostval.Value, bool) {
	if v.Tag() == 1 {
		return v.Field(0), true
	}
	return nil, false
}
