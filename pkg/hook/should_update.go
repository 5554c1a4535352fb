package hook

import "github.com/lean-widgets/reconciler/pkg/hostval"

// ShouldUpdate gates downstream reconciliation on a host-evaluated
// predicate: reconcile(newProps, prev) returns pred(prevProps, newProps)
// once a previous render's props are on record, or true when there is
// nothing to compare against yet. Returning false here is the contract
// point that lets a component instance skip re-rendering entirely and
// reuse its previous output.
type ShouldUpdate struct {
	Base
	Pred     hostval.Value
	props    hostval.Value
	hasProps bool
}

func NewShouldUpdate(pred hostval.Value) *ShouldUpdate {
	return &ShouldUpdate{Pred: pred}
}

func (h *ShouldUpdate) Kind() Kind { return KindShouldUpdate }

func (h *ShouldUpdate) Initialize(props hostval.Value) {
	h.props = props
	h.hasProps = true
}

func (h *ShouldUpdate) Reconcile(newProps hostval.Value, prev Hook) bool {
	p, ok := prev.(*ShouldUpdate)
	if !ok || !p.hasProps {
		h.props = newProps
		h.hasProps = true
		return true
	}
	result, err := h.Pred.Invoke(p.props, newProps)
	if err != nil {
		panic(err)
	}
	h.props = newProps
	h.hasProps = true
	return asBool(result)
}

// asBool reads a host boolean through the shared two-constructor
// convention: tag 1 is true, tag 0 is false.
func asBool(v hostval.Value) bool {
	return v.Tag() == 1
}
