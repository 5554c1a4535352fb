package hook

import "github.com/lean-widgets/reconciler/pkg/hostval"

// Kind discriminates the six hook variants. Component reconciliation pairs
// hooks position-by-position and does not compare kinds itself: an equal
// component hash is taken to mean two hook stacks of equal length whose
// kinds agree slot-for-slot. Hooks that read prev do so by type assertion.
type Kind uint8

const (
	KindFilterMapAction Kind = iota
	KindMapProps
	KindShouldUpdate
	KindStateful
	KindTask
	KindMouseCapture
)

func (k Kind) String() string {
	switch k {
	case KindFilterMapAction:
		return "FilterMapAction"
	case KindMapProps:
		return "MapProps"
	case KindShouldUpdate:
		return "WithShouldUpdate"
	case KindStateful:
		return "Stateful"
	case KindTask:
		return "WithTask"
	case KindMouseCapture:
		return "WithMouseCapture"
	default:
		return "Unknown"
	}
}

// Hook is one layer of a component. A component instance owns an ordered
// stack of these, outermost first, terminating in the Pure view function
// (which is not itself a Hook — it is the payload package component reads
// off the bottom of the stack).
type Hook interface {
	Kind() Kind

	// Initialize runs the hook's side effect for a freshly (re)constructed
	// component: default is a no-op.
	Initialize(props hostval.Value)

	// Reconcile is called only when a same-kind hook occupied this slot in
	// the previous render and the update hasn't already been short
	// circuited. It returns whether reconciliation should continue probing
	// downstream hooks (shouldContinue); prev is the old hook at this
	// slot, always of the same Kind. Default: true (pass-through).
	Reconcile(newProps hostval.Value, prev Hook) bool

	// GetProps threads props inward through this hook on the way to the
	// next hook or the view. Default: identity.
	GetProps(props hostval.Value) hostval.Value

	// Action folds an outward-travelling action through this hook. The
	// returned bool is false when the hook swallows the action (nothing
	// propagates further outward). Default: pass-through, ok=true.
	Action(act hostval.Value) (hostval.Value, bool)
}

// Base supplies the pass-through defaults every variant that doesn't need
// a given method embeds.
type Base struct{}

func (Base) Initialize(hostval.Value) {}
func (Base) Reconcile(hostval.Value, Hook) bool { return true }
func (Base) GetProps(props hostval.Value) hostval.Value { return props }
func (Base) Action(act hostval.Value) (hostval.Value, bool) { return act, true }
