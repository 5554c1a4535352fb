package hook

import (
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

// CaptureState is the ternary mouse-capture state a component instance
// tracks: whether the pointer is outside it, directly inside it, or inside
// one of its descendants.
type CaptureState int

const (
	CaptureOutside CaptureState = iota
	CaptureInsideImmediate
	CaptureInsideChild
)

// MouseCapture exposes its ternary state to the view as a small integer
// paired with props, and lets the owning component instance push external
// capture transitions in via SetState.
type MouseCapture struct {
	Base
	state CaptureState
}

func NewMouseCapture() *MouseCapture { return &MouseCapture{state: CaptureOutside} }

func (h *MouseCapture) Kind() Kind { return KindMouseCapture }

func (h *MouseCapture) GetProps(props hostval.Value) hostval.Value {
	return native.Pair(native.Int(int64(h.state)), props)
}

// SetState updates the capture state and reports whether it changed. A
// component instance calls this for every mouse-capture hook it owns and
// re-renders only if at least one reports a change.
func (h *MouseCapture) SetState(s CaptureState) bool {
	if h.state == s {
		return false
	}
	h.state = s
	return true
}

// State returns the current capture state.
func (h *MouseCapture) State() CaptureState { return h.state }
