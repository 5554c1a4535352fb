package hook

import (
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
)

// WithTask evaluates builder(props) to obtain a task value, submits that
// task value to the queue, and exposes its outcome to the view as
// Option[result]: None until the task completes, Some(result) afterward.
// A reconcile against a previous WithTask is treated as a prop change
// regardless of whether props actually differ — the source's own comment
// at this call site is "assume that the props have changed. so we have to
// just recompute" — so Reconcile always resubmits a fresh task rather than
// carrying the old handle forward.
type WithTask struct {
	Base
	queue     taskqueue.Queue
	collector *taskqueue.Collector
	route     RouteFunc

	handle  taskqueue.Handle
	builder hostval.Value
}

// RouteFunc lazily reports the owning component instance's route at the
// moment a task completes, since a hook is constructed before its instance
// necessarily has a stable route recorded.
type RouteFunc func() route.Route

// NewWithTask builds a WithTask hook bound to the process-wide task queue
// and the runtime's pending-tasks collector. builder is invoked with props
// on the owning thread to produce the task value that gets submitted.
func NewWithTask(queue taskqueue.Queue, collector *taskqueue.Collector, route RouteFunc, builder hostval.Value) *WithTask {
	return &WithTask{queue: queue, collector: collector, route: route, builder: builder}
}

func (h *WithTask) Kind() Kind { return KindTask }

func (h *WithTask) Initialize(props hostval.Value) {
	if h.handle != nil {
		return
	}
	taskValue, err := h.builder.Invoke(props)
	if err != nil {
		panic(err)
	}
	h.handle = h.queue.Submit(taskValue)
	h.handle.Notify(func() {
		if h.collector != nil && h.route != nil {
			h.collector.Push(h.route())
		}
	})
}

func (h *WithTask) Reconcile(newProps hostval.Value, prev Hook) bool {
	h.Initialize(newProps)
	return true
}

func (h *WithTask) GetProps(props hostval.Value) hostval.Value {
	if h.handle == nil {
		return native.Pair(native.None(), props)
	}
	if result, ok := h.handle.Peek(); ok {
		return native.Pair(native.Some(result), props)
	}
	return native.Pair(native.None(), props)
}

// Dispose releases the underlying task handle. Called when the owning
// component instance is torn down, mirroring the source's with_task_hook
// destructor disposing its task.
func (h *WithTask) Dispose() {
	if h.handle != nil {
		h.handle.FailAndDispose()
	}
}
