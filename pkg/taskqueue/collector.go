package taskqueue

import "github.com/lean-widgets/reconciler/pkg/route"

// Collector is the pending-tasks sink a runtime hands to every with-task
// hook: when a task completes, the hook pushes its owning instance's route
// so the host event loop knows which component to reconcile next. This is
// the completion-routing half of the contract the source's with_task_hook
// never wires up on its own.
type Collector struct {
	ch chan route.Route
}

// NewCollector creates a collector buffered to capacity. A capacity of 0
// makes every Push block until something Drains it.
func NewCollector(capacity int) *Collector {
	return &Collector{ch: make(chan route.Route, capacity)}
}

// Push enqueues a completed route. Called from whatever goroutine noticed
// the task finished — typically a Handle.Notify callback.
func (c *Collector) Push(r route.Route) {
	c.ch <- r
}

// Drain returns the channel of completed routes for a host event loop to
// range over.
func (c *Collector) Drain() <-chan route.Route {
	return c.ch
}
