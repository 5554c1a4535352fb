// Package taskqueue implements a thin external-actor contract for
// background work: submit, peek, fail-and-dispose, plus the pending-tasks
// collector background workers use to hand a completed route back to the
// owning event loop.
//
// The reconciler treats a "task" as an invocable hostval.Value: submitting
// it runs Invoke() on a worker goroutine and the returned value becomes
// the eventual result. This keeps the queue itself host-runtime agnostic —
// whatever produced the task value decides what running it means.
package taskqueue
