// Package reconciler owns the one object a process needs to run this
// virtual-DOM/component system end to end: a monotonic id source, the
// task-completion plumbing, and the single root component instance those
// two feed into.
//
// This has no direct analogue as its own source class — widget.cpp
// exposes component_instance directly to its RPC glue with the id
// counters and pending-task state as file-scope statics. Runtime is
// those statics given an owner, so multiple independent reconcilers can
// coexist in one process without colliding.
package reconciler
