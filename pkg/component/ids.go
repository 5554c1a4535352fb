package component

import "sync/atomic"

// IDGenerator owns two monotonic counters: component-instance ids and
// event-handler ids. Scoped to an object rather than package-level
// globals, so multiple independent reconcilers can coexist in one
// process without colliding — a pkg/reconciler.Runtime owns exactly one.
type IDGenerator struct {
	nextInstanceID atomic.Uint64
	nextHandlerID  atomic.Uint64
}

// NewIDGenerator returns a generator whose first ids are 0.
func NewIDGenerator() *IDGenerator { return &IDGenerator{} }

// NextComponentInstanceID returns a fresh, never-reused component-instance
// id.
func (g *IDGenerator) NextComponentInstanceID() uint64 {
	return g.nextInstanceID.Add(1) - 1
}

// NextHandlerID returns a fresh, never-reused event-handler id. Satisfies
// pkg/render.HandlerIDs.
func (g *IDGenerator) NextHandlerID() uint64 {
	return g.nextHandlerID.Add(1) - 1
}
