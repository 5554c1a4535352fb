// Package component implements the live, identity-bearing Component
// Instance: hook-stack decoding from an opaque component value,
// initialize/render/reconcile, event and task-completion routing, and
// mouse-capture propagation.
//
// Grounded directly on the source's component_instance class; every
// operation here mirrors one of that type's methods by name and by the
// order it touches its hook stack.
package component
