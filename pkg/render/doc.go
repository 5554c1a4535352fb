// Package render implements the pure translation from a host-evaluated
// HTML value into a vdom forest: attribute extraction and merging,
// event-handler registration, tooltip subtrees, and child component
// construction.
//
// It never imports pkg/component: a of_component node is handed to a
// caller-supplied ComponentFactory instead of this package constructing
// it directly. This keeps the dependency graph acyclic: pkg/component
// imports pkg/render, not the reverse.
//
// Host-produced sequences (attrs, children, style pairs) are walked
// through the same two-constructor convention pkg/hostval/native uses for
// Option: tag 0 is the empty sequence, tag 1 is cons(head, tail). This
// keeps every host-facing decode in this package expressible through the
// same narrow Field/Tag capability, with no separate "sequence" method
// added to hostval.Value.
package render
