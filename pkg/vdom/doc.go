// Package vdom implements the virtual-DOM node model: the tagged Element,
// Text, and Component variants a render produces, keyed child
// reconciliation between a new and an old forest, and the JSON shape a
// remote client displays.
//
// Every node kind implements Node, whose Reconcile and ToJSON methods are
// dispatched polymorphically through a common interface rather than a type
// switch spread across callers: reconciliation type-switches on the
// concrete kind of both sides internally and falls back to "render fresh"
// whenever the kinds or tags disagree.
package vdom
