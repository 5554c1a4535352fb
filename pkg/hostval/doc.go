// Package hostval defines the narrow capability contract the reconciler
// requires from a host scripting runtime.
//
// Props, actions, and view results that flow through the reconciler are
// opaque values produced and consumed by whatever runtime evaluates the
// user's view/update/map callables. The reconciler never inspects their
// contents directly; it only needs equality, a stable hash, invocation,
// positional field projection on constructor-tagged values, and a
// constructor-index query. That is exactly the surface this package
// declares as the Value interface.
//
// Two backends implement it: hostval/native, plain Go closures used by the
// reconciler's own tests and by Go-embedding callers, and hostval/yaegi, an
// interpreter-backed implementation for callables supplied as source text.
package hostval
