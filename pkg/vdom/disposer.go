package vdom

// Disposer is implemented by vdom nodes that hold resources — currently
// only a component instance with an outstanding with-task handle — needing
// explicit teardown when a subtree is discarded outright instead of being
// carried forward by Reconcile.
type Disposer interface {
	Dispose()
}

// DisposeSubtree calls Dispose on n and everything still reachable beneath
// it. Used wherever reconciliation drops an old node instead of matching it
// against a new one: a component instance whose Dispose recurses into
// whatever it last rendered, and a plain Element's children and tooltip,
// which DisposeSubtree walks itself since Element carries no Dispose of its
// own.
func DisposeSubtree(n Node) {
	if n == nil {
		return
	}
	if d, ok := n.(Disposer); ok {
		d.Dispose()
	}
	if e, ok := n.(*Element); ok {
		for _, c := range e.Children {
			DisposeSubtree(c)
		}
		if e.Tooltip != nil {
			DisposeSubtree(e.Tooltip)
		}
	}
}
