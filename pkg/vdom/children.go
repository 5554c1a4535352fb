package vdom

// ReconcileChildren matches new children against old children by key and
// calls Reconcile on each match. It mutates neither
// slice's contents beyond what each node's own Reconcile does — new is
// left as-is; the pool of unmatched old nodes shrinks as matches consume
// it.
//
// For each new[i] in order:
//   - if it has a "key" attribute, the first old node with a matching key
//     is reconciled against it and removed from the pool;
//   - otherwise, if the pool is non-empty, the first remaining old node is
//     reconciled against it (positional fallback) and removed;
//   - otherwise new[i] is left to render fresh.
//
// Duplicate or partial keys produce unspecified but non-crashing matching
// order, matching the "like React" posture of the source this is ported
// from: this is a deliberate, not accidental, imprecision.
func ReconcileChildren(next, old []Node) {
	pool := make([]Node, len(old))
	copy(pool, old)

	for _, n := range next {
		key := n.Key()
		if key != "" {
			if idx := findKeyed(pool, key); idx >= 0 {
				n.Reconcile(pool[idx])
				pool = append(pool[:idx], pool[idx+1:]...)
			}
			continue
		}
		if len(pool) > 0 {
			n.Reconcile(pool[0])
			pool = pool[1:]
		}
	}

	for _, leftover := range pool {
		DisposeSubtree(leftover)
	}
}

func findKeyed(pool []Node, key string) int {
	for i, p := range pool {
		if p.Key() == key {
			return i
		}
	}
	return -1
}
