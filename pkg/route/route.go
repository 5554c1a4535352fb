// Package route implements the id-path addressing used to name a
// component instance within a live tree and to route events, task
// completions, and mouse-capture transitions back to it.
package route

// Route is an ordered sequence of component-instance ids naming a path
// from the root down to (but excluding) the receiver's own id: the path
// from root excluding this instance's own id. The empty route addresses
// the receiver itself.
type Route []uint64

// Empty returns the zero-length route addressing the receiver.
func Empty() Route { return nil }

// Child returns a new route with id appended, used when descending one
// level into a named child component instance.
func (r Route) Child(id uint64) Route {
	out := make(Route, len(r)+1)
	copy(out, r)
	out[len(r)] = id
	return out
}

// Head returns the first id in the route and true, or (0, false) if the
// route is empty.
func (r Route) Head() (uint64, bool) {
	if len(r) == 0 {
		return 0, false
	}
	return r[0], true
}

// Tail returns the route with its first id removed. Tail of an empty
// route is the empty route.
func (r Route) Tail() Route {
	if len(r) == 0 {
		return nil
	}
	return r[1:]
}

// IsEmpty reports whether the route addresses the receiver directly.
func (r Route) IsEmpty() bool { return len(r) == 0 }

// ToJSON returns the route as the JSON array of instance ids the wire
// format uses, from root to receiver. A nil route encodes as an empty
// array, never null, so client-side route comparisons never need a nil
// check.
func (r Route) ToJSON() []uint64 {
	out := make([]uint64, len(r))
	copy(out, r)
	return out
}
