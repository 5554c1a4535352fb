package component

import "errors"

// ErrInvalidHandler reports an event that arrived naming a handler id or
// a child route that no longer exists. Never fatal — callers treat it as
// an expected race between a stale client-side render and a server-side
// re-render.
var ErrInvalidHandler = errors.New("component: invalid handler or route")
