// Package server exposes a mounted pkg/reconciler.Runtime over a
// websocket connection: one Session per connection, a single-goroutine
// event loop serializing client operations against the Runtime, and an
// HTTP handler that upgrades the connection and runs a new session on it.
//
// A Session here does not persist across disconnects — the component
// tree has no notion of detach/resume, so a dropped connection simply
// tears its Session and Runtime down. What survives is the pattern: one
// goroutine reading and dispatching client messages in order, and a
// background goroutine applying task-completion routes to the same
// Runtime, with the Runtime's own lock keeping the two from touching the
// tree at the same time.
package server
