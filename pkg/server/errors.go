package server

import "errors"

// Sentinel errors of package server.
var (
	// ErrSessionClosed names an operation attempted after the session's
	// connection has gone away. No function in this package returns it.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrMountFailed is what Session.dispatch returns when it recovers a
	// panic raised while servicing a client message (a host-evaluation
	// failure in a handler, hook, or view). A failure to mount the initial
	// component is logged by the HTTP handler, which then closes the
	// connection; it does not produce this error.
	ErrMountFailed = errors.New("server: mount failed")
)
