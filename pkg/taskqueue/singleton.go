package taskqueue

import (
	"errors"
	"sync"
)

// ErrNotSet is returned by GetQueue when no queue has been configured yet.
var ErrNotSet = errors.New("taskqueue: no queue has been set")

// ErrAlreadySet is returned by SetQueue when a queue is already installed.
// Configuration errors are raised eagerly, at startup, rather than lazily
// the first time a with-task hook tries to submit — the same posture the
// source takes with its own singleton guard.
var ErrAlreadySet = errors.New("taskqueue: a queue has already been set")

var (
	singletonMu sync.RWMutex
	singleton   Queue
)

// SetQueue installs a process-wide queue that GetQueue returns. With-task
// hooks do not read it: they submit to the Queue carried in their
// component's Deps. SetQueue fails if a queue is already installed;
// callers that legitimately need to replace it must UnsetQueue first.
func SetQueue(q Queue) error {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return ErrAlreadySet
	}
	singleton = q
	return nil
}

// UnsetQueue removes the installed queue, if any. Safe to call when none is
// set.
func UnsetQueue() {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	singleton = nil
}

// GetQueue returns the installed queue, or ErrNotSet if none has been
// configured.
func GetQueue() (Queue, error) {
	singletonMu.RLock()
	defer singletonMu.RUnlock()
	if singleton == nil {
		return nil, ErrNotSet
	}
	return singleton, nil
}
