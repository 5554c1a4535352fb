package taskqueue

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/middleware"
)

// Handle is the caller-visible lifecycle of one submitted task.
type Handle interface {
	// Peek returns the completed result and true, or (nil, false) if the
	// task hasn't finished (or failed) yet. Non-blocking and race-free:
	// callers see either nothing or a fully committed result, never a
	// partial one.
	Peek() (hostval.Value, bool)

	// FailAndDispose marks the handle disposed. It does not cancel or wait
	// for an in-flight worker goroutine: a task that completes between a
	// caller's last Peek and disposal may still finish and write its
	// result after disposal — that result is then unobservable and
	// effectively leaked. This is a deliberate, documented quirk carried
	// over from the source, not a bug to fix.
	FailAndDispose()

	// Notify registers fn to run once, on the worker goroutine, when the
	// task completes successfully; if the task has already completed
	// successfully, fn runs immediately on the caller's goroutine instead.
	// Used by a with-task hook's
	// owning component instance to enqueue its route onto a Collector.
	Notify(fn func())
}

// Queue submits invocable task values to run on a bounded worker pool.
type Queue interface {
	Submit(task hostval.Value) Handle
}

// Pool is the default Queue: an errgroup-bounded worker pool. There is no
// explicit buffer: once the concurrency limit is reached, Submit blocks
// its caller until a running task finishes, which is the back-pressure
// errgroup.Group.SetLimit provides.
type Pool struct {
	eg     *errgroup.Group
	logger *slog.Logger
}

// NewPool creates a worker pool that runs at most concurrency tasks at
// once. A nil logger defaults to slog.Default().
func NewPool(concurrency int, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	eg := &errgroup.Group{}
	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}
	return &Pool{eg: eg, logger: logger}
}

// Close waits for all in-flight tasks to finish. Callers that never intend
// to observe individual results still need this at shutdown so the pool's
// goroutines aren't leaked.
func (p *Pool) Close() {
	_ = p.eg.Wait()
}

func (p *Pool) Submit(task hostval.Value) Handle {
	h := &handle{}
	middleware.RecordTaskStart()
	p.eg.Go(func() error {
		defer middleware.RecordTaskDone()
		result, err := p.run(task)
		h.complete(result, err)
		return nil // errors are reported through the handle, not the group
	})
	return h
}

func (p *Pool) run(task hostval.Value) (result hostval.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("taskqueue: task panicked", "panic", r)
			err = fmt.Errorf("taskqueue: task panicked: %v", r)
		}
	}()
	return task.Invoke()
}

type handle struct {
	mu       sync.Mutex
	result   hostval.Value
	err      error
	done     bool
	disposed bool
	onDone   func()
}

func (h *handle) complete(result hostval.Value, err error) {
	h.mu.Lock()
	h.result = result
	h.err = err
	h.done = true
	notify := h.onDone
	h.mu.Unlock()

	if err == nil && notify != nil {
		notify()
	}
}

func (h *handle) Peek() (hostval.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done && h.err == nil && !h.disposed {
		return h.result, true
	}
	return nil, false
}

func (h *handle) FailAndDispose() {
	h.mu.Lock()
	h.disposed = true
	h.mu.Unlock()
}

func (h *handle) Notify(fn func()) {
	h.mu.Lock()
	already := h.done && h.err == nil
	if already {
		h.mu.Unlock()
		fn()
		return
	}
	h.onDone = fn
	h.mu.Unlock()
}
