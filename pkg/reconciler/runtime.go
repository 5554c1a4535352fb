package reconciler

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lean-widgets/reconciler/pkg/component"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/route"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
)

// Config bundles a Runtime's collaborators. Queue and Collector may both
// be nil for a tree that never uses a with-task hook.
type Config struct {
	Queue     taskqueue.Queue
	Collector *taskqueue.Collector
	Logger    *slog.Logger
}

// Runtime owns one component tree: the id generator its instances share,
// the task-queue wiring their with-task hooks submit through, and the
// root instance itself. Every exported method takes Runtime's own lock,
// so a Runtime is safe to drive from a background task-completion
// goroutine and a foreground event loop at once — though pkg/server's
// Session is expected to serialize its own foreground calls with a
// single reader goroutine, and rely on this lock only to guard against
// the asynchronous completion path.
type Runtime struct {
	mu        sync.Mutex
	ids       *component.IDGenerator
	queue     taskqueue.Queue
	collector *taskqueue.Collector
	logger    *slog.Logger
	root      *component.Instance
}

// New constructs an unmounted Runtime.
func New(cfg Config) *Runtime {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runtime{
		ids:       component.NewIDGenerator(),
		queue:     cfg.Queue,
		collector: cfg.Collector,
		logger:    logger,
	}
}

// Mount decodes comp/props into the tree's root component instance,
// marks it as root (see component.Instance.selfRoute), and performs its
// first render.
func (rt *Runtime) Mount(comp, props hostval.Value) (*component.Instance, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	deps := component.Deps{Queue: rt.queue, Collector: rt.collector}
	root := component.Construct(rt.ids, deps, comp, props, route.Empty())
	root.IsRoot = true

	rt.root = root
	if _, err := root.ToJSON(route.Empty()); err != nil {
		return nil, err
	}
	return root, nil
}

// Render serializes the current tree without forcing a re-render of
// anything that has already rendered.
func (rt *Runtime) Render() (any, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root.ToJSON(route.Empty())
}

// HandleEvent dispatches a client-originated event to the target
// instance named by rtRoute and returns whatever unhandled action bubbled out
// the top, if any.
func (rt *Runtime) HandleEvent(rtRoute route.Route, handlerID uint64, args hostval.Value) (hostval.Value, bool, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root.HandleEvent(rtRoute, handlerID, args)
}

// HandleTaskCompleted re-renders the instance named by rtRoute once its
// with-task hook's task has produced a result.
func (rt *Runtime) HandleTaskCompleted(rtRoute route.Route) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root.HandleTaskCompleted(rtRoute)
}

// HandleMouseGainCapture updates capture state along rtRoute.
func (rt *Runtime) HandleMouseGainCapture(rtRoute route.Route) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root.HandleMouseGainCapture(rtRoute)
}

// HandleMouseLoseCapture resets capture state along rtRoute.
func (rt *Runtime) HandleMouseLoseCapture(rtRoute route.Route) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.root.HandleMouseLoseCapture(rtRoute)
}

// PumpCompletedTasks drains the Runtime's collector until ctx is
// cancelled, applying HandleTaskCompleted for each route and invoking
// onCompleted (if non-nil) afterward so a caller can push a fresh render
// to its transport. Intended to run in its own goroutine, one per
// mounted Runtime.
func (rt *Runtime) PumpCompletedTasks(ctx context.Context, onCompleted func()) {
	if rt.collector == nil {
		return
	}
	drain := rt.collector.Drain()
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-drain:
			if !ok {
				return
			}
			rt.mu.Lock()
			err := rt.root.HandleTaskCompleted(r)
			rt.mu.Unlock()
			if err != nil {
				rt.logger.Error("task completion re-render failed", "error", err)
				continue
			}
			if onCompleted != nil {
				onCompleted()
			}
		}
	}
}
