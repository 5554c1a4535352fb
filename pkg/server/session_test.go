package server

import (
	"log/slog"
	"testing"

	"github.com/lean-widgets/reconciler/pkg/component"
	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
	"github.com/lean-widgets/reconciler/pkg/protocol"
	"github.com/lean-widgets/reconciler/pkg/reconciler"
)

const tagPureComponent = 0

func nilList() hostval.Value { return native.NewTagged(0) }
func cons(head, tail hostval.Value) hostval.Value {
	return native.NewTagged(1, head, tail)
}

// mustMountTestSession mounts a pure-component tree whose view emits one
// text node, matching the shape pkg/component's own test helpers use for a
// no-hooks instance.
func mustMountTestSession(t *testing.T) (*Session, *component.Instance) {
	t.Helper()
	view := native.NewFunc("view", func(args ...hostval.Value) (hostval.Value, error) {
		text := native.NewTagged(1, native.Str("hi"))
		return cons(text, nilList()), nil
	})
	comp := native.NewTagged(tagPureComponent, view)

	rt := reconciler.New(reconciler.Config{Logger: slog.Default()})
	root, err := rt.Mount(comp, native.Unit)
	if err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	s := &Session{id: "test", rt: rt, logger: slog.Default()}
	return s, root
}

func TestDispatchEventWithInvalidHandlerReturnsError(t *testing.T) {
	s, _ := mustMountTestSession(t)
	msg := &protocol.ClientMessage{Op: protocol.OpEvent, HandlerID: 999}
	if err := s.dispatch(msg); err == nil {
		t.Fatal("expected an error for an unknown handler id")
	}
}

func TestDispatchTaskCompletedOnRootSucceeds(t *testing.T) {
	s, _ := mustMountTestSession(t)
	msg := &protocol.ClientMessage{Op: protocol.OpTaskCompleted}
	if err := s.dispatch(msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDispatchMouseCaptureTransitionsAreNoErrorWithoutCaptureHook(t *testing.T) {
	s, _ := mustMountTestSession(t)
	if err := s.dispatch(&protocol.ClientMessage{Op: protocol.OpMouseGainCapture}); err != nil {
		t.Fatalf("gain capture: unexpected error: %v", err)
	}
	if err := s.dispatch(&protocol.ClientMessage{Op: protocol.OpMouseLoseCapture}); err != nil {
		t.Fatalf("lose capture: unexpected error: %v", err)
	}
}

func TestDispatchRecoversHandlerPanic(t *testing.T) {
	s, root := mustMountTestSession(t)
	root.Handlers[1] = native.NewFunc("boom", func(args ...hostval.Value) (hostval.Value, error) {
		panic("handler exploded")
	})

	err := s.dispatch(&protocol.ClientMessage{Op: protocol.OpEvent, HandlerID: 1})
	if err != ErrMountFailed {
		t.Fatalf("got %v, want %v", err, ErrMountFailed)
	}
}
