package taskqueue

import (
	"testing"
	"time"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestPoolSubmitCompletesAndPeekReturnsResult(t *testing.T) {
	p := NewPool(2, nil)
	defer p.Close()

	release := make(chan struct{})
	task := native.NewFunc("double", func(args ...hostval.Value) (hostval.Value, error) {
		<-release
		return native.Int(42), nil
	})

	h := p.Submit(task)
	if _, ok := h.Peek(); ok {
		t.Fatal("did not expect an immediate result")
	}
	close(release)

	waitFor(t, func() bool {
		_, ok := h.Peek()
		return ok
	})

	result, ok := h.Peek()
	if !ok {
		t.Fatal("expected a completed result")
	}
	if native.StringOf(result) != "" {
		t.Fatalf("unexpected string result: %v", result)
	}
}

func TestHandleNotifyFiresOnCompletion(t *testing.T) {
	p := NewPool(1, nil)
	defer p.Close()

	done := make(chan struct{})
	task := native.NewFunc("noop", func(args ...hostval.Value) (hostval.Value, error) {
		return native.Unit, nil
	})
	h := p.Submit(task)
	h.Notify(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify never fired")
	}
}

func TestHandleNotifyFiresImmediatelyIfAlreadyDone(t *testing.T) {
	p := NewPool(1, nil)
	defer p.Close()

	task := native.NewFunc("noop", func(args ...hostval.Value) (hostval.Value, error) {
		return native.Unit, nil
	})
	h := p.Submit(task)
	waitFor(t, func() bool {
		_, ok := h.Peek()
		return ok
	})

	fired := make(chan struct{})
	h.Notify(func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("notify should have fired synchronously for an already-complete task")
	}
}

func TestFailAndDisposeDoesNotPanic(t *testing.T) {
	p := NewPool(1, nil)
	defer p.Close()

	task := native.NewFunc("noop", func(args ...hostval.Value) (hostval.Value, error) {
		return native.Unit, nil
	})
	h := p.Submit(task)
	h.FailAndDispose()
}

func TestSingletonSetGetUnset(t *testing.T) {
	UnsetQueue()
	if _, err := GetQueue(); err != ErrNotSet {
		t.Fatalf("expected ErrNotSet, got %v", err)
	}

	p := NewPool(1, nil)
	defer p.Close()

	if err := SetQueue(p); err != nil {
		t.Fatalf("unexpected error setting queue: %v", err)
	}
	if err := SetQueue(p); err != ErrAlreadySet {
		t.Fatalf("expected ErrAlreadySet, got %v", err)
	}

	got, err := GetQueue()
	if err != nil || got != Queue(p) {
		t.Fatalf("expected the installed queue back, got %v, %v", got, err)
	}

	UnsetQueue()
	if _, err := GetQueue(); err != ErrNotSet {
		t.Fatalf("expected ErrNotSet after unset, got %v", err)
	}
}
