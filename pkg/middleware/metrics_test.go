package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetricsRecordFunctions exercises every Record* entry point against a
// private registry, since the package's metrics singleton only installs
// itself once per process (see Init's doc comment) and every other test in
// this binary shares it.
func TestMetricsRecordFunctions(t *testing.T) {
	reg := prometheus.NewRegistry()
	Init(WithRegistry(reg), WithNamespace("widgetd_test"))

	RecordEvent("event", 5*time.Millisecond, nil)
	RecordEvent("event", 5*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(global.eventsTotal.WithLabelValues("event", "ok")); got != 1 {
		t.Errorf("events_total{ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(global.eventsTotal.WithLabelValues("event", "error")); got != 1 {
		t.Errorf("events_total{error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(global.eventErrors.WithLabelValues("event")); got != 1 {
		t.Errorf("event_errors_total = %v, want 1", got)
	}

	RecordSessionOpen()
	RecordSessionOpen()
	RecordSessionClose()
	if got := testutil.ToFloat64(global.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}

	RecordSessionError()
	if got := testutil.ToFloat64(global.sessionErrors); got != 1 {
		t.Errorf("session_errors_total = %v, want 1", got)
	}

	RecordMountError()
	if got := testutil.ToFloat64(global.mountErrors); got != 1 {
		t.Errorf("mount_errors_total = %v, want 1", got)
	}

	RecordTaskStart()
	RecordTaskStart()
	RecordTaskDone()
	if got := testutil.ToFloat64(global.taskQueueDepth); got != 1 {
		t.Errorf("task_queue_in_flight = %v, want 1", got)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	before := global
	Init(WithNamespace("ignored-because-already-initialized"))
	if global != before {
		t.Fatal("Init reinitialized an already-installed metrics singleton")
	}
}
