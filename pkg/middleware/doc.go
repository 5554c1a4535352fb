// Package middleware provides the observability surface a widgetd
// deployment runs with: Prometheus metrics for dispatched client
// operations and session lifecycle, and OpenTelemetry tracing for
// individual operation dispatches.
//
// # Metrics
//
//	middleware.Init(middleware.WithNamespace("widgetd"))
//	http.Handle("/metrics", promhttp.Handler())
//
// pkg/server.Session calls middleware.RecordEvent, RecordSessionOpen/Close,
// and RecordSessionError directly, and the pkg/server HTTP handler calls
// RecordMountError; there is no
// router.Middleware chain to install these into, since a session's
// dispatch path is a single function call per client message rather than
// a request pipeline.
//
// # Tracing
//
//	err := middleware.TraceDispatch(ctx, "event", route, func(ctx context.Context) error {
//	    return doWork(ctx)
//	})
//
// The tracer uses the global OpenTelemetry tracer provider; configure it
// in main() before serving traffic.
package middleware
