// Package telemetry wires up widgetd's process-wide logger, matching the
// slog.Logger-everywhere convention pkg/server.Session and
// pkg/reconciler.Runtime already take as a constructor argument.
package telemetry
