// Package config provides configuration loading for widgetd, the process
// that mounts a reconciler.Runtime per incoming widget session and serves
// it over a websocket.
//
// Configuration lives in a small JSON file (widgetd.json) — there is no
// dev-server, build, or routing configuration here, since a widgetd
// deployment has exactly one job, and its config surface reflects that.
package config
