// Package protocol defines the wire messages a widget session exchanges
// with a client over its websocket connection: a small tagged union (a
// type string, then a type-specific payload) framed as one JSON object
// per message, since every operation this reconciler exposes
// (handle_event, handle_task_completed, handle_mouse_gain_capture,
// handle_mouse_lose_capture) is already expressed in terms of JSON-shaped
// routes and JSON-rendered trees. There is no byte-diffed patch stream to
// frame: every render is a full serialization of the current tree, so a
// "frame type" only needs to distinguish a handful of message shapes,
// not a compact binary patch format.
package protocol
