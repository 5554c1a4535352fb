package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/lean-widgets/reconciler/pkg/route"
)

// ClientOp names the four operations a client may invoke against a
// mounted component tree.
type ClientOp string

const (
	OpEvent             ClientOp = "event"
	OpTaskCompleted     ClientOp = "task_completed"
	OpMouseGainCapture  ClientOp = "mouse_gain_capture"
	OpMouseLoseCapture  ClientOp = "mouse_lose_capture"
)

// ClientMessage is the envelope for every inbound websocket frame. Route
// is always present; HandlerID and Args are only meaningful for OpEvent.
type ClientMessage struct {
	Op        ClientOp        `json:"op"`
	Route     []uint64        `json:"route"`
	HandlerID uint64          `json:"handler_id,omitempty"`
	Args      json.RawMessage `json:"args,omitempty"`
}

// DecodeClientMessage parses one inbound JSON frame.
func DecodeClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("protocol: decode client message: %w", err)
	}
	switch msg.Op {
	case OpEvent, OpTaskCompleted, OpMouseGainCapture, OpMouseLoseCapture:
	default:
		return nil, fmt.Errorf("protocol: unknown op %q", msg.Op)
	}
	return &msg, nil
}

// RouteValue converts the wire route (a JSON array of ids, root to receiver)
// into a route.Route.
func (m *ClientMessage) RouteValue() route.Route {
	if len(m.Route) == 0 {
		return route.Empty()
	}
	r := make(route.Route, len(m.Route))
	copy(r, m.Route)
	return r
}
