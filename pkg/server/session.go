package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lean-widgets/reconciler/pkg/middleware"
	"github.com/lean-widgets/reconciler/pkg/protocol"
	"github.com/lean-widgets/reconciler/pkg/reconciler"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Session owns one websocket connection and the single Runtime it drives.
// Inbound client messages are dispatched in order on the goroutine running
// Run; task completions are applied by Runtime.PumpCompletedTasks on a
// second goroutine, serialized against client dispatch by the Runtime's
// own lock. Writes to the connection are serialized by writeMu.
type Session struct {
	id     string
	conn   *websocket.Conn
	rt     *reconciler.Runtime
	logger *slog.Logger

	writeMu sync.Mutex
	closed  chan struct{}
	once    sync.Once
	ctx     context.Context
}

// NewSession wraps an already-upgraded connection and a mounted Runtime.
func NewSession(id string, conn *websocket.Conn, rt *reconciler.Runtime, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		id:     id,
		conn:   conn,
		rt:     rt,
		logger: logger,
		closed: make(chan struct{}),
	}
}

// Run drives the session until the connection closes or ctx is cancelled.
// It starts the task-completion pump, sends the initial render, then reads
// client messages until the connection errors out. Blocking; call from its
// own goroutine.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close()
	s.ctx = ctx

	middleware.RecordSessionOpen()
	defer middleware.RecordSessionClose()

	go s.rt.PumpCompletedTasks(ctx, func() {
		s.sendRender()
	})
	go s.pingLoop(ctx)

	s.sendRender()

	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.logger.Debug("session read closed", "session", s.id, "error", err)
			return
		}
		s.handleMessage(data)
	}
}

func (s *Session) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := s.conn.WriteMessage(websocket.PingMessage, nil)
			s.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (s *Session) handleMessage(data []byte) {
	msg, err := protocol.DecodeClientMessage(data)
	if err != nil {
		s.sendError(err)
		return
	}

	start := time.Now()
	err = middleware.TraceDispatch(s.ctx, string(msg.Op), msg.Route, func(ctx context.Context) error {
		return s.dispatch(msg)
	})
	middleware.RecordEvent(string(msg.Op), time.Since(start), err)
	if err != nil {
		s.sendError(err)
		return
	}
	s.sendRender()
}

// dispatch recovers from a host-evaluation panic (see
// component.Instance.mustRender's doc comment) and reports it as a normal
// per-request error instead of taking the whole session down with it.
func (s *Session) dispatch(msg *protocol.ClientMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("session recovered from host panic", "session", s.id, "panic", r)
			err = ErrMountFailed
		}
	}()

	rt := msg.RouteValue()
	switch msg.Op {
	case protocol.OpEvent:
		args, decodeErr := protocol.DecodeArgs(msg.Args)
		if decodeErr != nil {
			return decodeErr
		}
		action, ok, handleErr := s.rt.HandleEvent(rt, msg.HandlerID, args)
		if handleErr != nil {
			return handleErr
		}
		if ok {
			s.send(protocol.ActionMessage(msg.Route, action))
		}
		return nil
	case protocol.OpTaskCompleted:
		return s.rt.HandleTaskCompleted(rt)
	case protocol.OpMouseGainCapture:
		return s.rt.HandleMouseGainCapture(rt)
	case protocol.OpMouseLoseCapture:
		return s.rt.HandleMouseLoseCapture(rt)
	default:
		return nil
	}
}

func (s *Session) sendRender() {
	tree, err := s.rt.Render()
	if err != nil {
		s.sendError(err)
		return
	}
	s.send(protocol.RenderMessage(tree))
}

func (s *Session) sendError(err error) {
	middleware.RecordSessionError()
	s.send(protocol.ErrorMessage(err))
}

func (s *Session) send(msg *protocol.ServerMessage) {
	data, err := msg.Encode()
	if err != nil {
		s.logger.Error("session encode failed", "session", s.id, "error", err)
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Debug("session write failed", "session", s.id, "error", err)
	}
}

func (s *Session) close() {
	s.once.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}
