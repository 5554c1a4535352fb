package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	appmw "github.com/lean-widgets/reconciler/pkg/middleware"
	"github.com/lean-widgets/reconciler/pkg/reconciler"
	"github.com/lean-widgets/reconciler/pkg/taskqueue"
)

// Mounter decodes an incoming mount request into the component/props pair
// a Runtime is constructed around. A real deployment's Mounter typically
// looks up comp by a widget-kind name carried in the request and decodes
// props from a query parameter or the request body; what shape that takes
// is entirely up to the host embedding this package; the reconciler itself
// is agnostic (see pkg/hostval's doc comment).
type Mounter func(r *http.Request) (comp, props hostval.Value, err error)

// Config bundles what NewRouter needs to serve widget sessions.
type Config struct {
	Mounter           Mounter
	Queue             taskqueue.Queue
	CollectorCapacity int
	Logger            *slog.Logger
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewRouter builds the chi router serving /widget/{id}/ws (the session
// upgrade — id names the widget kind cfg.Mounter should look up via
// chi.URLParam), /healthz, and /metrics.
func NewRouter(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CollectorCapacity == 0 {
		cfg.CollectorCapacity = 16
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/widget/{id}/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWidgetWS(w, r, cfg, logger)
	})

	return r
}

func serveWidgetWS(w http.ResponseWriter, r *http.Request, cfg Config, logger *slog.Logger) {
	comp, props, err := cfg.Mounter(r)
	if err != nil {
		appmw.RecordMountError()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	collector := taskqueue.NewCollector(cfg.CollectorCapacity)
	rt := reconciler.New(reconciler.Config{
		Queue:     cfg.Queue,
		Collector: collector,
		Logger:    logger,
	})
	if _, err := rt.Mount(comp, props); err != nil {
		logger.Warn("mount failed", "error", err)
		conn.Close()
		return
	}

	id := newSessionID()
	sess := NewSession(id, conn, rt, logger)
	sess.Run(r.Context())
}

func newSessionID() string {
	return uuid.NewString()
}
