package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glint-dev/glint/pkg/reactive"
	"github.com/glint-dev/glint/pkg/render"
	"github.com/glint-dev/glint/pkg/view"
)

// Server serves rendered views over HTTP and pushes live updates over
// WebSocket. Each connection gets its own Session; the plain GET of the
// page is a one-shot synchronous render of the same root component.
type Server struct {
	config   *ServerConfig
	base     *view.RenderContext
	root     view.Component
	sessions *SessionManager

	upgrader   websocket.Upgrader
	httpServer *http.Server
	logger     *slog.Logger
	tracer     trace.Tracer
}

// New creates a server rendering root under the shared base context.
// base carries the app-level collaborators (bus, index, settings,
// markup renderer); owner and container are created per session.
func New(config *ServerConfig, base *view.RenderContext, root view.Component) *Server {
	if config == nil {
		config = DefaultServerConfig()
	} else {
		config.fillDefaults()
	}

	s := &Server{
		config:   config,
		base:     base,
		root:     root,
		sessions: NewSessionManager(),
		logger:   slog.Default().With("component", "server"),
		tracer:   otel.Tracer("glint"),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  config.ReadBufferSize,
		WriteBufferSize: config.WriteBufferSize,
		CheckOrigin:     config.CheckOrigin,
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", s.handleWS)
	r.Get("/", s.handlePage)

	return r
}

// Start listens and serves until the context is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.sessions.CloseAll()

	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Sessions exposes the session manager.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// handleWS upgrades the connection and starts a session.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	sess := newSession(conn, s.base, s.root, s.config, s.logger, func(closed *Session) {
		s.sessions.Remove(closed.ID)
	})
	s.sessions.Add(sess)
	metricActiveSessions.Inc()
	metricSessionsTotal.Inc()

	s.logger.Info("session opened", "session_id", sess.ID, "remote", r.RemoteAddr)
	go sess.run()
}

// handlePage serves a one-shot synchronous render of the root.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "glint.page",
		trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()

	body, err := s.renderOnce()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, body)
}

// renderOnce mounts the root into a throwaway container, serializes it,
// and unmounts. States created during the render are disposed with the
// ephemeral owner; the container is destroyed with them.
func (s *Server) renderOnce() (string, error) {
	owner := reactive.NewOwner(s.base.Owner)
	defer owner.Dispose()

	container := view.NewContainer()
	defer container.Destroy()

	rc := s.base.WithOwner(owner).WithContainer(container)
	rc.Dispatcher = view.SyncDispatcher{}

	tree := view.NewTree(rc, s.root)
	tree.Mount()
	defer tree.Unmount()

	html := render.NewRenderer(render.Config{})
	var b strings.Builder
	for _, n := range rc.Container.Nodes() {
		out, err := html.RenderToString(n)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// pageShell wraps the rendered body and reconnects over WebSocket for
// live updates. Each pushed frame replaces the app root wholesale.
const pageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>glint</title></head>
<body>
<div id="app">%s</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function (ev) {
    document.getElementById("app").innerHTML = ev.data;
  };
})();
</script>
</body>
</html>
`
