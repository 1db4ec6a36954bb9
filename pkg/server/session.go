package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glint-dev/glint/pkg/index"
	"github.com/glint-dev/glint/pkg/reactive"
	"github.com/glint-dev/glint/pkg/render"
	"github.com/glint-dev/glint/pkg/view"
)

// Session is one WebSocket connection and its view tree. Each session
// runs a single-goroutine event loop; Dispatch serializes all state
// application onto it, which is what gives the view layer its ordering
// guarantees.
//
// The push pipeline is reactive: index events bump the revision signal,
// the page memo re-renders and serializes the tree, and a push effect
// writes the frame. The memo's equality gate means an index event that
// does not change the serialized page pushes nothing.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastActive time.Time

	conn   *websocket.Conn
	mu     sync.Mutex // protects conn writes
	closed atomic.Bool

	owner *reactive.Owner
	rc    *view.RenderContext
	tree  *view.Tree

	revision *reactive.Signal[uint64]
	page     *reactive.Memo[string]

	dispatchCh chan func()
	done       chan struct{}

	busToken index.Token

	config  *ServerConfig
	logger  *slog.Logger
	tracer  trace.Tracer
	html    *render.Renderer
	onClose func(*Session)

	pushCount atomic.Uint64
	bytesSent atomic.Uint64
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// Weak IDs are worse than no server.
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// newSession creates a session rendering root under its own child owner
// and container, dispatching onto the session event loop.
func newSession(conn *websocket.Conn, base *view.RenderContext, root view.Component, config *ServerConfig, logger *slog.Logger, onClose func(*Session)) *Session {
	now := time.Now()
	id := generateSessionID()

	s := &Session{
		ID:         id,
		CreatedAt:  now,
		LastActive: now,
		conn:       conn,
		owner:      reactive.NewOwner(base.Owner),
		revision:   reactive.NewSignal(uint64(0)),
		dispatchCh: make(chan func(), config.MaxDispatchQueue),
		done:       make(chan struct{}),
		config:     config,
		logger:     logger.With("session_id", id),
		tracer:     otel.Tracer("glint"),
		html:       render.NewRenderer(render.Config{}),
		onClose:    onClose,
	}

	rc := base.WithOwner(s.owner).WithContainer(view.NewContainer())
	rc.Dispatcher = view.DispatcherFunc(func(fn func()) {
		if err := s.Dispatch(fn); err != nil && !errors.Is(err, ErrSessionClosed) {
			s.logger.Warn("dispatch dropped", "error", err)
		}
	})
	s.rc = rc
	s.tree = view.NewTree(rc, root)

	s.busToken = rc.Bus.Subscribe(index.EventChanged, func(any) {
		err := s.Dispatch(func() {
			s.revision.Set(s.rc.Index.Revision())
		})
		if err != nil && !errors.Is(err, ErrSessionClosed) {
			s.logger.Warn("index event dropped", "error", err)
		}
	})

	return s
}

// Dispatch runs fn in order on the session's event loop. It reports
// ErrSessionClosed after Close and ErrQueueFull when the loop cannot
// keep up; in both cases fn does not run.
func (s *Session) Dispatch(fn func()) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	select {
	case s.dispatchCh <- fn:
		return nil
	default:
		metricDispatchDropped.Inc()
		return ErrQueueFull
	}
}

// run is the session event loop. It mounts the tree, wires the push
// pipeline, then serves dispatched functions until shutdown.
func (s *Session) run() {
	go s.readLoop()

	s.tree.Mount()

	// The page derives from the revision signal alone. The render and
	// serialize happen untracked so component-level signal reads do not
	// subscribe the memo to anything but the revision.
	s.page = reactive.NewMemo(func() string {
		s.revision.Get()
		var html string
		reactive.Untracked(func() {
			s.tree.Rerender()
			html = s.renderHTML()
		})
		return html
	})

	reactive.WithOwner(s.owner, func() {
		reactive.CreateEffect(func() reactive.Cleanup {
			s.push(s.page.Get())
			return nil
		})
	})

	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case fn := <-s.dispatchCh:
			s.invoke(fn)
			s.owner.RunPendingEffects()
		case <-ticker.C:
			s.ping()
		case <-s.done:
			return
		}
	}
}

// invoke runs one dispatched function under a span with panic recovery.
// A panic kills the dispatched function, never the session.
func (s *Session) invoke(fn func()) {
	_, span := s.tracer.Start(context.Background(), "glint.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("glint.session_id", s.ID)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("dispatch panic: %v", r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.Error("dispatch panic", "error", r, "stack", string(debug.Stack()))
			return
		}
		span.SetStatus(codes.Ok, "")
	}()

	fn()
	s.LastActive = time.Now()
}

// renderHTML serializes the container's nodes into one HTML string.
func (s *Session) renderHTML() string {
	var b strings.Builder
	for _, n := range s.rc.Container.Nodes() {
		html, err := s.html.RenderToString(n)
		if err != nil {
			s.logger.Warn("render failed", "error", err)
			continue
		}
		b.WriteString(html)
	}
	return b.String()
}

// push writes the rendered page as one text frame.
func (s *Session) push(html string) {
	if s.closed.Load() {
		return
	}
	payload := []byte(html)

	s.mu.Lock()
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	err := s.conn.WriteMessage(websocket.TextMessage, payload)
	s.mu.Unlock()

	if err != nil {
		metricPushErrors.Inc()
		s.logger.Warn("push failed", "error", err)
		s.Close()
		return
	}

	s.pushCount.Add(1)
	s.bytesSent.Add(uint64(len(payload)))
	metricPushesTotal.Inc()
	metricPushBytes.Add(float64(len(payload)))
}

// ping sends a keepalive control frame.
func (s *Session) ping() {
	deadline := time.Now().Add(s.config.WriteTimeout)
	if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
		s.Close()
	}
}

// readLoop drains the connection. The client sends nothing meaningful;
// reads exist to notice disconnects and answer control frames.
func (s *Session) readLoop() {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.Close()
			return
		}
	}
}

// Close tears the session down: stops the loop, releases the bus
// subscription, unmounts the tree, destroys the container, disposes the
// owner, and closes the connection. Idempotent.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.rc.Bus.Unsubscribe(s.busToken)
	s.tree.Unmount()
	s.rc.Container.Destroy()
	s.owner.Dispose()
	s.conn.Close()

	metricActiveSessions.Dec()
	if s.onClose != nil {
		s.onClose(s)
	}

	s.logger.Info("session closed",
		"pushes", s.pushCount.Load(),
		"bytes_sent", s.bytesSent.Load())
}

// IsClosed reports whether the session has shut down.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}
