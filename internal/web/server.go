// Package web serves the browser editor: an HTML page with one color input
// per stop, form endpoints for the edits, a JSON view of the strips and a
// WebSocket that pushes the re-rendered logo after every change.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	lgerrors "github.com/rileyhilliard/logogen/internal/errors"
	"github.com/rileyhilliard/logogen/internal/logger"
	"github.com/rileyhilliard/logogen/internal/render"
	"github.com/rileyhilliard/logogen/internal/strip"
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is the web editor for a single shared store.
type Server struct {
	store  *strip.Store
	log    logger.Logger
	render render.Options
	hub    *hub
	mux    *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server's logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithRenderOptions sets how /logo.svg and the live preview are rendered.
func WithRenderOptions(o render.Options) Option {
	return func(s *Server) { s.render = o }
}

// NewServer creates a web editor bound to store. Call Close to drop the
// store subscription and disconnect WebSocket clients.
func NewServer(store *strip.Store, opts ...Option) *Server {
	s := &Server{
		store: store,
		log:   logger.Noop(),
		mux:   http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(s.log)
	s.routes()

	s.hub.unsubscribe = store.Subscribe(func(st strip.State) {
		frag, err := s.fragment(st)
		if err != nil {
			s.log.Error("render live preview: %v", err)
			return
		}
		s.hub.broadcast(frag)
	})

	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /logo.svg", s.handleLogo)
	s.mux.HandleFunc("GET /api/strips", s.handleStrips)
	s.mux.HandleFunc("POST /strips/{strip}/stops", s.handleAddStop)
	s.mux.HandleFunc("POST /strips/{strip}/stops/{stop}", s.handleSetColor)
	s.mux.HandleFunc("POST /strips/{strip}/stops/{stop}/delete", s.handleRemoveStop)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler returns the HTTP handler for all editor routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Close disconnects all WebSocket clients and stops following the store.
func (s *Server) Close() {
	s.hub.close()
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return lgerrors.WrapWithCode(err, lgerrors.ErrServe,
			"Can't listen on "+addr,
			"Pick a free address with --addr or serve.addr in .logogen.yaml.")
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. WebSocket clients are disconnected first since Shutdown does
// not wait for hijacked connections.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.log.Info("Logo editor running at http://%s", ln.Addr())

	select {
	case err := <-errCh:
		s.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return lgerrors.WrapWithCode(err, lgerrors.ErrServe, "Web server stopped", "")
		}
		return nil

	case <-ctx.Done():
	}

	s.log.Debug("shutting down web editor")
	s.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return lgerrors.WrapWithCode(err, lgerrors.ErrServe,
			"Web server didn't shut down cleanly", "")
	}
	<-errCh
	return nil
}

// fragment renders st as the inline SVG used by the page and live preview.
func (s *Server) fragment(st strip.State) ([]byte, error) {
	opts := s.render
	opts.Fragment = true
	return render.SVG(st, opts)
}
