// Package server exposes the expression evaluator over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Yuni-sa/vector2-go/client"
	"github.com/Yuni-sa/vector2-go/internal/eval"
)

const defaultReadLimit = 4096

// Server serves /v1/ping and the /v1/eval WebSocket endpoint
type Server struct {
	logger      *log.Logger
	defaultKind string
	readLimit   int64
	upgrader    websocket.Upgrader
	mux         *http.ServeMux
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger; the default is log.Default()
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithDefaultKind sets the kind used when a client does not ask for one
func WithDefaultKind(kind string) Option {
	return func(s *Server) {
		s.defaultKind = kind
	}
}

// WithReadLimit sets the maximum size in bytes of an incoming frame
func WithReadLimit(limit int64) Option {
	return func(s *Server) {
		s.readLimit = limit
	}
}

// WithCheckOrigin overrides the upgrader's origin check
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = check
	}
}

// New creates a server. It fails if the default kind is not supported.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		logger:      log.Default(),
		defaultKind: eval.DefaultKind,
		readLimit:   defaultReadLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Subprotocols:    []string{client.Protocol},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := eval.New(s.defaultKind); err != nil {
		return nil, fmt.Errorf("default kind: %w", err)
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("GET /v1/ping", s.handlePing)
	s.mux.HandleFunc("GET /v1/eval", s.handleEval)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled. Open sessions are
// closed when ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = s.defaultKind
	}
	sess, err := eval.NewSession(kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		s.logger.Println("upgrade:", err)
		return
	}

	s.serveSession(r.Context(), conn, uuid.New(), sess)
}

func (s *Server) serveSession(ctx context.Context, conn *websocket.Conn, id uuid.UUID, sess *eval.Session) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	conn.SetReadLimit(s.readLimit)
	s.logger.Printf("session %s: started (kind %s)", id, sess.Kind())

	if err := conn.WriteJSON(client.NewSessionStarted(id.String(), sess.Kind())); err != nil {
		s.logger.Printf("session %s: write: %v", id, err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			switch {
			case ctx.Err() != nil:
				s.logger.Printf("session %s: closed by shutdown", id)
			case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				s.logger.Printf("session %s: closed", id)
			default:
				s.logger.Printf("session %s: read: %v", id, err)
			}
			return
		}

		reply := s.handleMessage(id, sess, data)
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Printf("session %s: write: %v", id, err)
			return
		}
	}
}

func (s *Server) handleMessage(id uuid.UUID, sess *eval.Session, data []byte) client.ServerMessage {
	msg, err := client.ParseClientMessage(data)
	if err != nil {
		s.logger.Printf("session %s: invalid message: %v", id, err)
		var requestID uint32
		if msg != nil {
			requestID = msg.RequestID()
		}
		return client.NewEvalError(requestID, client.CodeProtocol, err)
	}

	switch {
	case msg.SetKind != nil:
		return s.setKind(id, sess, msg.SetKind.RequestID, msg.SetKind.Kind)
	default:
		if kind, ok := eval.KindCommand(msg.Eval.Expr); ok {
			return s.setKind(id, sess, msg.Eval.RequestID, kind)
		}
		result, err := sess.Eval(msg.Eval.Expr)
		if err != nil {
			return client.NewEvalError(msg.Eval.RequestID, eval.Code(err), err)
		}
		return client.NewEvalResult(msg.Eval.RequestID, result)
	}
}

// setKind switches the session kind and acknowledges with KindChanged
func (s *Server) setKind(id uuid.UUID, sess *eval.Session, requestID uint32, kind string) client.ServerMessage {
	if err := sess.SetKind(kind); err != nil {
		return client.NewEvalError(requestID, eval.Code(err), err)
	}
	s.logger.Printf("session %s: kind %s", id, sess.Kind())
	return client.NewKindChanged(requestID, sess.Kind())
}
