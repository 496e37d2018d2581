// Package httpserve provides the transient loopback file server used while
// capturing screenshots of generated artifacts.
package httpserve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/user/uibench/pkg/ports"
)

// Server implements ports.FileServer over net/http.
type Server struct {
	host string
	port int
	root string

	listener net.Listener
	srv      *http.Server
}

// New creates a new Server that serves the directory tree rooted at root.
// A port of 0 picks a free port (useful in tests).
func New(host string, port int, root string) *Server {
	if host == "" {
		host = "127.0.0.1"
	}
	return &Server{host: host, port: port, root: root}
}

// Ensure Server implements ports.FileServer
var _ ports.FileServer = (*Server)(nil)

// Start begins listening. It returns once the listener is accepting
// connections; serving continues in the background until Shutdown.
func (s *Server) Start() error {
	if s.listener != nil {
		return errors.New("httpserve: already started")
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.listener = listener

	srv := &http.Server{
		Handler:           http.FileServer(http.Dir(s.root)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.srv = srv

	go func() {
		// ErrServerClosed is the normal shutdown path.
		_ = srv.Serve(listener)
	}()

	return nil
}

// BaseURL returns the root URL of the served tree.
func (s *Server) BaseURL() string {
	if s.listener != nil {
		return "http://" + s.listener.Addr().String()
	}
	return fmt.Sprintf("http://%s:%d", s.host, s.port)
}

// Shutdown stops the listener and releases the port.
func (s *Server) Shutdown() error {
	if s.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	s.srv = nil
	s.listener = nil
	return err
}
