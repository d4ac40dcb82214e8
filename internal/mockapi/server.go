// Package mockapi is a local stand-in for the Text-to-Voice endpoints. It
// speaks the same request/response shapes as the real service, mints fresh
// generated voice IDs per design call, and needs nothing but a non-empty API
// key. Useful for offline development and for exercising the client without
// burning quota.
package mockapi

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"
)

// Server is the HTTP server hosting the stub endpoints.
type Server struct {
	srv  *fasthttp.Server
	addr string
}

// New creates a server that will bind to addr when started.
func New(addr string) *Server {
	s := &Server{
		srv:  &fasthttp.Server{},
		addr: addr,
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Handler exposes the route handler, mainly so tests can serve it on an
// ephemeral listener.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.srv.Handler
}

// Serve serves requests on an existing listener. It blocks until the listener
// closes or Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.srv.Shutdown()
}

// Start runs the server until an OS interrupt, then shuts down gracefully.
func (s *Server) Start() {
	slog.Info("Starting mock TTV server...", slog.String("addr", s.addr))
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("Mock TTV server started!")

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.shutdown(ctx)
}

func (s *Server) shutdown(ctx context.Context) {
	slog.Info("Gracefully shutting down mock TTV server...")
	if err := s.srv.Shutdown(); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	slog.Info("Mock TTV server shutdown!")
}
