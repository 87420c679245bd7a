package stub

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const (
	// DefaultAddress is the default address the service double listens on.
	DefaultAddress = "localhost:7480"
	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Server manages the service double's HTTP lifecycle.
type Server struct {
	httpServer *http.Server
	store      *Store
	fault      *Fault
	logger     *log.Logger
	listener   net.Listener
	mu         sync.Mutex
	started    bool
}

// New creates a Server serving store on addr.
// If addr is empty, DefaultAddress is used. A nil logger discards output.
func New(addr string, store *Store, logger *log.Logger) *Server {
	if addr == "" {
		addr = DefaultAddress
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	fault := &Fault{}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(store, fault, logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		fault:  fault,
		logger: logger,
	}
}

// Handler returns the server's router, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetFault makes every request answer status until ClearFault is called.
func (s *Server) SetFault(status int) {
	s.fault.Set(status)
}

// ClearFault restores normal responses.
func (s *Server) ClearFault() {
	s.fault.Set(0)
}

// Start starts the HTTP server and blocks until the server is shut down.
// It returns http.ErrServerClosed when the server is gracefully shut down.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	// Listen first so Addr reports the real port when addr ends in :0
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.started = true
	s.mu.Unlock()

	s.logger.Printf("Service double listening on %s", ln.Addr().String())

	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if err := s.store.Close(); err != nil {
		s.logger.Printf("Warning: error closing store: %v", err)
	}

	s.logger.Println("Service double stopped")
	return nil
}

// Addr returns the address the server is listening on, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// ListenAndServe runs the server until SIGINT or SIGTERM, then shuts down.
func (s *Server) ListenAndServe() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Printf("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	return s.Shutdown(ctx)
}
