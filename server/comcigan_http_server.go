package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type ComciganHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
	registerOnce    sync.Once
}

func NewComciganHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration) *ComciganHttpServer {
	return &ComciganHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler returns the routed handler.
func (s *ComciganHttpServer) Handler() http.Handler {
	s.registerOnce.Do(s.router.RegisterRoutes)
	return s.muxRouter
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *ComciganHttpServer) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		log.Fatalf("[HttpServer] Listen(%s): %v", s.addr, err)
	}
	if err := s.Serve(ctx, ln); err != nil {
		log.Fatalf("[HttpServer] %v", err)
	}
	log.Println("[HttpServer] Server exiting")
}

// Serve accepts connections on ln until ctx is done, then waits up to the
// shutdown timeout for in-flight requests.
func (s *ComciganHttpServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[HttpServer] Starting server on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("[HttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
