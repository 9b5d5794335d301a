package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"

	"github.com/pyrex41/docserve/pkg/manager"
)

// Config carries everything a DocServer needs. There is no package state:
// two servers with different configs can coexist in one process (tests do).
type Config struct {
	Port    int
	Address string
	Dir     string
	// Title is printed in the startup banner and reported by /-/status
	Title string
	// AdvertiseBlog adds a second URL for the nested blog/ path to the
	// banner. The path itself is served like any other directory.
	AdvertiseBlog bool
}

// DocServer serves a directory tree over plain HTTP. It owns the listening
// socket from Listen until Serve returns.
type DocServer struct {
	cfg      Config
	manager  *manager.SiteManager
	listener net.Listener
	started  time.Time
}

// New builds a server from explicit configuration
func New(cfg Config) *DocServer {
	return &DocServer{
		cfg:     cfg,
		manager: &manager.SiteManager{Dir: cfg.Dir},
	}
}

// Listen prepares the base directory and binds the listening socket.
// A missing directory or a port already in use surfaces here; there is
// no retry and no fallback port.
func (s *DocServer) Listen() error {
	if err := s.manager.Init(); err != nil {
		return err
	}
	l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.cfg.Address, s.cfg.Port))
	if err != nil {
		return err
	}
	s.listener = l
	return nil
}

// Addr returns the bound address. Valid only after Listen.
func (s *DocServer) Addr() net.Addr {
	return s.listener.Addr()
}

// Port returns the port the listener ended up on. Valid only after Listen.
func (s *DocServer) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Serve prints the banner and answers requests until ctx is canceled,
// then drains the HTTP server and releases the socket. It returns nil on
// a clean cancellation-triggered shutdown.
func (s *DocServer) Serve(ctx context.Context) error {
	s.started = time.Now()
	s.printBanner()

	srv := &http.Server{Handler: s.newRouter()}
	errorChan := make(chan error, 1)
	go func() {
		errorChan <- srv.Serve(s.listener)
	}()

	select {
	case err := <-errorChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Serve has returned http.ErrServerClosed by now
	<-errorChan
	fmt.Println("\n  Server stopped.")
	return nil
}

func (s *DocServer) printBanner() {
	port := s.Port()
	fmt.Println()
	color.New(color.Bold).Printf("  %s\n", s.cfg.Title)
	fmt.Println("  ────────────────────────")
	fmt.Printf("  Serving at http://localhost:%d\n", port)
	if s.cfg.AdvertiseBlog {
		fmt.Printf("  Blog at    http://localhost:%d/blog/\n", port)
	}
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()
}
