package server

import (
	"context"
	"os/signal"
	"syscall"
)

// Run starts the server and blocks until ctx is canceled or the process
// receives SIGINT/SIGTERM, then performs a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// Detach from the canceled context so shutdown gets its own timeout
	return s.Shutdown(context.Background())
}
